package filehandler

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/multierr"

	"github.com/philipp01105/elfnlog/core"
	"github.com/philipp01105/elfnlog/formatter"
	"github.com/philipp01105/elfnlog/handler"
)

// ErrNoFilename is returned by NewFileHandler when FileConfig.Filename is empty.
var ErrNoFilename = errors.New("filehandler: filename is required")

// sizeTrackingWriter wraps an io.Writer and tracks total bytes written
type sizeTrackingWriter struct {
	w       io.Writer
	written int64
}

func (s *sizeTrackingWriter) Write(p []byte) (n int, err error) {
	n, err = s.w.Write(p)
	s.written += int64(n)
	return
}

func (s *sizeTrackingWriter) reset(w io.Writer) {
	s.w = w
	s.written = 0
}

// fileBase contains shared fields and methods for file handlers.
type fileBase struct {
	filename        string
	file            *os.File
	bufWriter       *bufio.Writer
	sizeWriter      *sizeTrackingWriter
	formatter       formatter.Formatter
	writerFormatter formatter.WriterFormatter
	bufferFormatter formatter.BufferFormatter
	level           core.Level
	mu              sync.Mutex
	syncBuf         bytes.Buffer
	maxSize         int64
	maxAge          time.Duration
	maxBackups      int
	rotateInterval  time.Duration
	currentSize     int64
	lastRotateTime  time.Time
	hasRotation     bool
	stats           *handler.Stats
	closed          chan struct{}
}

// Level returns the handler's own threshold (implements handler.Leveled).
func (b *fileBase) Level() core.Level {
	return b.level
}

// write formats and writes a record
func (b *fileBase) write(r core.Record) error {
	// BufferFormatter fast path: format into handler-owned buffer, write to bufio.Writer.
	// Avoids buffer pool get/put overhead.
	if b.bufferFormatter != nil {
		b.mu.Lock()
		if err := b.rotateIfNeeded(); err != nil {
			b.mu.Unlock()
			return err
		}

		b.syncBuf.Reset()
		b.bufferFormatter.FormatRecord(r, &b.syncBuf)
		n, err := b.bufWriter.Write(b.syncBuf.Bytes())
		if err == nil {
			b.currentSize += int64(n)
			b.stats.IncrementProcessed()
		}
		b.mu.Unlock()
		return err
	}

	if b.writerFormatter != nil {
		b.mu.Lock()
		if err := b.rotateIfNeeded(); err != nil {
			b.mu.Unlock()
			return err
		}

		prevFlushed := b.sizeWriter.written
		prevBuffered := b.bufWriter.Buffered()
		err := b.writerFormatter.FormatTo(r, b.bufWriter)
		if err == nil {
			written := (b.sizeWriter.written - prevFlushed) + int64(b.bufWriter.Buffered()-prevBuffered)
			b.currentSize += written
			b.stats.IncrementProcessed()
		}
		b.mu.Unlock()
		return err
	}

	data, err := b.formatter.Format(r)
	if err != nil {
		return err
	}

	b.mu.Lock()
	if err := b.rotateIfNeeded(); err != nil {
		b.mu.Unlock()
		return err
	}

	n, err := b.bufWriter.Write(data)
	if err == nil {
		b.currentSize += int64(n)
		b.stats.IncrementProcessed()
	}
	b.mu.Unlock()

	return err
}

// rotateIfNeeded checks and performs rotation if needed
func (b *fileBase) rotateIfNeeded() error {
	if !b.hasRotation {
		return nil
	}

	needRotate := false

	// Check size-based rotation
	if b.maxSize > 0 && b.currentSize >= b.maxSize {
		needRotate = true
	}

	// Check time-based rotation (by age)
	if b.maxAge > 0 && time.Since(b.lastRotateTime) >= b.maxAge {
		needRotate = true
	}

	// Check interval-based rotation
	if b.rotateInterval > 0 && time.Since(b.lastRotateTime) >= b.rotateInterval {
		needRotate = true
	}

	if !needRotate {
		return nil
	}

	return b.rotate()
}

// rotate performs the actual file rotation
func (b *fileBase) rotate() error {
	// Flush buffered writer, sync and close current file
	if err := b.bufWriter.Flush(); err != nil {
		return err
	}
	if err := b.file.Sync(); err != nil {
		return err
	}
	if err := b.file.Close(); err != nil {
		return err
	}

	// Rename current file with timestamp
	timestamp := time.Now().Format(backupTimeFormat)
	rotatedName := fmt.Sprintf("%s.%s", b.filename, timestamp)

	if err := os.Rename(b.filename, rotatedName); err != nil {
		// If rename fails, try to reopen the original file
		file, openErr := os.OpenFile(b.filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if openErr != nil {
			return multierr.Append(
				fmt.Errorf("filehandler: rotate %s: %w", b.filename, err),
				fmt.Errorf("filehandler: reopen %s: %w", b.filename, openErr))
		}
		b.file = file
		b.sizeWriter.reset(file)
		b.bufWriter.Reset(b.sizeWriter)
		return fmt.Errorf("filehandler: rotate %s: %w", b.filename, err)
	}

	// Clean up old backups if needed
	if b.maxBackups > 0 {
		b.cleanupOldBackups()
	}

	// Open new file
	file, err := os.OpenFile(b.filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}

	b.file = file
	b.sizeWriter.reset(file)
	b.bufWriter.Reset(b.sizeWriter)
	b.currentSize = 0
	b.lastRotateTime = time.Now()

	return nil
}

// cleanupOldBackups removes old backup files based on MaxBackups
func (b *fileBase) cleanupOldBackups() {
	dir := filepath.Dir(b.filename)
	base := filepath.Base(b.filename)

	// Find all backup files
	pattern := filepath.Join(dir, base+".*")
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return
	}

	// Filter to only timestamp-based backups
	var backups []string
	for _, match := range matches {
		suffix := strings.TrimPrefix(filepath.Base(match), base+".")
		if len(suffix) == len(backupTimeFormat) {
			if _, err := time.Parse(backupTimeFormat, suffix); err == nil {
				backups = append(backups, match)
			}
		}
	}

	// Backup suffixes are fixed-width timestamps, so name order is age order
	sort.Strings(backups)

	// Remove oldest files if we exceed MaxBackups
	if len(backups) > b.maxBackups {
		toRemove := backups[:len(backups)-b.maxBackups]
		for _, file := range toRemove {
			err := os.Remove(file)
			if err != nil {
				return
			}
		}
	}
}

// Stats returns a snapshot of the current statistics
func (b *fileBase) Stats() handler.Snapshot {
	return b.stats.GetSnapshot()
}

// flush writes buffered data through to the file.
func (b *fileBase) flush() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.bufWriter.Flush()
}

// closeFile flushes, syncs and closes the underlying file. The file is
// closed even when flushing fails; all failures are reported together.
func (b *fileBase) closeFile() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.file == nil {
		return nil
	}
	err := b.bufWriter.Flush()
	err = multierr.Append(err, b.file.Sync())
	err = multierr.Append(err, b.file.Close())
	b.file = nil
	return err
}

// backupTimeFormat is the suffix appended to rotated files.
const backupTimeFormat = "2006-01-02T15-04-05.000000000"

// FileConfig holds configuration for file handler
type FileConfig struct {
	// Filename is the path to the log file
	Filename string
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
	// Level is the handler's own threshold (default: core.AllLevel)
	Level core.Level
	// Async enables asynchronous logging
	Async bool
	// BufferSize is the size of the async queue (default: 1000)
	BufferSize int
	// MaxSize is the maximum size in bytes before rotation (0 = no size rotation)
	MaxSize int64
	// MaxAge is the maximum age before rotation (0 = no time rotation)
	MaxAge time.Duration
	// MaxBackups is the maximum number of old log files to retain (0 = keep all)
	MaxBackups int
	// RotateInterval is the interval for time-based rotation (0 = no interval rotation)
	RotateInterval time.Duration
	// OverflowPolicy defines per-level overflow behavior (default: uses DefaultLevelPolicy)
	OverflowPolicy map[core.Level]handler.OverflowPolicy
	// BlockTimeout is the timeout for blocking overflow policy (default: 100ms)
	BlockTimeout time.Duration
	// DrainTimeout is the timeout for draining queue on Close (default: 5s)
	DrainTimeout time.Duration
}

// applyFileDefaults fills in zero-value fields with defaults.
func applyFileDefaults(cfg *FileConfig) {
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}
	if cfg.Level == 0 {
		cfg.Level = core.AllLevel
	}
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = 1000
	}
	if cfg.OverflowPolicy == nil {
		cfg.OverflowPolicy = handler.DefaultLevelPolicy()
	}
	if cfg.BlockTimeout == 0 {
		cfg.BlockTimeout = 100 * time.Millisecond
	}
	if cfg.DrainTimeout == 0 {
		cfg.DrainTimeout = 5 * time.Second
	}
}

// initFileBase initializes a fileBase in place with the given config and opened file.
func initFileBase(b *fileBase, cfg FileConfig, file *os.File, fileSize int64) {
	sw := &sizeTrackingWriter{w: file}
	b.filename = cfg.Filename
	b.file = file
	b.sizeWriter = sw
	b.bufWriter = bufio.NewWriterSize(sw, 4096)
	b.formatter = cfg.Formatter
	b.level = cfg.Level
	b.maxSize = cfg.MaxSize
	b.maxAge = cfg.MaxAge
	b.maxBackups = cfg.MaxBackups
	b.rotateInterval = cfg.RotateInterval
	b.currentSize = fileSize
	b.lastRotateTime = time.Now()
	b.hasRotation = cfg.MaxSize > 0 || cfg.MaxAge > 0 || cfg.RotateInterval > 0
	b.closed = make(chan struct{})
	b.stats = handler.NewStats()

	// Cache WriterFormatter for zero-alloc path
	b.writerFormatter, _ = cfg.Formatter.(formatter.WriterFormatter)

	// Cache BufferFormatter for sync fast path (avoids buffer pool + direct bufio write)
	b.bufferFormatter, _ = cfg.Formatter.(formatter.BufferFormatter)

	// Pre-grow sync buffer for handler-owned format path
	if b.bufferFormatter != nil {
		b.syncBuf.Grow(256)
	}
}

// NewFileHandler creates a new file handler.
// Returns a SyncFileHandler when Async is false, or an AsyncFileHandler
// when Async is true. Both implement Handler, Leveled, and StatsProvider.
func NewFileHandler(cfg FileConfig) (handler.Handler, error) {
	if cfg.Filename == "" {
		return nil, ErrNoFilename
	}
	applyFileDefaults(&cfg)

	// Create directory if it doesn't exist
	dir := filepath.Dir(cfg.Filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("filehandler: create directory: %w", err)
	}

	// Open file
	file, err := os.OpenFile(cfg.Filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("filehandler: open: %w", err)
	}

	// Get file size
	info, err := file.Stat()
	if err != nil {
		return nil, multierr.Append(fmt.Errorf("filehandler: stat: %w", err), file.Close())
	}

	if cfg.Async {
		return newAsyncFileHandler(cfg, file, info.Size()), nil
	}
	return newSyncFileHandler(cfg, file, info.Size()), nil
}
