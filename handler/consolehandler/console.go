package consolehandler

import (
	"bytes"
	"io"
	"os"
	"sync"
	"time"

	"github.com/philipp01105/elfnlog/core"
	"github.com/philipp01105/elfnlog/formatter"
	"github.com/philipp01105/elfnlog/handler"
)

// lockedWriter wraps an io.Writer with a mutex, acquiring the lock only
// for Write calls. Formatters prepare data in their own pooled buffers
// and call Write once, so the lock is held only during the actual I/O.
// Uses the handler's main mu to serialize all writes.
type lockedWriter struct {
	mu *sync.Mutex // points to handler's mu
	w  io.Writer
}

func (lw *lockedWriter) Write(p []byte) (n int, err error) {
	lw.mu.Lock()
	n, err = lw.w.Write(p)
	lw.mu.Unlock()
	return
}

// isConcurrentSafeWriter returns true if the writer is known to be safe for
// concurrent Write calls, allowing the handler to skip write-level locking.
func isConcurrentSafeWriter(w io.Writer) bool {
	if w == io.Discard {
		return true
	}
	_, ok := w.(*os.File)
	return ok
}

// consoleBase contains shared fields and methods for console handlers.
type consoleBase struct {
	writer          io.Writer
	formatter       formatter.Formatter
	writerFormatter formatter.WriterFormatter
	bufferFormatter formatter.BufferFormatter
	level           core.Level
	concurrentSafe  bool // true if writer is safe for concurrent Write calls
	stats           *handler.Stats
	mu              sync.Mutex // protects syncBuf and writer (single lock)
	lw              lockedWriter
	syncBuf         bytes.Buffer
	parBufPool      sync.Pool // pool of *bytes.Buffer for contended writes
	closed          chan struct{}
}

func (b *consoleBase) init(cfg ConsoleConfig) {
	b.writer = cfg.Writer
	b.formatter = cfg.Formatter
	b.level = cfg.Level
	b.concurrentSafe = cfg.ConcurrentWriter || isConcurrentSafeWriter(cfg.Writer)
	b.stats = handler.NewStats()
	b.closed = make(chan struct{})

	// Cache optional formatter interfaces for the cheaper write paths
	b.writerFormatter, _ = cfg.Formatter.(formatter.WriterFormatter)
	b.bufferFormatter, _ = cfg.Formatter.(formatter.BufferFormatter)

	b.lw = lockedWriter{mu: &b.mu, w: b.writer}

	if b.bufferFormatter != nil {
		b.syncBuf.Grow(256)
		b.parBufPool = sync.Pool{
			New: func() interface{} {
				buf := &bytes.Buffer{}
				buf.Grow(256)
				return buf
			},
		}
	}
}

// Level returns the handler's own threshold (implements handler.Leveled).
func (b *consoleBase) Level() core.Level {
	return b.level
}

// write formats and writes a record.
// Uses TryLock on mu to access the handler-owned buffer when uncontended.
// When contended and bufferFormatter is available, formats into a pooled
// buffer outside the lock, then writes under mu. Otherwise, falls through
// to writerFormatter or generic formatter paths.
func (b *consoleBase) write(r core.Record) error {
	if b.bufferFormatter != nil {
		if b.mu.TryLock() {
			b.syncBuf.Reset()
			b.bufferFormatter.FormatRecord(r, &b.syncBuf)
			_, err := b.writer.Write(b.syncBuf.Bytes())
			b.mu.Unlock()
			if err == nil {
				b.stats.IncrementProcessed()
			}
			return err
		}

		// Parallel fallback: format in pool buffer outside lock, then
		// write under mu (or directly for concurrent-safe writers).
		pb := b.parBufPool.Get().(*bytes.Buffer)
		pb.Reset()
		b.bufferFormatter.FormatRecord(r, pb)
		var err error
		if b.concurrentSafe {
			_, err = b.writer.Write(pb.Bytes())
		} else {
			b.mu.Lock()
			_, err = b.writer.Write(pb.Bytes())
			b.mu.Unlock()
		}
		if err == nil {
			b.stats.IncrementProcessed()
		}
		b.parBufPool.Put(pb)
		return err
	}

	if b.writerFormatter != nil {
		var err error
		if b.concurrentSafe {
			err = b.writerFormatter.FormatTo(r, b.writer)
		} else {
			err = b.writerFormatter.FormatTo(r, &b.lw)
		}
		if err == nil {
			b.stats.IncrementProcessed()
		}
		return err
	}

	data, err := b.formatter.Format(r)
	if err != nil {
		return err
	}

	if !b.concurrentSafe {
		b.mu.Lock()
		defer b.mu.Unlock()
	}
	if _, err := b.writer.Write(data); err != nil {
		return err
	}
	b.stats.IncrementProcessed()
	return nil
}

// Stats returns a snapshot of the current statistics
func (b *consoleBase) Stats() handler.Snapshot {
	return b.stats.GetSnapshot()
}

// ConsoleConfig holds configuration for console handler
type ConsoleConfig struct {
	// Writer to write to (default: os.Stderr)
	Writer io.Writer
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
	// Level is the handler's own threshold (default: core.AllLevel)
	Level core.Level
	// Async enables asynchronous logging
	Async bool
	// BufferSize is the size of the async queue (default: 1000)
	BufferSize int
	// OverflowPolicy defines per-level overflow behavior (default: uses DefaultLevelPolicy)
	OverflowPolicy map[core.Level]handler.OverflowPolicy
	// BlockTimeout is the timeout for blocking overflow policy (default: 100ms)
	BlockTimeout time.Duration
	// DrainTimeout is the timeout for draining queue on Close (default: 5s)
	DrainTimeout time.Duration
	// ConcurrentWriter indicates the Writer supports concurrent Write calls.
	// When true, the handler skips write-level locking for parallel records.
	// Automatically detected for io.Discard and *os.File; set true for
	// other goroutine-safe writers.
	ConcurrentWriter bool
}

// applyConsoleDefaults fills in zero-value fields with defaults.
func applyConsoleDefaults(cfg *ConsoleConfig) {
	if cfg.Writer == nil {
		cfg.Writer = os.Stderr
	}
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

// NewConsoleHandler creates a new console handler.
// Returns a SyncConsoleHandler when Async is false, or an AsyncConsoleHandler
// when Async is true. Both implement Handler, Leveled, and StatsProvider.
func NewConsoleHandler(cfg ConsoleConfig) handler.Handler {
	applyConsoleDefaults(&cfg)
	if cfg.Async {
		return newAsyncConsoleHandler(cfg)
	}
	return newSyncConsoleHandler(cfg)
}
