package filehandler

import (
	"os"

	"github.com/philipp01105/elfnlog/core"
	"github.com/philipp01105/elfnlog/handler"
)

// SyncFileHandler is a synchronous file handler. Records are formatted into
// a bufio.Writer under the handler lock; Flush or Close pushes them to disk.
type SyncFileHandler struct {
	fileBase
}

// newSyncFileHandler creates a new synchronous file handler.
func newSyncFileHandler(cfg FileConfig, file *os.File, fileSize int64) *SyncFileHandler {
	h := &SyncFileHandler{}
	initFileBase(&h.fileBase, cfg, file, fileSize)
	return h
}

// Handle processes a log record synchronously.
func (h *SyncFileHandler) Handle(r core.Record) error {
	if !handler.Accepts(h, r.Level()) {
		return nil
	}
	return h.write(r)
}

// Flush writes buffered records through to the file.
func (h *SyncFileHandler) Flush() error {
	return h.flush()
}

// Close closes the handler and the underlying file.
func (h *SyncFileHandler) Close() error {
	select {
	case <-h.closed:
		return nil // Already closed
	default:
		close(h.closed)
	}
	return h.closeFile()
}
