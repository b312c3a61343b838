package consolehandler

import (
	"github.com/philipp01105/elfnlog/core"
	"github.com/philipp01105/elfnlog/handler"
)

// SyncConsoleHandler is a synchronous console handler optimized for the
// single-goroutine hot path. Records are formatted and written before
// Handle returns, on the logging goroutine.
type SyncConsoleHandler struct {
	consoleBase
}

// newSyncConsoleHandler creates a new synchronous console handler.
func newSyncConsoleHandler(cfg ConsoleConfig) *SyncConsoleHandler {
	h := &SyncConsoleHandler{}
	h.init(cfg)
	return h
}

// Handle processes a log record synchronously.
func (h *SyncConsoleHandler) Handle(r core.Record) error {
	if !handler.Accepts(h, r.Level()) {
		return nil
	}
	return h.write(r)
}

// Close closes the handler.
func (h *SyncConsoleHandler) Close() error {
	select {
	case <-h.closed:
		return nil // Already closed
	default:
		close(h.closed)
	}
	return nil
}
