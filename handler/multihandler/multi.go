package multihandler

import (
	"go.uber.org/multierr"

	"github.com/philipp01105/elfnlog/core"
	"github.com/philipp01105/elfnlog/handler"
)

// MultiHandler sends log records to multiple handlers
type MultiHandler struct {
	handlers []handler.Handler
}

// NewMultiHandler creates a new multi-handler
func NewMultiHandler(handlers ...handler.Handler) *MultiHandler {
	return &MultiHandler{handlers: handlers}
}

// Handle processes a log record by sending it to all handlers whose own
// threshold accepts it. Every child is tried; failures are combined.
func (h *MultiHandler) Handle(r core.Record) error {
	var err error
	for _, child := range h.handlers {
		if !handler.Accepts(child, r.Level()) {
			continue
		}
		err = multierr.Append(err, child.Handle(r))
	}
	return err
}

// Level returns the lowest threshold among the children, so that a
// MultiHandler never filters out a record one of them would accept.
func (h *MultiHandler) Level() core.Level {
	lowest := core.OffLevel
	for _, child := range h.handlers {
		lh, ok := child.(handler.Leveled)
		if !ok {
			return core.AllLevel
		}
		if lvl := lh.Level(); lvl < lowest {
			lowest = lvl
		}
	}
	return lowest
}

// Close closes all handlers
func (h *MultiHandler) Close() error {
	var err error
	for _, child := range h.handlers {
		err = multierr.Append(err, child.Close())
	}
	return err
}
