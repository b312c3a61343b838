package benchmark

import (
	"github.com/philipp01105/elfnlog/core"
	"github.com/philipp01105/elfnlog/handler"
)

type noopHandler struct {
	readSource bool
}

func newNoopHandler(readSource bool) handler.Handler {
	return &noopHandler{readSource: readSource}
}

func (h *noopHandler) Handle(r core.Record) error {
	_ = len(r.Message())
	if h.readSource {
		_ = r.SourceMethodName()
	}
	return nil
}

func (h *noopHandler) Close() error {
	return nil
}
