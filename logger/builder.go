package logger

import (
	"github.com/philipp01105/elfnlog/core"
	"github.com/philipp01105/elfnlog/handler"
)

// Builder provides a fluent API for configuring a named Logger. Loggers are
// shared per name, so Build applies the configuration to the registered
// instance rather than creating a private one.
type Builder struct {
	name      string
	handlers  []handler.Handler
	level     core.Level
	hasLevel  bool
	useParent *bool
}

// NewBuilder creates a builder for the logger named name ("" for root).
func NewBuilder(name string) *Builder {
	return &Builder{name: name}
}

// WithHandler adds a handler
func (b *Builder) WithHandler(h handler.Handler) *Builder {
	b.handlers = append(b.handlers, h)
	return b
}

// WithLevel sets the log level
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.level = level
	b.hasLevel = true
	return b
}

// WithUseParentHandlers controls propagation to ancestor handlers
func (b *Builder) WithUseParentHandlers(use bool) *Builder {
	b.useParent = &use
	return b
}

// Build applies the configuration and returns the Logger
func (b *Builder) Build() *Logger {
	l := Get(b.name)
	if b.useParent != nil {
		l.SetUseParentHandlers(*b.useParent)
	}
	for _, h := range b.handlers {
		l.AddHandler(h)
	}
	if b.hasLevel {
		l.SetLevel(b.level)
	}
	return l
}
