package sloghandler

import (
	"context"
	"log/slog"
	"runtime"
	"strings"
	"sync"

	"github.com/philipp01105/elfnlog/core"
	"github.com/philipp01105/elfnlog/handler"
)

// SlogHandler is an adapter that implements slog.Handler using a Handler.
// This allows the backend to be used as a drop-in replacement for log/slog.
// Attributes are rendered as key=value pairs appended to the message.
type SlogHandler struct {
	handler handler.Handler
	name    string
	level   core.Level
	attrs   string
	group   string
}

// NewSlogHandler creates a new slog.Handler adapter wrapping the given
// Handler. Records are stamped with name as their logger name.
func NewSlogHandler(h handler.Handler, name string, level core.Level) *SlogHandler {
	return &SlogHandler{
		handler: h,
		name:    name,
		level:   level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	lvl := FromSlogLevel(level)
	return lvl >= s.level && handler.Accepts(s.handler, lvl)
}

// Handle converts a slog.Record into a core.Record and passes it to the
// wrapped handler.
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	var sb strings.Builder
	sb.WriteString(record.Message)
	sb.WriteString(s.attrs)
	record.Attrs(func(a slog.Attr) bool {
		appendAttr(&sb, s.group, a)
		return true
	})

	r := newPCRecord(FromSlogLevel(record.Level), sb.String(), record.PC)
	if !record.Time.IsZero() {
		r.SetTime(record.Time)
	}
	r.SetLoggerName(s.name)
	return s.handler.Handle(r)
}

// WithAttrs returns a new SlogHandler with additional attributes.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return s
	}
	var sb strings.Builder
	sb.WriteString(s.attrs)
	for _, a := range attrs {
		appendAttr(&sb, s.group, a)
	}
	clone := *s
	clone.attrs = sb.String()
	return &clone
}

// WithGroup returns a new SlogHandler with the given group name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	clone := *s
	if s.group != "" {
		clone.group = s.group + "." + name
	} else {
		clone.group = name
	}
	return &clone
}

// appendAttr writes " key=value", prefixing the key with the group path.
// Group values are flattened.
func appendAttr(sb *strings.Builder, group string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	key := a.Key
	if group != "" && key != "" {
		key = group + "." + key
	} else if key == "" {
		key = group
	}
	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			appendAttr(sb, key, ga)
		}
		return
	}
	sb.WriteByte(' ')
	sb.WriteString(key)
	sb.WriteByte('=')
	sb.WriteString(a.Value.String())
}

// pcRecord is a record whose source is resolved from a program counter on
// first access. A source class or method set explicitly before that wins,
// and the program counter is then never symbolized.
type pcRecord struct {
	core.LogRecord

	mu             sync.Mutex
	pc             uintptr
	needsInference bool
	src            core.Caller
}

func newPCRecord(level core.Level, msg string, pc uintptr) *pcRecord {
	r := &pcRecord{pc: pc, needsInference: pc != 0}
	r.Init(level, msg)
	return r
}

func (r *pcRecord) inferLocked() {
	if !r.needsInference {
		return
	}
	r.needsInference = false
	f, _ := runtime.CallersFrames([]uintptr{r.pc}).Next()
	r.src.ClassName, r.src.MethodName = core.SplitFuncName(f.Function)
	r.src.File, r.src.Line = f.File, f.Line
	r.LogRecord.SetSourceClassName(r.src.ClassName)
	r.LogRecord.SetSourceMethodName(r.src.MethodName)
}

func (r *pcRecord) SourceClassName() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.inferLocked()
	return r.LogRecord.SourceClassName()
}

func (r *pcRecord) SetSourceClassName(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.needsInference = false
	r.LogRecord.SetSourceClassName(name)
}

func (r *pcRecord) SourceMethodName() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.inferLocked()
	return r.LogRecord.SourceMethodName()
}

func (r *pcRecord) SetSourceMethodName(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.needsInference = false
	r.LogRecord.SetSourceMethodName(name)
}

func (r *pcRecord) SourceFile() (string, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.inferLocked()
	return r.src.File, r.src.Line
}

func (r *pcRecord) SourcePC() uintptr { return r.pc }
