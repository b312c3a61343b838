// Package zaphandler publishes records to a go.uber.org/zap core, so the
// facade can front an existing zap pipeline.
package zaphandler

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/elfnlog/core"
)

// Config configures a Handler.
type Config struct {
	// Level is the handler's own threshold (default: core.AllLevel)
	Level core.Level
	// IncludeCaller fills zapcore.Entry.Caller. Reading it resolves the
	// caller of deferred records.
	IncludeCaller bool
}

// Handler publishes records to a zapcore.Core.
type Handler struct {
	core zapcore.Core
	cfg  Config
}

// New creates a Handler writing to c.
func New(c zapcore.Core, cfg Config) *Handler {
	if cfg.Level == 0 {
		cfg.Level = core.AllLevel
	}
	return &Handler{core: c, cfg: cfg}
}

// Level returns the handler's own threshold (implements handler.Leveled).
func (h *Handler) Level() core.Level { return h.cfg.Level }

// Handle writes r to the core when the core is enabled for its level.
func (h *Handler) Handle(r core.Record) error {
	lvl := ToZapLevel(r.Level())
	if !h.core.Enabled(lvl) {
		return nil
	}
	ent := zapcore.Entry{
		Level:      lvl,
		Time:       r.Time(),
		LoggerName: r.LoggerName(),
		Message:    core.FormatMessage(r.Message(), r.Parameters()),
	}
	if h.cfg.IncludeCaller {
		if src, ok := core.SourceOf(r); ok {
			ent.Caller = zapcore.NewEntryCaller(src.PC, src.File, src.Line, src.File != "")
			ent.Caller.Function = src.ClassName + "." + src.MethodName
		}
	}
	var fields []zapcore.Field
	if err := r.Thrown(); err != nil {
		fields = append(fields, zap.Error(err))
	}
	return h.core.Write(ent, fields)
}

// Close flushes the core.
func (h *Handler) Close() error {
	return h.core.Sync()
}

// ToZapLevel maps a native level onto zap's scale. Everything below INFO
// is debug.
func ToZapLevel(l core.Level) zapcore.Level {
	switch {
	case l >= core.SevereLevel:
		return zapcore.ErrorLevel
	case l >= core.WarningLevel:
		return zapcore.WarnLevel
	case l >= core.InfoLevel:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}
