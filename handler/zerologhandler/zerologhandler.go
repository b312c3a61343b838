// Package zerologhandler publishes records to a github.com/rs/zerolog
// logger.
package zerologhandler

import (
	"strconv"

	"github.com/rs/zerolog"

	"github.com/philipp01105/elfnlog/core"
)

// Config configures a Handler.
type Config struct {
	// Level is the handler's own threshold (default: core.AllLevel)
	Level core.Level
	// IncludeCaller adds zerolog.CallerFieldName ("file:line"). Reading it
	// resolves the caller of deferred records.
	IncludeCaller bool
	// LoggerKey is the field for the logger name (default "logger")
	LoggerKey string
}

// Handler publishes records to a zerolog.Logger.
type Handler struct {
	logger zerolog.Logger
	cfg    Config
}

// New creates a Handler writing through l.
func New(l zerolog.Logger, cfg Config) *Handler {
	if cfg.Level == 0 {
		cfg.Level = core.AllLevel
	}
	if cfg.LoggerKey == "" {
		cfg.LoggerKey = "logger"
	}
	return &Handler{logger: l, cfg: cfg}
}

// Level returns the handler's own threshold (implements handler.Leveled).
func (h *Handler) Level() core.Level { return h.cfg.Level }

// Handle writes r. zerolog reports write failures through
// zerolog.ErrorHandler, so Handle itself never fails.
func (h *Handler) Handle(r core.Record) error {
	ev := h.logger.WithLevel(ToZerologLevel(r.Level()))
	if ev == nil {
		return nil
	}
	ev = ev.Time(zerolog.TimestampFieldName, r.Time())
	if name := r.LoggerName(); name != "" {
		ev = ev.Str(h.cfg.LoggerKey, name)
	}
	if err := r.Thrown(); err != nil {
		ev = ev.Err(err)
	}
	if h.cfg.IncludeCaller {
		if src, ok := core.SourceOf(r); ok && src.File != "" {
			ev = ev.Str(zerolog.CallerFieldName, src.File+":"+strconv.Itoa(src.Line))
		}
	}
	ev.Msg(core.FormatMessage(r.Message(), r.Parameters()))
	return nil
}

// Close is a no-op; the zerolog writer is owned by the caller.
func (h *Handler) Close() error { return nil }

// ToZerologLevel maps a native level onto zerolog's scale.
func ToZerologLevel(l core.Level) zerolog.Level {
	switch {
	case l >= core.SevereLevel:
		return zerolog.ErrorLevel
	case l >= core.WarningLevel:
		return zerolog.WarnLevel
	case l >= core.InfoLevel:
		return zerolog.InfoLevel
	case l >= core.FineLevel:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}
