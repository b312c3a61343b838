package sloghandler

import (
	"context"
	"log/slog"

	"github.com/philipp01105/elfnlog/core"
)

// Level values slog lacks. FINEST and FINER sit below slog.LevelDebug the
// way TRACE conventionally does.
const (
	LevelFiner  slog.Level = slog.LevelDebug - 2
	LevelFinest slog.Level = slog.LevelDebug - 4
)

// Config configures a Bridge.
type Config struct {
	// Level is the bridge's own threshold (default: core.AllLevel)
	Level core.Level
	// IncludeSource hands the record's program counter to slog, which makes
	// the source available to slog.HandlerOptions.AddSource. Reading it
	// resolves the caller of deferred records.
	IncludeSource bool
	// LoggerKey is the attribute key for the logger name ("" omits it;
	// default "logger")
	LoggerKey string
}

// Bridge publishes records to a slog.Handler.
type Bridge struct {
	target slog.Handler
	cfg    Config
}

// New creates a Bridge publishing to target.
func New(target slog.Handler, cfg Config) *Bridge {
	if cfg.Level == 0 {
		cfg.Level = core.AllLevel
	}
	if cfg.LoggerKey == "" {
		cfg.LoggerKey = "logger"
	}
	return &Bridge{target: target, cfg: cfg}
}

// Level returns the bridge's own threshold (implements handler.Leveled).
func (b *Bridge) Level() core.Level { return b.cfg.Level }

// Handle converts r into a slog.Record and passes it to the target when
// the target is enabled for its level.
func (b *Bridge) Handle(r core.Record) error {
	ctx := context.Background()
	lvl := ToSlogLevel(r.Level())
	if !b.target.Enabled(ctx, lvl) {
		return nil
	}

	var pc uintptr
	if b.cfg.IncludeSource {
		if src, ok := core.SourceOf(r); ok {
			pc = src.PC
		}
	}
	rec := slog.NewRecord(r.Time(), lvl, core.FormatMessage(r.Message(), r.Parameters()), pc)
	if name := r.LoggerName(); name != "" {
		rec.AddAttrs(slog.String(b.cfg.LoggerKey, name))
	}
	if err := r.Thrown(); err != nil {
		rec.AddAttrs(slog.Any("error", err))
	}
	return b.target.Handle(ctx, rec)
}

// Close is a no-op; slog handlers have no lifecycle.
func (b *Bridge) Close() error { return nil }

// ToSlogLevel maps a native level onto slog's scale.
func ToSlogLevel(l core.Level) slog.Level {
	switch {
	case l >= core.SevereLevel:
		return slog.LevelError
	case l >= core.WarningLevel:
		return slog.LevelWarn
	case l >= core.InfoLevel:
		return slog.LevelInfo
	case l >= core.FineLevel:
		return slog.LevelDebug
	case l >= core.FinerLevel:
		return LevelFiner
	default:
		return LevelFinest
	}
}

// FromSlogLevel maps a slog level onto the native scale.
func FromSlogLevel(l slog.Level) core.Level {
	switch {
	case l >= slog.LevelError:
		return core.SevereLevel
	case l >= slog.LevelWarn:
		return core.WarningLevel
	case l >= slog.LevelInfo:
		return core.InfoLevel
	case l >= slog.LevelDebug:
		return core.FineLevel
	case l >= LevelFiner:
		return core.FinerLevel
	default:
		return core.FinestLevel
	}
}
