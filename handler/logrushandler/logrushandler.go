// Package logrushandler publishes records to a github.com/sirupsen/logrus
// logger.
package logrushandler

import (
	"github.com/sirupsen/logrus"

	"github.com/philipp01105/elfnlog/core"
)

// Config configures a Handler.
type Config struct {
	// Level is the handler's own threshold (default: core.AllLevel)
	Level core.Level
	// IncludeCaller adds "func", "file" and "line" fields. Reading them
	// resolves the caller of deferred records.
	IncludeCaller bool
	// LoggerKey is the field for the logger name (default "logger")
	LoggerKey string
}

// Handler publishes records to a logrus.Logger.
type Handler struct {
	logger *logrus.Logger
	cfg    Config
}

// New creates a Handler writing through l. It panics if l is nil.
func New(l *logrus.Logger, cfg Config) *Handler {
	if l == nil {
		panic("logrushandler: nil logger")
	}
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

// Handle writes r when the logrus logger is enabled for its level.
func (h *Handler) Handle(r core.Record) error {
	lvl := ToLogrusLevel(r.Level())
	if !h.logger.IsLevelEnabled(lvl) {
		return nil
	}
	fields := make(logrus.Fields, 4)
	if name := r.LoggerName(); name != "" {
		fields[h.cfg.LoggerKey] = name
	}
	if err := r.Thrown(); err != nil {
		fields[logrus.ErrorKey] = err
	}
	if h.cfg.IncludeCaller {
		if src, ok := core.SourceOf(r); ok {
			fields[logrus.FieldKeyFunc] = src.ClassName + "." + src.MethodName
			if src.File != "" {
				fields[logrus.FieldKeyFile] = src.File
				fields["line"] = src.Line
			}
		}
	}
	logrus.NewEntry(h.logger).
		WithTime(r.Time()).
		WithFields(fields).
		Log(lvl, core.FormatMessage(r.Message(), r.Parameters()))
	return nil
}

// Close is a no-op; the logrus output is owned by the caller.
func (h *Handler) Close() error { return nil }

// ToLogrusLevel maps a native level onto logrus's scale.
func ToLogrusLevel(l core.Level) logrus.Level {
	switch {
	case l >= core.SevereLevel:
		return logrus.ErrorLevel
	case l >= core.WarningLevel:
		return logrus.WarnLevel
	case l >= core.InfoLevel:
		return logrus.InfoLevel
	case l >= core.FineLevel:
		return logrus.DebugLevel
	default:
		return logrus.TraceLevel
	}
}
