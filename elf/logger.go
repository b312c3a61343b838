package elf

// Supplier produces a message or argument on demand. Loggers call it at most
// once, and only when the level is enabled. Plain func() any and
// func() string values are treated the same way.
type Supplier func() any

// Logger is bound to a name and a level. Implementations are immutable and
// safe for concurrent use; the AtX methods return the logger for the same
// name at another level.
type Logger interface {
	Name() string
	Level() Level

	AtTrace() Logger
	AtDebug() Logger
	AtInfo() Logger
	AtWarn() Logger
	AtError() Logger
	AtLevel(level Level) Logger

	// Enabled reports whether records at this logger's level would be
	// published.
	Enabled() bool

	// Log logs message, evaluating it first if it is a Supplier.
	Log(message any)
	// Logf logs template with each {} placeholder replaced, in order, by
	// the corresponding argument. Supplier arguments are evaluated first.
	Logf(template string, args ...any)
	// LogErr logs err with an empty message.
	LogErr(err error)
	// LogErrMsg logs err along with message (direct or Supplier).
	LogErrMsg(err error, message any)
	// LogErrf logs err along with a templated message, as Logf.
	LogErrf(err error, template string, args ...any)
}
