package elf

// Noop is the shared logger returned whenever OFF is requested or no
// binding is registered. Every call on it is a no-op.
var Noop Logger = noopLogger{}

type noopLogger struct{}

func (noopLogger) Name() string                  { return "" }
func (noopLogger) Level() Level                  { return OFF }
func (n noopLogger) AtTrace() Logger             { return n }
func (n noopLogger) AtDebug() Logger             { return n }
func (n noopLogger) AtInfo() Logger              { return n }
func (n noopLogger) AtWarn() Logger              { return n }
func (n noopLogger) AtError() Logger             { return n }
func (n noopLogger) AtLevel(Level) Logger        { return n }
func (noopLogger) Enabled() bool                 { return false }
func (noopLogger) Log(any)                       {}
func (noopLogger) Logf(string, ...any)           {}
func (noopLogger) LogErr(error)                  {}
func (noopLogger) LogErrMsg(error, any)          {}
func (noopLogger) LogErrf(error, string, ...any) {}
func (noopLogger) String() string                { return "elf.Noop" }
