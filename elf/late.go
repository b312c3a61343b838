package elf

import (
	"fmt"
	"reflect"
	"sync/atomic"

	"github.com/philipp01105/elfnlog/core"
)

var facadePkg = reflect.TypeOf(Level(0)).PkgPath()

// lateLogger stands in for loggers acquired while no provider is
// registered, typically package level vars initialized before the
// binding's init has run. It binds to the provider's logger on first use
// after SetProvider and forwards to it from then on. Until a provider is
// registered it discards everything.
//
// Each logging method calls the bound logger's method of the same name
// directly, which lets a binding infer the call site through it.
type lateLogger struct {
	name    string
	level   Level
	shifted bool // level was requested through AtX; otherwise the provider's default
	bound   atomic.Pointer[Logger]
}

func newLateLogger(name string) *lateLogger {
	return &lateLogger{name: name}
}

// target returns the bound logger, binding it if a provider is registered,
// or nil.
func (l *lateLogger) target() Logger {
	if t := l.bound.Load(); t != nil {
		return *t
	}
	p := provider.Load()
	if p == nil {
		return nil
	}
	t := (*p).Logger(l.name)
	if l.shifted {
		t = t.AtLevel(l.level)
	}
	l.bound.Store(&t)
	return t
}

func (l *lateLogger) Name() string { return l.name }

func (l *lateLogger) Level() Level {
	if t := l.target(); t != nil {
		return t.Level()
	}
	if l.shifted {
		return l.level
	}
	return INFO
}

func (l *lateLogger) AtTrace() Logger { return l.AtLevel(TRACE) }
func (l *lateLogger) AtDebug() Logger { return l.AtLevel(DEBUG) }
func (l *lateLogger) AtInfo() Logger  { return l.AtLevel(INFO) }
func (l *lateLogger) AtWarn() Logger  { return l.AtLevel(WARN) }
func (l *lateLogger) AtError() Logger { return l.AtLevel(ERROR) }

func (l *lateLogger) AtLevel(level Level) Logger {
	if t := l.target(); t != nil {
		return t.AtLevel(level)
	}
	switch {
	case level == OFF || !level.Valid():
		return Noop
	case l.shifted && level == l.level:
		return l
	default:
		return &lateLogger{name: l.name, level: level, shifted: true}
	}
}

func (l *lateLogger) Enabled() bool {
	if t := l.target(); t != nil {
		return t.Enabled()
	}
	return false
}

func (l *lateLogger) Log(message any) {
	if t := l.target(); t != nil {
		t.Log(message)
	}
}

func (l *lateLogger) Logf(template string, args ...any) {
	if t := l.target(); t != nil {
		t.Logf(template, args...)
	}
}

func (l *lateLogger) LogErr(err error) {
	if t := l.target(); t != nil {
		t.LogErr(err)
	}
}

func (l *lateLogger) LogErrMsg(err error, message any) {
	if t := l.target(); t != nil {
		t.LogErrMsg(err, message)
	}
}

func (l *lateLogger) LogErrf(err error, template string, args ...any) {
	if t := l.target(); t != nil {
		t.LogErrf(err, template, args...)
	}
}

func (l *lateLogger) String() string {
	if t := l.target(); t != nil {
		return fmt.Sprint(t)
	}
	return fmt.Sprintf("lateLogger(name=%s, level=%s)", l.name, l.Level())
}

// callerName returns the class name of the code that called Instance,
// Named or For. It must be called from those functions directly.
func callerName() string {
	c, err := core.MostRecentCallerOf(facadePkg, "Instance", "Named", "For")
	if err != nil {
		panic(err)
	}
	return c.ClassName
}
