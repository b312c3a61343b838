package binding

import (
	"fmt"

	"github.com/philipp01105/elfnlog/core"
	"github.com/philipp01105/elfnlog/elf"
	"github.com/philipp01105/elfnlog/logger"
)

// levelLogger is the elf.Logger of this binding. It is immutable; the
// backend logger of the same name decides whether its level is enabled.
//
// The exported logging methods each call log directly and never one
// another: record caller inference looks for them on the stack and takes
// the frame below as the call site.
type levelLogger struct {
	name        string
	level       elf.Level
	nativeLevel core.Level
	native      *logger.Logger
}

func newLevelLogger(name string, level elf.Level) *levelLogger {
	return &levelLogger{
		name:        name,
		level:       level,
		nativeLevel: toNative(level),
		native:      logger.Get(name),
	}
}

func (l *levelLogger) Name() string        { return l.name }
func (l *levelLogger) Level() elf.Level    { return l.level }
func (l *levelLogger) AtTrace() elf.Logger { return l.atLevel(elf.TRACE) }
func (l *levelLogger) AtDebug() elf.Logger { return l.atLevel(elf.DEBUG) }
func (l *levelLogger) AtInfo() elf.Logger  { return l.atLevel(elf.INFO) }
func (l *levelLogger) AtWarn() elf.Logger  { return l.atLevel(elf.WARN) }
func (l *levelLogger) AtError() elf.Logger { return l.atLevel(elf.ERROR) }

func (l *levelLogger) AtLevel(level elf.Level) elf.Logger { return l.atLevel(level) }

// atLevel returns l itself for its own level and the shared no-op logger
// for OFF or any value outside the declared levels.
func (l *levelLogger) atLevel(level elf.Level) elf.Logger {
	switch {
	case level == l.level:
		return l
	case level == elf.OFF || !level.Valid():
		return elf.Noop
	default:
		return getOrCreate(l.name, level)
	}
}

func (l *levelLogger) Enabled() bool {
	return l.native.IsLoggable(l.nativeLevel)
}

func (l *levelLogger) Log(message any) {
	if !l.native.IsLoggable(l.nativeLevel) {
		return
	}
	l.log(materialize(message), nil, nil)
}

func (l *levelLogger) Logf(template string, args ...any) {
	if !l.native.IsLoggable(l.nativeLevel) {
		return
	}
	l.log(translatePlaceholders(template), evaluateArgs(args), nil)
}

func (l *levelLogger) LogErr(err error) {
	if !l.native.IsLoggable(l.nativeLevel) {
		return
	}
	l.log("", nil, err)
}

func (l *levelLogger) LogErrMsg(err error, message any) {
	if !l.native.IsLoggable(l.nativeLevel) {
		return
	}
	l.log(materialize(message), nil, err)
}

func (l *levelLogger) LogErrf(err error, template string, args ...any) {
	if !l.native.IsLoggable(l.nativeLevel) {
		return
	}
	l.log(translatePlaceholders(template), evaluateArgs(args), err)
}

// log builds one record and hands it to the backend. Callers have already
// checked the level.
func (l *levelLogger) log(msg string, params []any, err error) {
	r := newCallerRecord(l.nativeLevel, msg)
	if len(params) > 0 {
		r.SetParameters(params)
	}
	if err != nil {
		r.SetThrown(err)
	}
	l.native.Log(r)
}

func (l *levelLogger) String() string {
	return fmt.Sprintf("levelLogger(name=%s, level=%s)", l.name, l.level)
}

// evaluate calls v if it is a supplier and returns v unchanged otherwise.
// A nil supplier evaluates to nil.
func evaluate(v any) any {
	switch f := v.(type) {
	case elf.Supplier:
		if f == nil {
			return nil
		}
		return f()
	case func() any:
		if f == nil {
			return nil
		}
		return f()
	case func() string:
		if f == nil {
			return nil
		}
		return f()
	default:
		return v
	}
}

func materialize(message any) string {
	return core.Stringify(evaluate(message))
}

// evaluateArgs returns args with every supplier replaced by its value. args
// itself is returned when it holds no supplier.
func evaluateArgs(args []any) []any {
	for i, a := range args {
		switch a.(type) {
		case elf.Supplier, func() any, func() string:
			out := make([]any, len(args))
			copy(out, args[:i])
			for j := i; j < len(args); j++ {
				out[j] = evaluate(args[j])
			}
			return out
		}
	}
	return args
}
