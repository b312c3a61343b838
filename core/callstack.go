package core

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
)

// ErrCallerNotFound is matched (via errors.Is) by every CallerNotFoundError.
var ErrCallerNotFound = errors.New("core: caller not found")

// CallerNotFoundError reports that no frame of a captured stack matched the
// expected entry point. It is not recoverable: retrying cannot change the
// shape of the call stack.
type CallerNotFoundError struct {
	EntryType    string
	EntryMethods []string
	Stack        []runtime.Frame
}

func (e *CallerNotFoundError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "core: unable to locate caller of %s#%s in calling stack [",
		e.EntryType, strings.Join(e.EntryMethods, "|"))
	for i, f := range e.Stack {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s(%s:%d)", f.Function, filepath.Base(f.File), f.Line)
	}
	sb.WriteByte(']')
	return sb.String()
}

func (e *CallerNotFoundError) Is(target error) bool { return target == ErrCallerNotFound }

// Caller describes one resolved stack frame.
//
// ClassName is the package import path, qualified with the receiver type
// name for methods (e.g. "example.com/app/store.Cache"); MethodName is the
// remainder (e.g. "Get", or "Run.func1" for a closure).
type Caller struct {
	ClassName  string
	MethodName string
	Function   string
	File       string
	Line       int
	PC         uintptr
}

// ShortFile returns the base name of File.
func (c Caller) ShortFile() string { return filepath.Base(c.File) }

func (c Caller) String() string {
	return fmt.Sprintf("%s.%s(%s:%d)", c.ClassName, c.MethodName, c.ShortFile(), c.Line)
}

// CallerResolver finds the frame immediately below an entry point.
type CallerResolver interface {
	MostRecentCallerOf(entryType string, entryMethods ...string) (Caller, error)
}

// MaxStackDepth bounds the number of frames captured by CaptureStack. Only
// the most recent frames matter for locating an entry point.
const MaxStackDepth = 32

// Stack is a captured, not yet symbolized, call stack ordered from the most
// recent frame to the oldest. Capturing is cheap; symbolization only happens
// in Frames and MostRecentCallerOf.
//
// Resolving through captured program counters, rather than walking the live
// stack, means a Stack may be resolved later and on any goroutine. The price
// is one runtime.Callers call per capture; call sites that want to avoid it
// entirely would have to pass their location explicitly, which is not what
// the logging facade contract looks like.
type Stack []uintptr

// CaptureStack records the stack of the calling goroutine, skipping skip
// frames above the caller of CaptureStack.
func CaptureStack(skip int) Stack {
	return Callers(skip+1, make([]uintptr, MaxStackDepth))
}

// Callers is CaptureStack writing into the caller-provided pcs.
func Callers(skip int, pcs []uintptr) Stack {
	n := runtime.Callers(skip+2, pcs)
	return Stack(pcs[:n])
}

// MostRecentCallerOf captures the current stack and resolves the caller of
// the given entry point. See Stack.MostRecentCallerOf.
func MostRecentCallerOf(entryType string, entryMethods ...string) (Caller, error) {
	return CaptureStack(1).MostRecentCallerOf(entryType, entryMethods...)
}

// MostRecentCallerOf scans s from the most recent frame towards the oldest
// for the first frame declared by entryType with one of entryMethods, and
// returns the frame that follows it, i.e. its caller.
func (s Stack) MostRecentCallerOf(entryType string, entryMethods ...string) (Caller, error) {
	if len(s) > 0 {
		frames := runtime.CallersFrames(s)
		found := false
		for {
			f, more := frames.Next()
			if found {
				return callerFromFrame(f), nil
			}
			if f.Function != "" {
				typ, method := SplitFuncName(f.Function)
				found = typ == entryType && slices.Contains(entryMethods, method)
			}
			if !more {
				break
			}
		}
	}
	return Caller{}, &CallerNotFoundError{
		EntryType:    entryType,
		EntryMethods: entryMethods,
		Stack:        s.Frames(),
	}
}

// Frames symbolizes every frame of s, inlined frames included.
func (s Stack) Frames() []runtime.Frame {
	if len(s) == 0 {
		return nil
	}
	out := make([]runtime.Frame, 0, len(s))
	frames := runtime.CallersFrames(s)
	for {
		f, more := frames.Next()
		out = append(out, f)
		if !more {
			return out
		}
	}
}

func callerFromFrame(f runtime.Frame) Caller {
	class, method := SplitFuncName(f.Function)
	return Caller{
		ClassName:  class,
		MethodName: method,
		Function:   f.Function,
		File:       f.File,
		Line:       f.Line,
		PC:         f.PC,
	}
}

// SplitFuncName splits a fully qualified function name, as reported by the
// runtime, into its declaring type (or package, for plain functions) and
// the method or function name:
//
//	example.com/app/store.(*Cache).Get -> example.com/app/store.Cache, Get
//	example.com/app/store.Cache.Len    -> example.com/app/store.Cache, Len
//	example.com/app/store.Open         -> example.com/app/store, Open
//	example.com/app/store.Open.func1   -> example.com/app/store, Open.func1
func SplitFuncName(fn string) (typeName, method string) {
	if strings.IndexByte(fn, '[') >= 0 {
		fn = strings.ReplaceAll(fn, "[...]", "")
	}
	slash := strings.LastIndexByte(fn, '/')
	dot := strings.IndexByte(fn[slash+1:], '.')
	if dot < 0 {
		return "", fn
	}
	pkg := fn[:slash+1+dot]
	if strings.Contains(pkg, "%2e") {
		pkg = strings.ReplaceAll(pkg, "%2e", ".")
	}
	rest := fn[slash+1+dot+1:]

	if strings.HasPrefix(rest, "(") {
		if end := strings.IndexByte(rest, ')'); end > 0 && end+1 < len(rest) && rest[end+1] == '.' {
			return pkg + "." + strings.TrimPrefix(rest[1:end], "*"), rest[end+2:]
		}
	}
	if i := strings.IndexByte(rest, '.'); i > 0 && !isClosureSuffix(rest[i+1:]) {
		return pkg + "." + rest[:i], rest[i+1:]
	}
	return pkg, rest
}

// isClosureSuffix reports whether s names a compiler generated closure
// ("func1", "1", or the ".func1" of a package level var initializer).
func isClosureSuffix(s string) bool {
	if s == "" {
		return false
	}
	if s[0] == '.' || (s[0] >= '0' && s[0] <= '9') {
		return true
	}
	return strings.HasPrefix(s, "func") && len(s) > 4 && s[4] >= '0' && s[4] <= '9'
}
