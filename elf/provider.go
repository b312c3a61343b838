package elf

import (
	"reflect"
	"sync/atomic"
)

// Provider is implemented by bindings. Logger returns the logger for name
// at the default level; an empty name asks the binding to name the logger
// after the code that called Instance, Named or For.
type Provider interface {
	Logger(name string) Logger
}

var provider atomic.Pointer[Provider]

// SetProvider registers the process-wide binding. Bindings call it from
// their init function. A nil p unregisters it: loggers acquired afterwards
// discard records until a provider is registered again.
func SetProvider(p Provider) {
	if p == nil {
		provider.Store(nil)
		return
	}
	provider.Store(&p)
}

// CurrentProvider returns the registered binding, or nil.
func CurrentProvider() Provider {
	if p := provider.Load(); p != nil {
		return *p
	}
	return nil
}

// Instance returns the logger named after the calling package, or after
// the receiver type when called from a method.
//
// Acquisitions made before a provider is registered, such as package level
// vars initialized ahead of the binding, return a logger that binds to the
// provider on first use.
func Instance() Logger {
	p := provider.Load()
	if p == nil {
		return newLateLogger(callerName())
	}
	return (*p).Logger("")
}

// Named returns the logger called name. An empty name behaves as Instance.
func Named(name string) Logger {
	p := provider.Load()
	if p == nil {
		if name == "" {
			name = callerName()
		}
		return newLateLogger(name)
	}
	return (*p).Logger(name)
}

// For returns the logger named after the type of v, e.g.
// "example.com/app/store.Cache" for a *store.Cache. A nil v behaves as
// Instance.
func For(v any) Logger {
	name := TypeName(v)
	p := provider.Load()
	if p == nil {
		if name == "" {
			name = callerName()
		}
		return newLateLogger(name)
	}
	return (*p).Logger(name)
}

// TypeName returns the package qualified name of the type of v, looking
// through pointers. It returns the empty string for nil.
func TypeName(v any) string {
	t, ok := v.(reflect.Type)
	if !ok {
		t = reflect.TypeOf(v)
	}
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch {
	case t == nil:
		return ""
	case t.PkgPath() == "" || t.Name() == "":
		return t.String()
	default:
		return t.PkgPath() + "." + t.Name()
	}
}
