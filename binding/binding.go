package binding

import (
	"reflect"

	"github.com/philipp01105/elfnlog/core"
	"github.com/philipp01105/elfnlog/elf"
)

// DefaultLevel is the level of loggers handed out by acquisition.
const DefaultLevel = elf.INFO

var (
	facadePkg  = reflect.TypeOf(elf.Level(0)).PkgPath()
	bindingPkg = reflect.TypeOf(provider{}).PkgPath()

	// Functions whose caller names an unnamed logger.
	acquisitionFuncs = []string{"Instance", "Named", "For"}

	// Methods whose caller is the source of a record.
	dispatchType    = bindingPkg + ".levelLogger"
	dispatchMethods = []string{"Log", "Logf", "LogErr", "LogErrMsg", "LogErrf"}

	// The facade's stand-in for loggers acquired before SetProvider. Its
	// logging methods call ours of the same name directly.
	forwardType = facadePkg + ".lateLogger"
)

func init() {
	elf.SetProvider(provider{})
}

// provider serves elf.Instance, elf.Named and elf.For.
type provider struct{}

func (provider) Logger(name string) elf.Logger {
	if name == "" {
		name = callerName(facadePkg)
	}
	return getOrCreate(name, DefaultLevel)
}

// Instance returns the logger named after the calling package, or after
// the receiver type when called from a method.
func Instance() elf.Logger {
	return getOrCreate(callerName(bindingPkg), DefaultLevel)
}

// Named returns the logger called name; an empty name behaves as Instance.
func Named(name string) elf.Logger {
	if name == "" {
		name = callerName(bindingPkg)
	}
	return getOrCreate(name, DefaultLevel)
}

// For returns the logger named after the type of v; a nil v behaves as
// Instance.
func For(v any) elf.Logger {
	name := elf.TypeName(v)
	if name == "" {
		name = callerName(bindingPkg)
	}
	return getOrCreate(name, DefaultLevel)
}

// callerName returns the class name of the code that called one of the
// acquisition functions of pkg. A stack without such a call cannot be
// repaired at run time, so the error is raised as a panic.
func callerName(pkg string) string {
	c, err := core.MostRecentCallerOf(pkg, acquisitionFuncs...)
	if err != nil {
		panic(err)
	}
	return c.ClassName
}
