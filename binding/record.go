package binding

import (
	"sync"

	"github.com/philipp01105/elfnlog/core"
)

// callerRecord is the record handed to the backend for each log call. Its
// source class and method are inferred from the call stack the first time
// either is read, unless one of them was set explicitly before.
//
// A goroutine's stack cannot be walked once the call has returned, so every
// enabled log call pays for one runtime.Callers into the record's own
// MaxStackDepth program counter array, whether or not the source is ever
// read. Symbolizing those counters and searching for the logging call only
// happens on first read, possibly on a handler goroutine.
type callerRecord struct {
	core.LogRecord

	mu             sync.Mutex
	needsInference bool
	caller         core.Caller
	stack          core.Stack
	pcs            [core.MaxStackDepth]uintptr
}

// resolverFor returns the resolver that infers the call site of a record
// from its captured stack.
var resolverFor = func(s core.Stack) core.CallerResolver { return s }

func newCallerRecord(level core.Level, msg string) *callerRecord {
	r := &callerRecord{needsInference: true}
	r.Init(level, msg)
	r.stack = core.Callers(1, r.pcs[:])
	return r
}

func (r *callerRecord) SourceClassName() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.inferLocked()
	return r.LogRecord.SourceClassName()
}

func (r *callerRecord) SetSourceClassName(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.needsInference = false
	r.LogRecord.SetSourceClassName(name)
}

func (r *callerRecord) SourceMethodName() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.inferLocked()
	return r.LogRecord.SourceMethodName()
}

func (r *callerRecord) SetSourceMethodName(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.needsInference = false
	r.LogRecord.SetSourceMethodName(name)
}

// SourceFile returns the file and line of the inferred call site. Both are
// zero when the source was set explicitly.
func (r *callerRecord) SourceFile() (string, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.inferLocked()
	return r.caller.File, r.caller.Line
}

// SourcePC returns the program counter of the inferred call site, or zero.
func (r *callerRecord) SourcePC() uintptr {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.inferLocked()
	return r.caller.PC
}

// inferLocked resolves the call site once. The stack of a record built by
// levelLogger always contains the logging call, so failing to find it
// means the record was built some other way; that is a programming error
// and panics with the *core.CallerNotFoundError.
func (r *callerRecord) inferLocked() {
	if !r.needsInference {
		return
	}
	r.needsInference = false

	res := resolverFor(r.stack)
	c, err := res.MostRecentCallerOf(dispatchType, dispatchMethods...)
	if err == nil && c.ClassName == forwardType {
		// Logged through a logger acquired before this binding registered
		c, err = res.MostRecentCallerOf(forwardType, dispatchMethods...)
	}
	if err != nil {
		panic(err)
	}
	r.caller = c
	r.LogRecord.SetSourceClassName(c.ClassName)
	r.LogRecord.SetSourceMethodName(c.MethodName)
}
