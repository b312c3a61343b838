package core

import (
	"sync/atomic"
	"time"
)

// Record is a single log event as seen by loggers, handlers and formatters.
//
// Source class and method are accessed through methods rather than fields so
// that implementations may compute them on demand.
type Record interface {
	Time() time.Time
	Level() Level
	Sequence() uint64

	LoggerName() string
	SetLoggerName(name string)

	// Message is the raw message, possibly holding {n} placeholders that
	// refer to Parameters. See FormatMessage.
	Message() string
	Parameters() []any
	SetParameters(params []any)

	Thrown() error
	SetThrown(err error)

	SourceClassName() string
	SetSourceClassName(name string)
	SourceMethodName() string
	SetSourceMethodName(name string)
}

// SourceLocator is implemented by records that also know the source file,
// line and program counter of the call site.
type SourceLocator interface {
	SourceFile() (file string, line int)
	SourcePC() uintptr
}

var recordSeq atomic.Uint64

// LogRecord is the plain Record implementation. It is not safe for
// concurrent mutation; once handed to a logger it should be treated as
// read-only.
type LogRecord struct {
	time       time.Time
	level      Level
	seq        uint64
	loggerName string
	message    string
	params     []any
	thrown     error
	className  string
	methodName string
}

// NewLogRecord creates a record stamped with the current time and the next
// sequence number.
func NewLogRecord(level Level, msg string) *LogRecord {
	r := &LogRecord{}
	r.Init(level, msg)
	return r
}

// Init resets r in place, for types embedding LogRecord.
func (r *LogRecord) Init(level Level, msg string) {
	*r = LogRecord{
		time:    Now(),
		level:   level,
		seq:     recordSeq.Add(1),
		message: msg,
	}
}

func (r *LogRecord) Time() time.Time           { return r.time }
func (r *LogRecord) SetTime(t time.Time)       { r.time = t }
func (r *LogRecord) Level() Level              { return r.level }
func (r *LogRecord) Sequence() uint64          { return r.seq }
func (r *LogRecord) LoggerName() string        { return r.loggerName }
func (r *LogRecord) SetLoggerName(name string) { r.loggerName = name }
func (r *LogRecord) Message() string           { return r.message }
func (r *LogRecord) Parameters() []any         { return r.params }
func (r *LogRecord) SetParameters(p []any)     { r.params = p }
func (r *LogRecord) Thrown() error             { return r.thrown }
func (r *LogRecord) SetThrown(err error)       { r.thrown = err }

func (r *LogRecord) SourceClassName() string         { return r.className }
func (r *LogRecord) SetSourceClassName(name string)  { r.className = name }
func (r *LogRecord) SourceMethodName() string        { return r.methodName }
func (r *LogRecord) SetSourceMethodName(name string) { r.methodName = name }

// SourceOf collects the source details of r. PC, File and Line are only
// known for records implementing SourceLocator. ok is false when r carries
// no source information at all.
func SourceOf(r Record) (c Caller, ok bool) {
	c.ClassName = r.SourceClassName()
	c.MethodName = r.SourceMethodName()
	if sl, isLocator := r.(SourceLocator); isLocator {
		c.File, c.Line = sl.SourceFile()
		c.PC = sl.SourcePC()
	}
	return c, c.ClassName != "" || c.MethodName != "" || c.File != ""
}
