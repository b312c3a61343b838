package logger

import (
	"fmt"
	"math"
	"os"
	"strings"
	"sync"
	"sync/atomic"

	"go.uber.org/multierr"

	"github.com/philipp01105/elfnlog/core"
	"github.com/philipp01105/elfnlog/handler"
)

// levelUnset marks a logger that inherits its level.
const levelUnset = math.MinInt64

var (
	registry sync.Map // name -> *Logger
	root     = newLogger("", nil)

	// generation is bumped on every level change anywhere in the tree and
	// invalidates all cached effective levels.
	generation atomic.Uint64
)

// Logger is a named node in the logger hierarchy. Loggers are created on
// first use by Get and live for the lifetime of the process; all methods
// are safe for concurrent use.
type Logger struct {
	name      string
	parent    *Logger
	level     atomic.Int64
	useParent atomic.Bool
	cache     atomic.Pointer[levelCache]

	mu       sync.Mutex // serializes handler list updates
	handlers atomic.Pointer[[]handler.Handler]
}

type levelCache struct {
	gen   uint64
	level core.Level
}

func newLogger(name string, parent *Logger) *Logger {
	l := &Logger{name: name, parent: parent}
	l.level.Store(levelUnset)
	l.useParent.Store(true)
	l.handlers.Store(&[]handler.Handler{})
	return l
}

// Root returns the root logger. It is the ancestor of every other logger
// and has the empty name.
func Root() *Logger {
	return root
}

// Get returns the logger registered under name, creating it and any
// missing ancestors first. The empty name denotes the root logger.
func Get(name string) *Logger {
	if name == "" {
		return root
	}
	if v, ok := registry.Load(name); ok {
		return v.(*Logger)
	}
	l := newLogger(name, Get(parentName(name)))
	v, _ := registry.LoadOrStore(name, l)
	return v.(*Logger)
}

// parentName cuts name at its last '/' or '.':
//
//	example.com/app/store.Cache -> example.com/app/store -> example.com/app
func parentName(name string) string {
	if i := strings.LastIndexAny(name, "/."); i >= 0 {
		return name[:i]
	}
	return ""
}

// Name returns the logger's name.
func (l *Logger) Name() string {
	return l.name
}

// Parent returns the nearest ancestor, or nil for the root logger.
func (l *Logger) Parent() *Logger {
	return l.parent
}

// SetLevel sets the logger's own threshold. Descendants without a level of
// their own inherit it.
func (l *Logger) SetLevel(level core.Level) {
	l.level.Store(int64(level))
	generation.Add(1)
}

// ClearLevel makes the logger inherit its threshold again.
func (l *Logger) ClearLevel() {
	l.level.Store(levelUnset)
	generation.Add(1)
}

// Level returns the logger's own threshold, ok is false when it inherits.
func (l *Logger) Level() (level core.Level, ok bool) {
	v := l.level.Load()
	if v == levelUnset {
		return 0, false
	}
	return core.Level(v), true
}

// EffectiveLevel returns the threshold in force: the logger's own level or
// that of its nearest ancestor with one, INFO when none has.
func (l *Logger) EffectiveLevel() core.Level {
	gen := generation.Load()
	if c := l.cache.Load(); c != nil && c.gen == gen {
		return c.level
	}
	lvl := core.InfoLevel
	for n := l; n != nil; n = n.parent {
		if v := n.level.Load(); v != levelUnset {
			lvl = core.Level(v)
			break
		}
	}
	l.cache.Store(&levelCache{gen: gen, level: lvl})
	return lvl
}

// IsLoggable reports whether a record at level would be published.
func (l *Logger) IsLoggable(level core.Level) bool {
	eff := l.EffectiveLevel()
	return level >= eff && eff != core.OffLevel
}

// SetUseParentHandlers controls whether records are also published to the
// ancestors' handlers (default true).
func (l *Logger) SetUseParentHandlers(use bool) {
	l.useParent.Store(use)
}

// UseParentHandlers reports whether records propagate to ancestors.
func (l *Logger) UseParentHandlers() bool {
	return l.useParent.Load()
}

// Handlers returns the logger's own handlers.
func (l *Logger) Handlers() []handler.Handler {
	return *l.handlers.Load()
}

// AddHandler attaches h to the logger.
func (l *Logger) AddHandler(h handler.Handler) {
	l.mu.Lock()
	defer l.mu.Unlock()
	cur := *l.handlers.Load()
	next := make([]handler.Handler, len(cur), len(cur)+1)
	copy(next, cur)
	next = append(next, h)
	l.handlers.Store(&next)
}

// RemoveHandler detaches h from the logger without closing it. It reports
// whether h was attached.
func (l *Logger) RemoveHandler(h handler.Handler) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	cur := *l.handlers.Load()
	for i, x := range cur {
		if x == h {
			next := make([]handler.Handler, 0, len(cur)-1)
			next = append(next, cur[:i]...)
			next = append(next, cur[i+1:]...)
			l.handlers.Store(&next)
			return true
		}
	}
	return false
}

// Log publishes r to the logger's handlers and, while UseParentHandlers
// holds, to those of its ancestors. Records below the effective level are
// ignored. An empty logger name on r is set to this logger's name.
//
// Handler failures do not stop delivery; they are combined and passed to
// the ErrorHandler.
func (l *Logger) Log(r core.Record) {
	level := r.Level()
	if !l.IsLoggable(level) {
		return
	}
	if r.LoggerName() == "" {
		r.SetLoggerName(l.name)
	}

	var err error
	for n := l; n != nil; n = n.parent {
		for _, h := range *n.handlers.Load() {
			if handler.Accepts(h, level) {
				err = multierr.Append(err, h.Handle(r))
			}
		}
		if !n.useParent.Load() {
			break
		}
	}
	if err != nil {
		reportError(l.name, err)
	}
}

// LogMsg logs msg at level. msg may hold {n} placeholders referring to
// params.
func (l *Logger) LogMsg(level core.Level, msg string, params ...any) {
	if !l.IsLoggable(level) {
		return
	}
	r := core.NewLogRecord(level, msg)
	if len(params) > 0 {
		r.SetParameters(params)
	}
	l.Log(r)
}

// Severe logs msg at SEVERE.
func (l *Logger) Severe(msg string, params ...any) {
	l.LogMsg(core.SevereLevel, msg, params...)
}

// Warning logs msg at WARNING.
func (l *Logger) Warning(msg string, params ...any) {
	l.LogMsg(core.WarningLevel, msg, params...)
}

// Info logs msg at INFO.
func (l *Logger) Info(msg string, params ...any) {
	l.LogMsg(core.InfoLevel, msg, params...)
}

// Fine logs msg at FINE.
func (l *Logger) Fine(msg string, params ...any) {
	l.LogMsg(core.FineLevel, msg, params...)
}

// Close detaches and closes all of the logger's own handlers.
func (l *Logger) Close() error {
	l.mu.Lock()
	cur := *l.handlers.Load()
	l.handlers.Store(&[]handler.Handler{})
	l.mu.Unlock()

	var err error
	for _, h := range cur {
		err = multierr.Append(err, h.Close())
	}
	return err
}

// CloseAll closes the handlers of every logger, root last. Call it before
// exiting to drain asynchronous handlers.
func CloseAll() error {
	var err error
	registry.Range(func(_, v any) bool {
		err = multierr.Append(err, v.(*Logger).Close())
		return true
	})
	return multierr.Append(err, root.Close())
}

func (l *Logger) String() string {
	if l.name == "" {
		return "Logger(root)"
	}
	return fmt.Sprintf("Logger(%s)", l.name)
}

// ErrorHandler receives the handler failures of a Log call. It must be safe
// for concurrent use and must not log through the failing logger.
type ErrorHandler func(loggerName string, err error)

var errorHandler atomic.Pointer[ErrorHandler]

// SetErrorHandler replaces the ErrorHandler; nil restores the default,
// which prints to stderr.
func SetErrorHandler(fn ErrorHandler) {
	if fn == nil {
		errorHandler.Store(nil)
		return
	}
	errorHandler.Store(&fn)
}

func reportError(name string, err error) {
	if fn := errorHandler.Load(); fn != nil {
		(*fn)(name, err)
		return
	}
	if name == "" {
		name = "root"
	}
	fmt.Fprintf(os.Stderr, "logger: %s: %v\n", name, err)
}
