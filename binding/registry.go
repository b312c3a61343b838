package binding

import (
	"sync"

	"github.com/philipp01105/elfnlog/elf"
)

// registry holds one name -> *levelLogger map per loggable level. Entries
// are never removed; there is one per named component and level in use.
var registry [elf.OFF]sync.Map

// getOrCreate returns the logger for (name, level), creating it on first
// request. Concurrent first requests agree on a single instance. level
// must not be OFF.
func getOrCreate(name string, level elf.Level) *levelLogger {
	m := &registry[level]
	if v, ok := m.Load(name); ok {
		return v.(*levelLogger)
	}
	v, _ := m.LoadOrStore(name, newLevelLogger(name, level))
	return v.(*levelLogger)
}
