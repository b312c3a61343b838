// Package binding implements the elf facade on top of the backend's named
// logger hierarchy. Importing it registers it as the facade's provider:
//
//	import (
//	    "github.com/philipp01105/elfnlog/elf"
//	    _ "github.com/philipp01105/elfnlog/binding"
//	)
//
//	var log = elf.Instance() // named after the calling package
//
//	func (s *Store) Get(key string) {
//	    log.AtDebug().Logf("get {} from {}", key, s.name)
//	}
//
// Each elf.Logger is bound to a name and a level and is shared: asking for
// the same pair again, from any goroutine, returns the same instance.
// Whether a level is enabled is decided by the backend logger of the same
// name (see package logger), with the mapping
//
//	TRACE -> FINEST, DEBUG -> FINE, INFO -> INFO, WARN -> WARNING, ERROR -> SEVERE
//
// Message templates use anonymous {} placeholders, which are rewritten to
// the backend's indexed {0}, {1}, ... form. Suppliers passed as messages
// or arguments are evaluated only when the level is enabled.
//
// Records carry their call site lazily: the class and method that issued
// the log call are worked out from the captured stack only if a handler
// or formatter asks for them.
package binding
