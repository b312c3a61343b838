// Package elf is the logging facade: a small, level-aware Logger API that
// application code logs through, independent of the backend that
// eventually writes the records.
//
// A binding provides the implementation. Import one for its side effect,
// the way database/sql drivers are registered:
//
//	import _ "github.com/philipp01105/elfnlog/binding"
//
// and acquire loggers where they are used:
//
//	var log = elf.Instance() // named after the calling package or type
//
//	func (s *Server) Start() {
//	    log.AtInfo().Logf("listening on {}", s.addr)
//	    log.AtDebug().Log(func() any { return s.dumpConfig() })
//	}
//
// Messages take {} placeholders, filled in order from the arguments. A
// message or argument may be a Supplier, which is only evaluated when the
// logger's level is enabled.
//
// Loggers may be acquired before the binding is registered, as package
// level vars in packages initialized ahead of it are. They bind to it on
// first use and discard records until one is registered.
package elf
