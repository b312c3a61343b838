// Package logger is the named logger hierarchy of the backend.
//
// Loggers are obtained by name with Get and shared process-wide. Names form
// a tree: the parent of "example.com/app/store.Cache" is
// "example.com/app/store", then "example.com/app", "example", and finally
// the root logger returned by Root.
//
// A logger without a level of its own inherits the level of its nearest
// ancestor that has one. The effective level is cached per logger and only
// recomputed after some level in the tree changed, so IsLoggable on the
// disabled path costs two atomic loads and a comparison.
//
// Records handed to Log are published to the logger's own handlers and then
// to its ancestors' handlers, until a logger with UseParentHandlers set to
// false is reached:
//
//	db := logger.NewBuilder("example.com/app/db").
//	    WithHandler(fileHandler).
//	    WithLevel(logger.FineLevel).
//	    Build()
//	db.Fine("connected to {0}", dsn)
//
// At initialization the root logger gets level INFO and a synchronous text
// console handler on stderr. The environment variables NLOG_LEVEL,
// NLOG_FORMAT and NLOG_CALLER adjust that default.
package logger
