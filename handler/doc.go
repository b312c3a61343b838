// Package handler provides the Handler interface that backend loggers
// publish records to, together with the overflow policy and statistics
// shared by the built-in implementations.
//
// Built-in handlers live in sub-packages:
//
//   - consolehandler writes formatted records to any io.Writer (default: stderr).
//   - filehandler writes to a file with automatic rotation by size, age,
//     or interval, and manages old backup cleanup.
//   - multihandler fans out a single record to multiple child handlers.
//   - sloghandler, zaphandler, zerologhandler and logrushandler forward
//     records to log/slog, zap, zerolog and logrus respectively.
//
// Console and file handlers support both synchronous and asynchronous
// operation. In async mode, records are sent to a bounded channel and
// processed by a background goroutine, which keeps the caller's hot path
// fast even under slow I/O. Formatters then read the record's source class
// and method on that goroutine, so records must support being resolved
// away from the goroutine that created them.
//
// When the async queue is full, each handler applies a per-level
// OverflowPolicy: DropNewest (default up to WARNING), DropOldest, or Block
// with a configurable timeout (default for SEVERE). Low-priority records
// never stall the application while severe ones are not silently dropped.
//
// All handlers track dropped, blocked, and processed counts via the
// Stats type, which can be queried at runtime for monitoring.
package handler
