// Package consolehandler provides console output handlers that write
// formatted log records to any io.Writer (default: os.Stderr).
//
// Handlers are split into specialized sync and async variants:
//
//   - SyncConsoleHandler eliminates async queue overhead for a leaner
//     hot path. Uses TryLock to format into a handler-owned buffer when
//     uncontended.
//   - AsyncConsoleHandler provides an isolated queue with per-level
//     OverflowPolicy and a dedicated background goroutine. Formatting,
//     and with it any lazy source lookup on the record, happens on that
//     goroutine.
//
// The factory function NewConsoleHandler automatically chooses the
// right variant based on the Async field in ConsoleConfig.
package consolehandler
