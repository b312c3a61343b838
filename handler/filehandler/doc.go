// Package filehandler provides file output handlers that write formatted
// log records to files with automatic rotation by size, age, or interval.
//
// Handlers are split into specialized sync and async variants:
//
//   - SyncFileHandler eliminates async queue overhead for the hot path.
//   - AsyncFileHandler provides an isolated queue with per-level
//     OverflowPolicy and a dedicated background goroutine.
//
// The factory function NewFileHandler automatically chooses the right
// variant based on the Async field in FileConfig.
//
// Rotated files keep the original name with a nanosecond timestamp suffix,
// e.g. app.log.2026-01-02T15-04-05.000000000.
package filehandler
