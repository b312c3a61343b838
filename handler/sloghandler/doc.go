// Package sloghandler connects the backend with log/slog in both
// directions.
//
// Bridge is a handler.Handler that publishes records to any slog.Handler,
// handing over the source program counter when asked to. SlogHandler is
// the reverse: a slog.Handler that feeds a handler.Handler, so code written
// against log/slog can log through the same sinks.
package sloghandler
