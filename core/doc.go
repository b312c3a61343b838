// Package core defines the shared types of the NLog backend.
//
// It provides the native Level type for severity filtering, the Record
// contract that loggers hand to handlers (with LogRecord as its plain
// implementation), FormatMessage for the backend's indexed {n} message
// placeholders, and the call stack helpers used to infer the source of a
// log call.
//
// Source inference is split in two steps. CaptureStack records raw program
// counters, which is cheap and must happen on the goroutine that logs.
// Stack.MostRecentCallerOf symbolizes them and locates the frame below a
// given entry point; it can run later, on any goroutine, and only when a
// formatter actually asks for the source class or method.
package core
