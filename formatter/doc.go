// Package formatter defines how log records are serialized into bytes.
//
// It exposes three interfaces: Formatter, which returns a []byte,
// WriterFormatter, which writes directly to an io.Writer, and
// BufferFormatter, which formats into a caller-owned buffer. Handlers
// check for the optional interfaces at construction time and prefer them
// when available, eliminating the intermediate byte slice allocation on
// the write path.
//
// Both built-in formatters (TextFormatter and JSONFormatter) resolve the
// record's {n} placeholders with core.FormatMessage. Source class, method,
// file and line are only read from the record when Config.IncludeCaller is
// set; records that infer their source lazily pay for it only then.
//
// Buffers larger than 64 KiB are not returned to the pool to prevent
// a single large log line from permanently inflating memory usage.
package formatter
