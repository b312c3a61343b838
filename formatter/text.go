package formatter

import (
	"bytes"
	"io"
	"path/filepath"
	"strconv"
	"time"

	"github.com/philipp01105/elfnlog/core"
)

// TextFormatter formats log records as human-readable text:
//
//	2026-01-15T12:00:00Z [INFO] app/store [store.Cache.Get cache.go:42] cache miss error=...
type TextFormatter struct {
	Config
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = time.RFC3339
	}
	return &TextFormatter{Config: cfg}
}

// Format formats a record as text
func (f *TextFormatter) Format(r core.Record) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.formatToBuffer(r, buf)

	// Copy buffer content to return
	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatTo formats a record and writes it directly to the writer
func (f *TextFormatter) FormatTo(r core.Record, w io.Writer) error {
	buf := getBuffer()

	f.formatToBuffer(r, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// FormatRecord formats a record into the given buffer (implements BufferFormatter).
func (f *TextFormatter) FormatRecord(r core.Record, buf *bytes.Buffer) {
	f.formatToBuffer(r, buf)
}

// formatToBuffer writes the formatted record into the given buffer
func (f *TextFormatter) formatToBuffer(r core.Record, buf *bytes.Buffer) {
	// Timestamp - use AppendFormat to avoid string allocation
	buf.Write(r.Time().AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))

	buf.WriteString(" [")
	buf.WriteString(r.Level().String())
	buf.WriteString("] ")

	if name := r.LoggerName(); name != "" && !f.OmitLoggerName {
		buf.WriteString(name)
		buf.WriteByte(' ')
	}

	// Caller info if enabled
	if f.IncludeCaller {
		if src, ok := core.SourceOf(r); ok {
			buf.WriteByte('[')
			buf.WriteString(filepath.Base(src.ClassName))
			if src.MethodName != "" {
				buf.WriteByte('.')
				buf.WriteString(src.MethodName)
			}
			if src.File != "" {
				buf.WriteByte(' ')
				buf.WriteString(filepath.Base(src.File))
				buf.WriteByte(':')
				buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(src.Line), 10))
			}
			buf.WriteString("] ")
		}
	}

	// Message
	buf.WriteString(core.FormatMessage(r.Message(), r.Parameters()))

	if err := r.Thrown(); err != nil {
		buf.WriteString(" error=")
		buf.WriteString(core.Stringify(err))
	}

	buf.WriteByte('\n')
}
