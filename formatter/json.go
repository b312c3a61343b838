package formatter

import (
	"bytes"
	"io"
	"strconv"
	"time"

	"github.com/joeycumines/go-utilpkg/jsonenc"

	"github.com/philipp01105/elfnlog/core"
)

// JSONFormatter formats log records as JSON, one object per line
type JSONFormatter struct {
	Config
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter(cfg Config) *JSONFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = time.RFC3339Nano
	}
	return &JSONFormatter{Config: cfg}
}

// Format formats a record as JSON
func (f *JSONFormatter) Format(r core.Record) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.formatJSONToBuffer(r, buf)

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatTo formats a record as JSON and writes it directly to the writer
func (f *JSONFormatter) FormatTo(r core.Record, w io.Writer) error {
	buf := getBuffer()

	f.formatJSONToBuffer(r, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// FormatRecord formats a record as JSON into the given buffer (implements BufferFormatter).
func (f *JSONFormatter) FormatRecord(r core.Record, buf *bytes.Buffer) {
	f.formatJSONToBuffer(r, buf)
}

// formatJSONToBuffer builds JSON manually into the buffer
func (f *JSONFormatter) formatJSONToBuffer(r core.Record, buf *bytes.Buffer) {
	buf.WriteString(`{"time":"`)
	buf.Write(r.Time().AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))
	buf.WriteString(`","level":"`)
	buf.WriteString(r.Level().String())
	buf.WriteString(`","seq":`)
	buf.Write(strconv.AppendUint(buf.AvailableBuffer(), r.Sequence(), 10))

	if name := r.LoggerName(); name != "" && !f.OmitLoggerName {
		buf.WriteString(`,"logger":`)
		appendJSONString(buf, name)
	}

	buf.WriteString(`,"message":`)
	appendJSONString(buf, core.FormatMessage(r.Message(), r.Parameters()))

	if f.IncludeCaller {
		if src, ok := core.SourceOf(r); ok {
			buf.WriteString(`,"caller":{"class":`)
			appendJSONString(buf, src.ClassName)
			buf.WriteString(`,"method":`)
			appendJSONString(buf, src.MethodName)
			if src.File != "" {
				buf.WriteString(`,"file":`)
				appendJSONString(buf, src.File)
				buf.WriteString(`,"line":`)
				buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(src.Line), 10))
			}
			buf.WriteByte('}')
		}
	}

	if err := r.Thrown(); err != nil {
		buf.WriteString(`,"error":`)
		appendJSONString(buf, core.Stringify(err))
	}

	buf.WriteString("}\n")
}

// appendJSONString writes s as a quoted JSON string to the buffer
func appendJSONString(buf *bytes.Buffer, s string) {
	buf.Write(jsonenc.AppendString(buf.AvailableBuffer(), s))
}
