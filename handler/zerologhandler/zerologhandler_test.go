package zerologhandler

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/philipp01105/elfnlog/core"
)

type sourced struct {
	*core.LogRecord
}

func (sourced) SourceFile() (string, int) { return "/src/app/main.go", 12 }
func (sourced) SourcePC() uintptr         { return 0 }

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), err)
	}
	return m
}

func TestHandler_Write(t *testing.T) {
	var buf bytes.Buffer
	h := New(zerolog.New(&buf), Config{})

	r := core.NewLogRecord(core.WarningLevel, "value is {0}")
	r.SetLoggerName("app.db")
	r.SetParameters([]any{42})
	r.SetThrown(errors.New("boom"))
	if err := h.Handle(r); err != nil {
		t.Fatal(err)
	}

	got := decode(t, &buf)
	if got["message"] != "value is 42" || got["level"] != "warn" || got["logger"] != "app.db" || got["error"] != "boom" {
		t.Errorf("unexpected event: %v", got)
	}
	if _, ok := got["time"]; !ok {
		t.Error("expected time field")
	}
}

func TestHandler_Caller(t *testing.T) {
	var buf bytes.Buffer
	h := New(zerolog.New(&buf), Config{IncludeCaller: true})

	h.Handle(sourced{core.NewLogRecord(core.InfoLevel, "hi")})

	if got := decode(t, &buf)["caller"]; got != "/src/app/main.go:12" {
		t.Errorf("caller = %v", got)
	}
}

func TestHandler_LoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	h := New(zerolog.New(&buf).Level(zerolog.WarnLevel), Config{})

	h.Handle(core.NewLogRecord(core.InfoLevel, "quiet"))
	if buf.Len() != 0 {
		t.Errorf("INFO should be filtered by zerolog, got: %s", buf.String())
	}
}

func TestToZerologLevel(t *testing.T) {
	tests := []struct {
		in   core.Level
		want zerolog.Level
	}{
		{core.FinestLevel, zerolog.TraceLevel},
		{core.FinerLevel, zerolog.TraceLevel},
		{core.FineLevel, zerolog.DebugLevel},
		{core.ConfigLevel, zerolog.DebugLevel},
		{core.InfoLevel, zerolog.InfoLevel},
		{core.WarningLevel, zerolog.WarnLevel},
		{core.SevereLevel, zerolog.ErrorLevel},
	}
	for _, tt := range tests {
		if got := ToZerologLevel(tt.in); got != tt.want {
			t.Errorf("ToZerologLevel(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
