package consolehandler

import (
	"bytes"
	"io"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/philipp01105/elfnlog/core"
	"github.com/philipp01105/elfnlog/formatter"
	"github.com/philipp01105/elfnlog/handler"
)

func newRecord(level core.Level, msg string) *core.LogRecord {
	r := core.NewLogRecord(level, msg)
	r.SetLoggerName("test")
	return r
}

func TestConsoleHandler_Sync(t *testing.T) {
	var buf bytes.Buffer
	h := NewConsoleHandler(ConsoleConfig{
		Writer:    &buf,
		Async:     false,
		Formatter: formatter.NewTextFormatter(formatter.Config{}),
	})
	defer h.Close()

	err := h.Handle(newRecord(core.InfoLevel, "test message"))
	if err != nil {
		t.Errorf("Handle() error = %v", err)
	}

	if !strings.Contains(buf.String(), "test message") {
		t.Errorf("Expected 'test message' in output, got: %s", buf.String())
	}
}

func TestConsoleHandler_Async(t *testing.T) {
	var buf bytes.Buffer
	h := NewConsoleHandler(ConsoleConfig{
		Writer:     &buf,
		Async:      true,
		BufferSize: 100,
		Formatter:  formatter.NewTextFormatter(formatter.Config{}),
	})

	for i := 0; i < 50; i++ {
		if err := h.Handle(newRecord(core.InfoLevel, "async test")); err != nil {
			t.Errorf("Handle() error = %v", err)
		}
	}

	// Close drains the queue
	h.Close()

	output := buf.String()
	if count := strings.Count(output, "async test"); count != 50 {
		t.Errorf("Expected 50 messages, got %d: %s", count, output)
	}
}

func TestConsoleHandler_LevelThreshold(t *testing.T) {
	var buf bytes.Buffer
	h := NewConsoleHandler(ConsoleConfig{
		Writer: &buf,
		Level:  core.WarningLevel,
	})
	defer h.Close()

	if lh, ok := h.(handler.Leveled); !ok || lh.Level() != core.WarningLevel {
		t.Fatalf("Expected Leveled handler at WARNING")
	}

	h.Handle(newRecord(core.InfoLevel, "too quiet"))
	h.Handle(newRecord(core.SevereLevel, "loud enough"))

	out := buf.String()
	if strings.Contains(out, "too quiet") {
		t.Errorf("INFO record should be filtered, got: %s", out)
	}
	if !strings.Contains(out, "loud enough") {
		t.Errorf("SEVERE record should pass, got: %s", out)
	}
}

func TestConsoleHandler_Defaults(t *testing.T) {
	h := NewConsoleHandler(ConsoleConfig{}).(*SyncConsoleHandler)
	defer h.Close()

	if h.writer != os.Stderr {
		t.Errorf("Expected default writer os.Stderr, got %T", h.writer)
	}
	if h.level != core.AllLevel {
		t.Errorf("Expected default level ALL, got %v", h.level)
	}
	if h.bufferFormatter == nil {
		t.Error("Expected default text formatter to be a BufferFormatter")
	}
}

func TestConsoleHandler_JSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	h := NewConsoleHandler(ConsoleConfig{
		Writer:    &buf,
		Formatter: formatter.NewJSONFormatter(formatter.Config{}),
	})
	defer h.Close()

	r := newRecord(core.WarningLevel, "value is {0}")
	r.SetParameters([]any{42})
	h.Handle(r)

	if !strings.Contains(buf.String(), `"message":"value is 42"`) {
		t.Errorf("Expected substituted message in JSON, got: %s", buf.String())
	}
}

func TestIsConcurrentSafeWriter(t *testing.T) {
	tests := []struct {
		name     string
		writer   io.Writer
		expected bool
	}{
		{"io.Discard", io.Discard, true},
		{"os.Stdout", os.Stdout, true},
		{"os.Stderr", os.Stderr, true},
		{"bytes.Buffer", &bytes.Buffer{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isConcurrentSafeWriter(tt.writer); got != tt.expected {
				t.Errorf("isConcurrentSafeWriter(%T) = %v, want %v", tt.writer, got, tt.expected)
			}
		})
	}
}

func TestConcurrentSafeConfig(t *testing.T) {
	// Auto-detected for io.Discard
	h := NewConsoleHandler(ConsoleConfig{
		Writer: io.Discard,
	})
	if !h.(*SyncConsoleHandler).concurrentSafe {
		t.Error("Expected concurrentSafe=true for io.Discard")
	}
	h.Close()

	// Not auto-detected for bytes.Buffer
	h = NewConsoleHandler(ConsoleConfig{
		Writer: &bytes.Buffer{},
	})
	if h.(*SyncConsoleHandler).concurrentSafe {
		t.Error("Expected concurrentSafe=false for bytes.Buffer")
	}
	h.Close()

	// Explicit opt-in via ConcurrentWriter
	h = NewConsoleHandler(ConsoleConfig{
		Writer:           &bytes.Buffer{},
		ConcurrentWriter: true,
	})
	if !h.(*SyncConsoleHandler).concurrentSafe {
		t.Error("Expected concurrentSafe=true with ConcurrentWriter=true")
	}
	h.Close()
}

func TestConsoleHandler_Parallel(t *testing.T) {
	var buf bytes.Buffer
	h := NewConsoleHandler(ConsoleConfig{
		Writer: &buf,
	})
	defer h.Close()

	const goroutines = 8
	const msgs = 100
	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < msgs; i++ {
				h.Handle(newRecord(core.InfoLevel, "parallel test"))
			}
		}()
	}
	wg.Wait()

	snap := h.(handler.StatsProvider).Stats()
	if snap.ProcessedTotal != goroutines*msgs {
		t.Errorf("Expected %d processed, got %d", goroutines*msgs, snap.ProcessedTotal)
	}
	if got := strings.Count(buf.String(), "\n"); got != goroutines*msgs {
		t.Errorf("Expected %d complete lines, got %d", goroutines*msgs, got)
	}
}

func BenchmarkSyncConsoleHandler(b *testing.B) {
	h := NewConsoleHandler(ConsoleConfig{Writer: io.Discard})
	defer h.Close()
	r := newRecord(core.InfoLevel, "benchmark message {0}")
	r.SetParameters([]any{42})

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h.Handle(r)
	}
}

func BenchmarkSyncConsoleHandler_Parallel(b *testing.B) {
	h := NewConsoleHandler(ConsoleConfig{Writer: io.Discard})
	defer h.Close()
	r := newRecord(core.InfoLevel, "benchmark message")

	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			h.Handle(r)
		}
	})
}
