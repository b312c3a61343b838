package consolehandler

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/philipp01105/elfnlog/core"
	"github.com/philipp01105/elfnlog/handler"
)

// gateWriter blocks the first Write until release is called, so the async
// consumer stalls and the queue fills deterministically.
type gateWriter struct {
	mu      sync.Mutex
	buf     bytes.Buffer
	entered chan struct{}
	gate    chan struct{}
	once    sync.Once
}

func newGateWriter() *gateWriter {
	return &gateWriter{
		entered: make(chan struct{}),
		gate:    make(chan struct{}),
	}
}

func (w *gateWriter) Write(p []byte) (int, error) {
	w.once.Do(func() {
		close(w.entered)
		<-w.gate
	})
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.buf.Write(p)
}

func (w *gateWriter) release() { close(w.gate) }

func (w *gateWriter) String() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.buf.String()
}

// stall sends one record and waits until the consumer is stuck writing it.
func stall(t *testing.T, h handler.Handler, w *gateWriter, level core.Level) {
	t.Helper()
	h.Handle(newRecord(level, "stall"))
	select {
	case <-w.entered:
	case <-time.After(5 * time.Second):
		t.Fatal("consumer never reached the writer")
	}
}

func TestOverflowPolicy_DropNewest(t *testing.T) {
	w := newGateWriter()
	h := NewConsoleHandler(ConsoleConfig{
		Writer:     w,
		Async:      true,
		BufferSize: 2,
		OverflowPolicy: map[core.Level]handler.OverflowPolicy{
			core.InfoLevel: handler.DropNewest,
		},
	})
	stall(t, h, w, core.InfoLevel)

	for i := 0; i < 10; i++ {
		h.Handle(newRecord(core.InfoLevel, "test"))
	}

	stats := h.(handler.StatsProvider).Stats()
	if stats.DroppedTotal[core.InfoLevel] != 8 {
		t.Errorf("Expected 8 dropped INFO records, got %d", stats.DroppedTotal[core.InfoLevel])
	}
	w.release()
	h.Close()
}

func TestOverflowPolicy_DropOldest(t *testing.T) {
	w := newGateWriter()
	h := NewConsoleHandler(ConsoleConfig{
		Writer:     w,
		Async:      true,
		BufferSize: 2,
		OverflowPolicy: map[core.Level]handler.OverflowPolicy{
			core.WarningLevel: handler.DropOldest,
		},
	})
	stall(t, h, w, core.WarningLevel)

	for i := 0; i < 10; i++ {
		r := newRecord(core.WarningLevel, "warn")
		if i == 9 {
			r = newRecord(core.WarningLevel, "newest")
		}
		h.Handle(r)
	}

	stats := h.(handler.StatsProvider).Stats()
	if stats.DroppedTotal[core.WarningLevel] != 8 {
		t.Errorf("Expected 8 dropped WARNING records, got %d", stats.DroppedTotal[core.WarningLevel])
	}
	w.release()
	h.Close()

	if !bytes.Contains([]byte(w.String()), []byte("newest")) {
		t.Errorf("DropOldest should keep the newest record, got: %s", w.String())
	}
}

func TestOverflowPolicy_Block(t *testing.T) {
	w := newGateWriter()
	h := NewConsoleHandler(ConsoleConfig{
		Writer:       w,
		Async:        true,
		BufferSize:   1,
		BlockTimeout: 10 * time.Millisecond,
		OverflowPolicy: map[core.Level]handler.OverflowPolicy{
			core.SevereLevel: handler.Block,
		},
	})
	stall(t, h, w, core.SevereLevel)

	// Fills the queue
	h.Handle(newRecord(core.SevereLevel, "queued"))

	// Times out and falls back to a synchronous write, which runs into
	// the gate as well; release it from another goroutine.
	go func() {
		time.Sleep(50 * time.Millisecond)
		w.release()
	}()
	h.Handle(newRecord(core.SevereLevel, "blocked"))

	h.Close()

	stats := h.(handler.StatsProvider).Stats()
	if stats.BlockedTotal != 1 {
		t.Errorf("Expected 1 blocked record, got %d", stats.BlockedTotal)
	}
	if stats.DroppedTotal[core.SevereLevel] != 0 {
		t.Errorf("Block policy should never drop, got %d", stats.DroppedTotal[core.SevereLevel])
	}
	if stats.ProcessedTotal != 3 {
		t.Errorf("Expected 3 processed, got %d", stats.ProcessedTotal)
	}
}

func TestOverflowPolicy_BucketsFinerLevels(t *testing.T) {
	w := newGateWriter()
	h := NewConsoleHandler(ConsoleConfig{
		Writer:     w,
		Async:      true,
		BufferSize: 1,
	})
	stall(t, h, w, core.FinestLevel)

	for i := 0; i < 5; i++ {
		h.Handle(newRecord(core.FinerLevel, "finer"))
	}

	stats := h.(handler.StatsProvider).Stats()
	if stats.DroppedTotal[core.FineLevel] != 4 {
		t.Errorf("Expected FINER drops counted under FINE, got %d", stats.DroppedTotal[core.FineLevel])
	}
	w.release()
	h.Close()
}

func TestStats_Telemetry(t *testing.T) {
	var buf bytes.Buffer
	h := NewConsoleHandler(ConsoleConfig{
		Writer: &buf,
		Async:  false, // Synchronous for predictable counting
	})
	defer h.Close()

	for i := 0; i < 5; i++ {
		h.Handle(newRecord(core.InfoLevel, "info"))
	}

	stats := h.(handler.StatsProvider).Stats()
	if stats.ProcessedTotal != 5 {
		t.Errorf("Expected 5 processed logs, got %d", stats.ProcessedTotal)
	}
	if stats.BlockedTotal != 0 {
		t.Errorf("Expected 0 blocked logs, got %d", stats.BlockedTotal)
	}
}

func TestAsyncConsoleHandler_HandleAfterClose(t *testing.T) {
	var buf bytes.Buffer
	h := NewConsoleHandler(ConsoleConfig{
		Writer: &buf,
		Async:  true,
	})
	h.Close()

	// Falls back to a synchronous write
	if err := h.Handle(newRecord(core.InfoLevel, "late")); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte("late")) {
		t.Errorf("Expected late record written synchronously, got: %s", buf.String())
	}
	if err := h.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}

func TestAsyncConsoleHandler_HandleDuringClose(t *testing.T) {
	const producers, perProducer = 8, 200

	w := newGateWriter()
	w.release()
	h := NewConsoleHandler(ConsoleConfig{
		Writer:     w,
		Async:      true,
		BufferSize: producers * perProducer,
	})

	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < producers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			for j := 0; j < perProducer; j++ {
				h.Handle(newRecord(core.InfoLevel, "racing close"))
			}
		}()
	}
	close(start)
	h.Close()
	wg.Wait()

	// Every record is either drained by Close or written synchronously
	if got := strings.Count(w.String(), "racing close"); got != producers*perProducer {
		t.Errorf("Expected %d records, got %d", producers*perProducer, got)
	}
}
