package consolehandler

import (
	"sync"
	"time"

	"github.com/philipp01105/elfnlog/core"
	"github.com/philipp01105/elfnlog/handler"
)

// AsyncConsoleHandler is an asynchronous console handler with isolated
// queue and overflow logic, writing from a dedicated background goroutine.
type AsyncConsoleHandler struct {
	consoleBase
	queue          chan core.Record
	wg             sync.WaitGroup
	closeOnce      sync.Once
	sendMu         sync.RWMutex // held for writing while closed is closed
	overflowPolicy map[core.Level]handler.OverflowPolicy
	blockTimeout   time.Duration
	drainTimeout   time.Duration
	blockMu        sync.Mutex // guards blockTimer
	blockTimer     *time.Timer
}

// newAsyncConsoleHandler creates a new asynchronous console handler.
func newAsyncConsoleHandler(cfg ConsoleConfig) *AsyncConsoleHandler {
	h := &AsyncConsoleHandler{
		overflowPolicy: cfg.OverflowPolicy,
		blockTimeout:   cfg.BlockTimeout,
		drainTimeout:   cfg.DrainTimeout,
		blockTimer:     handler.NewStoppedTimer(),
	}
	h.init(cfg)

	h.queue = make(chan core.Record, cfg.BufferSize)
	h.wg.Add(1)
	go h.process()

	return h
}

// Handle sends a log record to the async queue with overflow policy handling.
func (h *AsyncConsoleHandler) Handle(r core.Record) error {
	if !handler.Accepts(h, r.Level()) {
		return nil
	}

	// A record is either queued before Close starts draining or written
	// synchronously, never left in the queue after the consumer returned.
	h.sendMu.RLock()
	defer h.sendMu.RUnlock()

	select {
	case <-h.closed:
		return h.write(r)
	default:
	}

	switch handler.PolicyFor(h.overflowPolicy, r.Level()) {
	case handler.Block:
		select {
		case h.queue <- r:
			return nil
		default:
		}
		return h.blockingSend(r)

	case handler.DropOldest:
		// Try non-blocking send
		select {
		case h.queue <- r:
			return nil
		default:
			// Queue full - try to drop oldest
			select {
			case old := <-h.queue:
				h.stats.IncrementDropped(old.Level())
			default:
			}
			// Try again
			select {
			case h.queue <- r:
				return nil
			default:
				// Still full, drop this one
				h.stats.IncrementDropped(r.Level())
				return nil
			}
		}

	default:
		// Non-blocking send
		select {
		case h.queue <- r:
			return nil
		default:
			// Queue full - drop this record
			h.stats.IncrementDropped(r.Level())
			return nil
		}
	}
}

// blockingSend waits up to blockTimeout for queue space, then falls back
// to a synchronous write.
func (h *AsyncConsoleHandler) blockingSend(r core.Record) error {
	h.blockMu.Lock()
	defer h.blockMu.Unlock()

	h.blockTimer.Reset(h.blockTimeout)
	select {
	case h.queue <- r:
		if !h.blockTimer.Stop() {
			<-h.blockTimer.C
		}
		return nil
	case <-h.blockTimer.C:
		// Timeout - fall back to synchronous write
		h.stats.IncrementBlocked()
		return h.write(r)
	}
}

// process handles async log processing
func (h *AsyncConsoleHandler) process() {
	defer h.wg.Done()

	for {
		select {
		case r := <-h.queue:
			// Write errors have nowhere to go from here; keep draining.
			_ = h.write(r)
		case <-h.closed:
			// Drain remaining records with timeout
			deadline := time.After(h.drainTimeout)
			for {
				select {
				case r := <-h.queue:
					_ = h.write(r)
				case <-deadline:
					return
				default:
					return
				}
			}
		}
	}
}

// Close closes the handler, draining the queue with a timeout.
func (h *AsyncConsoleHandler) Close() error {
	h.closeOnce.Do(func() {
		h.sendMu.Lock()
		close(h.closed)
		h.sendMu.Unlock()
		h.wg.Wait()
	})
	return nil
}
