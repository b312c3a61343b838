package filehandler

import (
	"os"
	"sync"
	"time"

	"github.com/philipp01105/elfnlog/core"
	"github.com/philipp01105/elfnlog/handler"
)

// AsyncFileHandler is an asynchronous file handler with isolated queue
// and overflow logic. It is optimized for parallel throughput with a
// dedicated background goroutine.
type AsyncFileHandler struct {
	fileBase
	queue          chan core.Record
	wg             sync.WaitGroup
	closeOnce      sync.Once
	sendMu         sync.RWMutex // held for writing while closed is closed
	closeErr       error
	overflowPolicy map[core.Level]handler.OverflowPolicy
	blockTimeout   time.Duration
	drainTimeout   time.Duration
	blockMu        sync.Mutex // guards blockTimer
	blockTimer     *time.Timer
}

// newAsyncFileHandler creates a new asynchronous file handler.
func newAsyncFileHandler(cfg FileConfig, file *os.File, fileSize int64) *AsyncFileHandler {
	h := &AsyncFileHandler{
		overflowPolicy: cfg.OverflowPolicy,
		blockTimeout:   cfg.BlockTimeout,
		drainTimeout:   cfg.DrainTimeout,
		blockTimer:     handler.NewStoppedTimer(),
	}
	initFileBase(&h.fileBase, cfg, file, fileSize)

	h.queue = make(chan core.Record, cfg.BufferSize)
	h.wg.Add(1)
	go h.process()

	return h
}

// Handle sends a log record to the async queue with overflow policy handling.
func (h *AsyncFileHandler) Handle(r core.Record) error {
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
func (h *AsyncFileHandler) blockingSend(r core.Record) error {
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
func (h *AsyncFileHandler) process() {
	defer h.wg.Done()

	for {
		select {
		case r := <-h.queue:
			_ = h.write(r)
			// Batch drain: process additional queued records without blocking
		batchDrain:
			for {
				select {
				case r := <-h.queue:
					_ = h.write(r)
				default:
					break batchDrain
				}
			}
			// Queue is momentarily empty; let readers of the file catch up
			_ = h.flush()
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
func (h *AsyncFileHandler) Close() error {
	h.closeOnce.Do(func() {
		h.sendMu.Lock()
		close(h.closed)
		h.sendMu.Unlock()
		h.wg.Wait()
		h.closeErr = h.closeFile()
	})
	return h.closeErr
}
