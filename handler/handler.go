package handler

import (
	"time"

	"github.com/philipp01105/elfnlog/core"
)

// Handler publishes log records to a destination
type Handler interface {
	// Handle processes a log record. The record may be retained and read
	// later (async handlers), but never mutated except for its source
	// fields.
	Handle(r core.Record) error

	// Close closes the handler and releases resources
	Close() error
}

// StatsProvider is implemented by handlers that track delivery statistics.
type StatsProvider interface {
	Stats() Snapshot
}

// Leveled is implemented by handlers with their own level threshold, in
// addition to the threshold of the logger they are attached to.
type Leveled interface {
	Level() core.Level
}

// Accepts reports whether h would publish a record at level.
func Accepts(h Handler, level core.Level) bool {
	if lh, ok := h.(Leveled); ok {
		return level >= lh.Level() && lh.Level() != core.OffLevel
	}
	return true
}

// NewStoppedTimer returns a timer that is stopped and drained, ready for
// Reset. Used by the Block overflow policy.
func NewStoppedTimer() *time.Timer {
	t := time.NewTimer(time.Hour)
	if !t.Stop() {
		<-t.C
	}
	return t
}
