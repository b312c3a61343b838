package handler

import (
	"sync/atomic"

	"github.com/philipp01105/elfnlog/core"
)

// OverflowPolicy defines how to handle full async queues
type OverflowPolicy int

const (
	// DropNewest drops the newest log record when queue is full
	DropNewest OverflowPolicy = iota
	// DropOldest drops the oldest log record when queue is full
	DropOldest
	// Block blocks the caller until space is available (with timeout)
	Block
)

// String returns the string representation of the policy
func (p OverflowPolicy) String() string {
	switch p {
	case DropNewest:
		return "DropNewest"
	case DropOldest:
		return "DropOldest"
	case Block:
		return "Block"
	default:
		return "Unknown"
	}
}

// Bucket maps a native level onto the four levels that policies and
// statistics are kept for: FineLevel (everything below INFO), InfoLevel,
// WarningLevel and SevereLevel (SEVERE and above).
func Bucket(level core.Level) core.Level {
	switch {
	case level >= core.SevereLevel:
		return core.SevereLevel
	case level >= core.WarningLevel:
		return core.WarningLevel
	case level >= core.InfoLevel:
		return core.InfoLevel
	default:
		return core.FineLevel
	}
}

// DefaultLevelPolicy returns the default level-based overflow policies
func DefaultLevelPolicy() map[core.Level]OverflowPolicy {
	return map[core.Level]OverflowPolicy{
		core.FineLevel:    DropNewest, // Drop fine/trace logs when full
		core.InfoLevel:    DropNewest, // Drop info logs when full
		core.WarningLevel: DropNewest, // Drop warnings when full
		core.SevereLevel:  Block,      // Block for severe (with timeout)
	}
}

// PolicyFor returns the policy configured for the bucket of level,
// DropNewest when none is.
func PolicyFor(policies map[core.Level]OverflowPolicy, level core.Level) OverflowPolicy {
	if p, ok := policies[Bucket(level)]; ok {
		return p
	}
	return DropNewest
}

// Stats tracks handler statistics
type Stats struct {
	// Separate atomic counters per level bucket
	DroppedFine    uint64
	DroppedInfo    uint64
	DroppedWarning uint64
	DroppedSevere  uint64
	// BlockedTotal counts times logging blocked due to full queue
	BlockedTotal uint64
	// ProcessedTotal counts total processed logs
	ProcessedTotal uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

func (s *Stats) droppedCounter(level core.Level) *uint64 {
	switch Bucket(level) {
	case core.SevereLevel:
		return &s.DroppedSevere
	case core.WarningLevel:
		return &s.DroppedWarning
	case core.InfoLevel:
		return &s.DroppedInfo
	default:
		return &s.DroppedFine
	}
}

// IncrementDropped atomically increments the dropped counter for a level
func (s *Stats) IncrementDropped(level core.Level) {
	atomic.AddUint64(s.droppedCounter(level), 1)
}

// IncrementBlocked atomically increments the blocked counter
func (s *Stats) IncrementBlocked() {
	atomic.AddUint64(&s.BlockedTotal, 1)
}

// IncrementProcessed atomically increments the processed counter
func (s *Stats) IncrementProcessed() {
	atomic.AddUint64(&s.ProcessedTotal, 1)
}

// GetDropped returns the dropped count for the bucket of level
func (s *Stats) GetDropped(level core.Level) uint64 {
	return atomic.LoadUint64(s.droppedCounter(level))
}

// GetBlocked returns the blocked count
func (s *Stats) GetBlocked() uint64 {
	return atomic.LoadUint64(&s.BlockedTotal)
}

// GetProcessed returns the processed count
func (s *Stats) GetProcessed() uint64 {
	return atomic.LoadUint64(&s.ProcessedTotal)
}

// GetTotalDropped returns the total dropped across all levels
func (s *Stats) GetTotalDropped() uint64 {
	return atomic.LoadUint64(&s.DroppedFine) +
		atomic.LoadUint64(&s.DroppedInfo) +
		atomic.LoadUint64(&s.DroppedWarning) +
		atomic.LoadUint64(&s.DroppedSevere)
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	atomic.StoreUint64(&s.DroppedFine, 0)
	atomic.StoreUint64(&s.DroppedInfo, 0)
	atomic.StoreUint64(&s.DroppedWarning, 0)
	atomic.StoreUint64(&s.DroppedSevere, 0)
	atomic.StoreUint64(&s.BlockedTotal, 0)
	atomic.StoreUint64(&s.ProcessedTotal, 0)
}

// Snapshot returns a snapshot of current stats
type Snapshot struct {
	DroppedTotal   map[core.Level]uint64
	BlockedTotal   uint64
	ProcessedTotal uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	return Snapshot{
		DroppedTotal: map[core.Level]uint64{
			core.FineLevel:    s.GetDropped(core.FineLevel),
			core.InfoLevel:    s.GetDropped(core.InfoLevel),
			core.WarningLevel: s.GetDropped(core.WarningLevel),
			core.SevereLevel:  s.GetDropped(core.SevereLevel),
		},
		BlockedTotal:   s.GetBlocked(),
		ProcessedTotal: s.GetProcessed(),
	}
}
