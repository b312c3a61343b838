package handler

import (
	"sync"
	"testing"

	"github.com/philipp01105/elfnlog/core"
)

type plainHandler struct{}

func (plainHandler) Handle(core.Record) error { return nil }
func (plainHandler) Close() error             { return nil }

type leveledHandler struct {
	plainHandler
	level core.Level
}

func (h leveledHandler) Level() core.Level { return h.level }

func TestAccepts(t *testing.T) {
	tests := []struct {
		name  string
		h     Handler
		level core.Level
		want  bool
	}{
		{"unleveled", plainHandler{}, core.FinestLevel, true},
		{"below threshold", leveledHandler{level: core.WarningLevel}, core.InfoLevel, false},
		{"at threshold", leveledHandler{level: core.WarningLevel}, core.WarningLevel, true},
		{"above threshold", leveledHandler{level: core.WarningLevel}, core.SevereLevel, true},
		{"all", leveledHandler{level: core.AllLevel}, core.FinestLevel, true},
		{"off", leveledHandler{level: core.OffLevel}, core.OffLevel, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Accepts(tt.h, tt.level); got != tt.want {
				t.Errorf("Accepts() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBucket(t *testing.T) {
	tests := map[core.Level]core.Level{
		core.FinestLevel:      core.FineLevel,
		core.FinerLevel:       core.FineLevel,
		core.FineLevel:        core.FineLevel,
		core.ConfigLevel:      core.FineLevel,
		core.InfoLevel:        core.InfoLevel,
		core.InfoLevel + 50:   core.InfoLevel,
		core.WarningLevel:     core.WarningLevel,
		core.SevereLevel:      core.SevereLevel,
		core.SevereLevel + 10: core.SevereLevel,
	}
	for level, want := range tests {
		if got := Bucket(level); got != want {
			t.Errorf("Bucket(%v) = %v, want %v", level, got, want)
		}
	}
}

func TestPolicyFor(t *testing.T) {
	policies := DefaultLevelPolicy()
	if got := PolicyFor(policies, core.SevereLevel); got != Block {
		t.Errorf("PolicyFor(SEVERE) = %v, want Block", got)
	}
	if got := PolicyFor(policies, core.FinerLevel); got != DropNewest {
		t.Errorf("PolicyFor(FINER) = %v, want DropNewest", got)
	}

	custom := map[core.Level]OverflowPolicy{core.FineLevel: DropOldest}
	if got := PolicyFor(custom, core.FinestLevel); got != DropOldest {
		t.Errorf("PolicyFor(FINEST) = %v, want DropOldest", got)
	}
	if got := PolicyFor(custom, core.InfoLevel); got != DropNewest {
		t.Errorf("PolicyFor(INFO) = %v, want DropNewest fallback", got)
	}
}

func TestOverflowPolicy_String(t *testing.T) {
	for p, want := range map[OverflowPolicy]string{
		DropNewest:        "DropNewest",
		DropOldest:        "DropOldest",
		Block:             "Block",
		OverflowPolicy(9): "Unknown",
	} {
		if got := p.String(); got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	}
}

func TestStats(t *testing.T) {
	s := NewStats()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.IncrementDropped(core.FinerLevel)
			s.IncrementDropped(core.SevereLevel)
			s.IncrementBlocked()
			s.IncrementProcessed()
		}()
	}
	wg.Wait()

	snap := s.GetSnapshot()
	if snap.DroppedTotal[core.FineLevel] != 10 {
		t.Errorf("dropped FINE = %d, want 10", snap.DroppedTotal[core.FineLevel])
	}
	if snap.DroppedTotal[core.SevereLevel] != 10 {
		t.Errorf("dropped SEVERE = %d, want 10", snap.DroppedTotal[core.SevereLevel])
	}
	if snap.BlockedTotal != 10 || snap.ProcessedTotal != 10 {
		t.Errorf("blocked/processed = %d/%d, want 10/10", snap.BlockedTotal, snap.ProcessedTotal)
	}
	if got := s.GetTotalDropped(); got != 20 {
		t.Errorf("GetTotalDropped() = %d, want 20", got)
	}

	s.Reset()
	if got := s.GetTotalDropped() + s.GetBlocked() + s.GetProcessed(); got != 0 {
		t.Errorf("after Reset counters sum to %d", got)
	}
}

func TestNewStoppedTimer(t *testing.T) {
	timer := NewStoppedTimer()
	select {
	case <-timer.C:
		t.Fatal("stopped timer fired")
	default:
	}
	if timer.Stop() {
		t.Error("Stop() reported an active timer")
	}
}
