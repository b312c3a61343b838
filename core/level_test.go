package core

import (
	"testing"
)

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{FinestLevel, "FINEST"},
		{FineLevel, "FINE"},
		{InfoLevel, "INFO"},
		{WarningLevel, "WARNING"},
		{SevereLevel, "SEVERE"},
		{OffLevel, "OFF"},
		{Level(850), "850"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.level.String(); got != tt.want {
				t.Errorf("Level.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"finest", FinestLevel, false},
		{"DEBUG", FineLevel, false},
		{"Warning", WarningLevel, false},
		{"error", SevereLevel, false},
		{"off", OffLevel, false},
		{"850", Level(850), false},
		{"loud", InfoLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLevel_Ordering(t *testing.T) {
	levels := []Level{AllLevel, FinestLevel, FinerLevel, FineLevel, ConfigLevel, InfoLevel, WarningLevel, SevereLevel, OffLevel}
	for i := 1; i < len(levels); i++ {
		if levels[i-1] >= levels[i] {
			t.Errorf("%v should be below %v", levels[i-1], levels[i])
		}
	}
}

func TestNewLogRecord(t *testing.T) {
	r1 := NewLogRecord(InfoLevel, "first")
	r2 := NewLogRecord(WarningLevel, "second")

	if r2.Sequence() <= r1.Sequence() {
		t.Errorf("expected increasing sequence numbers, got %d then %d", r1.Sequence(), r2.Sequence())
	}
	if r1.Time().IsZero() {
		t.Error("expected a timestamp")
	}
	if r1.Message() != "first" || r1.Level() != InfoLevel {
		t.Errorf("unexpected record %+v", r1)
	}

	var rec Record = r1
	rec.SetSourceClassName("example.com/app.Service")
	rec.SetSourceMethodName("Run")
	if rec.SourceClassName() != "example.com/app.Service" || rec.SourceMethodName() != "Run" {
		t.Error("source setters did not stick")
	}
}
