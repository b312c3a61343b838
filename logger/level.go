package logger

import "github.com/philipp01105/elfnlog/core"

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	AllLevel     = core.AllLevel
	FinestLevel  = core.FinestLevel
	FinerLevel   = core.FinerLevel
	FineLevel    = core.FineLevel
	ConfigLevel  = core.ConfigLevel
	InfoLevel    = core.InfoLevel
	WarningLevel = core.WarningLevel
	SevereLevel  = core.SevereLevel
	OffLevel     = core.OffLevel
)

// ParseLevel converts a string to a Level
func ParseLevel(s string) (Level, error) {
	return core.ParseLevel(s)
}
