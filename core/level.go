package core

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Level represents the native severity of a log record. Values are ordered,
// a record is loggable when its level is at or above a logger's threshold.
type Level int32

const (
	// AllLevel enables every record
	AllLevel Level = math.MinInt32
	// FinestLevel for highly detailed tracing
	FinestLevel Level = 300
	// FinerLevel for fairly detailed tracing
	FinerLevel Level = 400
	// FineLevel for debugging information
	FineLevel Level = 500
	// ConfigLevel for static configuration messages
	ConfigLevel Level = 700
	// InfoLevel for informational messages (default threshold)
	InfoLevel Level = 800
	// WarningLevel for potential problems
	WarningLevel Level = 900
	// SevereLevel for serious failures
	SevereLevel Level = 1000
	// OffLevel disables logging
	OffLevel Level = math.MaxInt32
)

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case AllLevel:
		return "ALL"
	case FinestLevel:
		return "FINEST"
	case FinerLevel:
		return "FINER"
	case FineLevel:
		return "FINE"
	case ConfigLevel:
		return "CONFIG"
	case InfoLevel:
		return "INFO"
	case WarningLevel:
		return "WARNING"
	case SevereLevel:
		return "SEVERE"
	case OffLevel:
		return "OFF"
	default:
		return strconv.Itoa(int(l))
	}
}

// ParseLevel converts a level name (or its integer value) to a Level
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ALL":
		return AllLevel, nil
	case "FINEST", "TRACE":
		return FinestLevel, nil
	case "FINER":
		return FinerLevel, nil
	case "FINE", "DEBUG":
		return FineLevel, nil
	case "CONFIG":
		return ConfigLevel, nil
	case "INFO":
		return InfoLevel, nil
	case "WARNING", "WARN":
		return WarningLevel, nil
	case "SEVERE", "ERROR":
		return SevereLevel, nil
	case "OFF":
		return OffLevel, nil
	}
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return InfoLevel, fmt.Errorf("core: unknown level %q", s)
	}
	return Level(v), nil
}
