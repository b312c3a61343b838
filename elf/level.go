package elf

import (
	"fmt"
	"strings"
)

// Level is the facade severity. Levels are ordered; OFF is a sentinel
// meaning disabled and is never a severity a record is logged at.
type Level int8

const (
	TRACE Level = iota
	DEBUG
	INFO
	WARN
	ERROR
	OFF
)

// Levels lists every level, OFF included, in ascending order.
var Levels = [...]Level{TRACE, DEBUG, INFO, WARN, ERROR, OFF}

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case TRACE:
		return "TRACE"
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	case OFF:
		return "OFF"
	default:
		return fmt.Sprintf("Level(%d)", int8(l))
	}
}

// Valid reports whether l is one of the declared levels.
func (l Level) Valid() bool { return l >= TRACE && l <= OFF }

// ParseLevel converts a level name, case-insensitively, to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TRACE":
		return TRACE, nil
	case "DEBUG":
		return DEBUG, nil
	case "INFO":
		return INFO, nil
	case "WARN", "WARNING":
		return WARN, nil
	case "ERROR":
		return ERROR, nil
	case "OFF":
		return OFF, nil
	default:
		return INFO, fmt.Errorf("elf: unknown level %q", s)
	}
}
