package core

import (
	"fmt"
	"strings"
)

// Level represents the severity level of a trace record
type Level uint32

const (
	// ErrorLevel for failures that need operator attention
	ErrorLevel Level = iota
	// WarningLevel for recoverable or suspicious conditions
	WarningLevel
	// InfoLevel for general informational messages
	InfoLevel
)

// levelChars maps a level ordinal to its one-character display code.
var levelChars = [3]byte{'E', 'W', 'I'}

// Char returns the single display character for the level. Any level
// numerically above InfoLevel is clamped to InfoLevel's character.
func (l Level) Char() byte {
	if l > InfoLevel {
		l = InfoLevel
	}
	return levelChars[l]
}

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case ErrorLevel:
		return "ERROR"
	case WarningLevel:
		return "WARNING"
	default:
		return "INFO"
	}
}

// ParseLevel converts a level name into a Level. It accepts the names
// reported by String in any case.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "error":
		return ErrorLevel, nil
	case "warning":
		return WarningLevel, nil
	case "info":
		return InfoLevel, nil
	}
	return InfoLevel, fmt.Errorf("unknown log level %q", s)
}
