package logger

import "github.com/Philipp01105/tracelog/core"

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	ErrorLevel   = core.ErrorLevel
	WarningLevel = core.WarningLevel
	InfoLevel    = core.InfoLevel
)

// Format Re-export type and constants for convenience
type Format = core.Format

const (
	DefaultFormat = core.DefaultFormat
	ISO8601Format = core.ISO8601Format
)
