package logger

import (
	"sync"

	"github.com/Philipp01105/tracelog/core"
)

var (
	defaultLogger *Logger
	defaultMu     sync.RWMutex
)

func init() {
	defaultLogger = New()
}

// Default returns the process-wide default logger
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault replaces the process-wide default logger
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Package-level convenience functions using the default logger

// Error logs a record at ERROR level using the default logger
func Error(args ...interface{}) {
	d := Default()
	if !d.Enabled(core.ErrorLevel) {
		return
	}
	m := d.message(core.ErrorLevel)
	m.Print(args...)
	m.Commit()
}

// Warning logs a record at WARNING level using the default logger
func Warning(args ...interface{}) {
	d := Default()
	if !d.Enabled(core.WarningLevel) {
		return
	}
	m := d.message(core.WarningLevel)
	m.Print(args...)
	m.Commit()
}

// Info logs a record at INFO level using the default logger
func Info(args ...interface{}) {
	d := Default()
	if !d.Enabled(core.InfoLevel) {
		return
	}
	m := d.message(core.InfoLevel)
	m.Print(args...)
	m.Commit()
}

// Errorf logs a formatted record at ERROR level using the default logger
func Errorf(format string, args ...interface{}) {
	d := Default()
	if !d.Enabled(core.ErrorLevel) {
		return
	}
	m := d.message(core.ErrorLevel)
	m.Printf(format, args...)
	m.Commit()
}

// Warningf logs a formatted record at WARNING level using the default logger
func Warningf(format string, args ...interface{}) {
	d := Default()
	if !d.Enabled(core.WarningLevel) {
		return
	}
	m := d.message(core.WarningLevel)
	m.Printf(format, args...)
	m.Commit()
}

// Infof logs a formatted record at INFO level using the default logger
func Infof(format string, args ...interface{}) {
	d := Default()
	if !d.Enabled(core.InfoLevel) {
		return
	}
	m := d.message(core.InfoLevel)
	m.Printf(format, args...)
	m.Commit()
}

// Message starts a record on the default logger, capturing the
// caller's source location
func Message(level Level) *Message {
	return Default().message(level)
}

// Verbose returns a verbose gate handle on the default logger
func Verbose(level uint32) Verbose {
	return Default().Verbose(level)
}

// VerboseTable logs a table as one multi-line record on the default
// logger, gated on the given verbose level
func VerboseTable(level uint32, title string, header []string, rows [][]string) {
	d := Default()
	if !d.VerboseEnabled(level) {
		return
	}
	m := d.message(core.InfoLevel)
	m.Print(title)
	m.Write([]byte{'\n'})
	m.Write(renderTable(header, rows))
	m.Commit()
}

// StartTimer begins timing the named operation on the default logger
func StartTimer(name string) *Timer {
	return Default().StartTimer(name)
}

// Flush flushes the default logger's standard-error sink
func Flush() {
	Default().Flush()
}
