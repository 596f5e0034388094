package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/valyala/bytebufferpool"

	"github.com/Philipp01105/tracelog/core"
)

// Logger owns the output sink for trace records and serializes writes
// from arbitrarily many goroutines behind a single mutex. Records go
// to the configured trace file, or to standard error when no file path
// is set. The file handle is opened lazily by the first Log call that
// needs it and reopened when the path changed in between.
type Logger struct {
	mu sync.RWMutex

	enabled [3]bool
	verbose uint32
	format  core.Format

	filePath  string
	file      *os.File
	fileDirty bool

	// stderr is the no-file sink and the destination for sink failure
	// diagnostics. Swapped for a buffer in tests.
	stderr io.Writer
}

// New returns a Logger with every level enabled, verbose level 0, the
// default prefix layout, and records routed to standard error.
func New() *Logger {
	return &Logger{
		enabled: [3]bool{true, true, true},
		stderr:  os.Stderr,
	}
}

// Log writes one finished record to the configured sink, followed by a
// line terminator. It never returns or propagates a failure: a file
// sink that cannot be opened or written is reported with a one-line
// diagnostic on standard error and the record is dropped, not retried.
//
// Log applies no level or verbosity filtering. The enabled flags and
// the verbose threshold are consulted by the level front ends (Error,
// Warning, Info, Verbose) before a message is built; callers invoking
// Log directly are expected to have done the same.
func (l *Logger) Log(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.filePath != "" {
		if err := l.writeFile(msg); err != nil {
			l.reportSinkFailure(err)
		}
		return
	}
	l.writeLine(l.stderr, msg)
}

// writeFile appends msg to the trace file, reconciling the handle with
// the configured path first. Caller must hold mu.
func (l *Logger) writeFile(msg string) error {
	if l.file == nil || l.fileDirty {
		if l.file != nil {
			l.file.Close()
			l.file = nil
		}
		l.fileDirty = false
		f, err := os.OpenFile(l.filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return err
		}
		l.file = f
	}
	return l.writeLine(l.file, msg)
}

// writeLine writes msg plus the line terminator as a single write so
// records from concurrent callers can never interleave mid-line.
func (l *Logger) writeLine(w io.Writer, msg string) error {
	buf := bytebufferpool.Get()
	buf.B = append(buf.B, msg...)
	buf.B = append(buf.B, '\n')
	_, err := w.Write(buf.B)
	bytebufferpool.Put(buf)
	return err
}

// reportSinkFailure prints the one-line diagnostic for a failed file
// open or write on standard error. The offending record is gone by
// now; nothing escalates past this print.
func (l *Logger) reportSinkFailure(err error) {
	desc := ""
	if err != nil {
		desc = err.Error()
	}
	if desc == "" {
		desc = "reason unknown"
	}
	fmt.Fprintln(l.stderr, "failed creating trace file: "+desc)
}

// Flush forces buffered standard-error output out to the platform.
// It applies to the standard-error sink only; the trace file is
// written one unbuffered line at a time and is not synced here.
func (l *Logger) Flush() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if f, ok := l.stderr.(*os.File); ok {
		f.Sync()
	}
}

// Close releases the trace file handle if one is open. The Logger
// stays usable afterwards; the next Log call to a file sink reopens
// the handle.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// levelIndex maps a level onto its enabled flag slot; levels above
// InfoLevel share InfoLevel's flag, mirroring the display clamp.
func levelIndex(level core.Level) int {
	if level > core.InfoLevel {
		level = core.InfoLevel
	}
	return int(level)
}

// Enabled reports whether records at the given level should be
// emitted.
func (l *Logger) Enabled(level core.Level) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.enabled[levelIndex(level)]
}

// SetEnabled turns emission of records at the given level on or off.
func (l *Logger) SetEnabled(level core.Level, on bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.enabled[levelIndex(level)] = on
}

// VerboseLevel returns the verbosity threshold.
func (l *Logger) VerboseLevel() uint32 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.verbose
}

// SetVerboseLevel sets the verbosity threshold.
func (l *Logger) SetVerboseLevel(level uint32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.verbose = level
}

// VerboseEnabled reports whether verbose records at the given level
// should be emitted: a record passes when its level does not exceed
// the configured threshold.
func (l *Logger) VerboseEnabled(level uint32) bool {
	return level <= l.VerboseLevel()
}

// Format returns the configured prefix layout.
func (l *Logger) Format() core.Format {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.format
}

// SetFormat selects the prefix layout for subsequently built messages.
// Messages already under construction keep the layout they were built
// with.
func (l *Logger) SetFormat(f core.Format) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.format = f
}

// File returns the configured trace file path; empty means records go
// to standard error.
func (l *Logger) File() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.filePath
}

// SetFile routes records to the file at path, or back to standard
// error when path is empty. Only the path changes here: the handle is
// opened, and a stale handle closed, by the next Log call that writes
// to a file.
func (l *Logger) SetFile(path string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.filePath = path
	l.fileDirty = true
}

// Error logs a record at ERROR level when that level is enabled.
// Arguments are handled in the manner of fmt.Sprint.
func (l *Logger) Error(args ...interface{}) {
	if !l.Enabled(core.ErrorLevel) {
		return
	}
	m := l.message(core.ErrorLevel)
	m.Print(args...)
	m.Commit()
}

// Warning logs a record at WARNING level when that level is enabled.
// Arguments are handled in the manner of fmt.Sprint.
func (l *Logger) Warning(args ...interface{}) {
	if !l.Enabled(core.WarningLevel) {
		return
	}
	m := l.message(core.WarningLevel)
	m.Print(args...)
	m.Commit()
}

// Info logs a record at INFO level when that level is enabled.
// Arguments are handled in the manner of fmt.Sprint.
func (l *Logger) Info(args ...interface{}) {
	if !l.Enabled(core.InfoLevel) {
		return
	}
	m := l.message(core.InfoLevel)
	m.Print(args...)
	m.Commit()
}

// Errorf logs a record at ERROR level when that level is enabled.
// Arguments are handled in the manner of fmt.Sprintf.
func (l *Logger) Errorf(format string, args ...interface{}) {
	if !l.Enabled(core.ErrorLevel) {
		return
	}
	m := l.message(core.ErrorLevel)
	m.Printf(format, args...)
	m.Commit()
}

// Warningf logs a record at WARNING level when that level is enabled.
// Arguments are handled in the manner of fmt.Sprintf.
func (l *Logger) Warningf(format string, args ...interface{}) {
	if !l.Enabled(core.WarningLevel) {
		return
	}
	m := l.message(core.WarningLevel)
	m.Printf(format, args...)
	m.Commit()
}

// Infof logs a record at INFO level when that level is enabled.
// Arguments are handled in the manner of fmt.Sprintf.
func (l *Logger) Infof(format string, args ...interface{}) {
	if !l.Enabled(core.InfoLevel) {
		return
	}
	m := l.message(core.InfoLevel)
	m.Printf(format, args...)
	m.Commit()
}
