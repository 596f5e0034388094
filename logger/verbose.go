package logger

import "github.com/Philipp01105/tracelog/core"

// Verbose is a gate handle returned by Logger.Verbose. Records pass
// through it only when the verbose level it was built at does not
// exceed the Logger's threshold; records that pass are emitted at INFO
// severity.
type Verbose struct {
	logger *Logger
	on     bool
}

// Verbose returns a gate handle for verbose records at the given
// level. The threshold check runs once, here, so arguments to a
// disabled Print are still evaluated; wrap expensive argument
// construction in Enabled when that matters:
//
//	log.Verbose(1).Printf("loaded %d models", n)
//
//	if v := log.Verbose(2); v.Enabled() {
//	    v.Print(expensiveDump())
//	}
func (l *Logger) Verbose(level uint32) Verbose {
	return Verbose{logger: l, on: l.VerboseEnabled(level)}
}

// Enabled reports whether records pass through this handle.
func (v Verbose) Enabled() bool {
	return v.on
}

// Print logs a record at INFO severity in the manner of fmt.Sprint
// when the handle is enabled.
func (v Verbose) Print(args ...interface{}) {
	if !v.on {
		return
	}
	m := v.logger.message(core.InfoLevel)
	m.Print(args...)
	m.Commit()
}

// Printf logs a record at INFO severity in the manner of fmt.Sprintf
// when the handle is enabled.
func (v Verbose) Printf(format string, args ...interface{}) {
	if !v.on {
		return
	}
	m := v.logger.message(core.InfoLevel)
	m.Printf(format, args...)
	m.Commit()
}
