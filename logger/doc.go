// Package logger is the public API of tracelog. Most users only need
// to import this package.
//
// A Logger is an explicitly constructed logging context that owns one
// output sink: the trace file configured with SetFile, or standard
// error when no path is set. One mutex serializes every write, so
// records from concurrent goroutines come out whole, never
// interleaved. The file handle is opened lazily by the first Log call
// that needs it and reopened when the path changed in between; a
// failing file sink is reported on standard error and never back to
// the logging call site.
//
// The package initializes a default Logger (all levels enabled,
// verbose 0, default layout, standard error) so simple programs can
// log without any setup:
//
//	logger.Infof("server listening on %s", addr)
//	logger.Verbose(1).Print("model warmup complete")
//
// Each record carries a deterministic prefix with the level code,
// UTC timestamp, process id and caller location, in one of two
// layouts (see the formatter package). For multi-step records,
// Message hands out the line builder directly:
//
//	m := log.Message(logger.ErrorLevel)
//	defer m.Commit()
//	m.Print("failed to load config")
//
// Filtering is the caller's job: the Error/Warning/Info front ends and
// the Verbose gate consult the enabled flags and verbose threshold
// before building a message, but Log itself writes everything it is
// handed. Code calling Log directly takes over that responsibility.
package logger
