// Package sloghandler bridges the standard library's log/slog into a
// tracelog Logger.
//
// Wrap a Logger and hand the result to slog.New:
//
//	log := logger.New()
//	slogger := slog.New(sloghandler.NewSlogHandler(log))
//	slogger.Info("server ready", "port", 8001)
//
// slog levels map onto the three tracelog severities: Error and above
// become ERROR, Warn becomes WARNING, Info becomes INFO. Debug and
// below are treated like verbose records, gated on the Logger's
// verbose threshold and emitted at INFO. Attributes render as
// key=value text after the message, with WithGroup names joined onto
// the keys by dots.
package sloghandler
