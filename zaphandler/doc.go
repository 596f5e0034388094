// Package zaphandler bridges go.uber.org/zap into a tracelog Logger.
//
// Wrap a Logger and hand the result to zap.New:
//
//	log := logger.New()
//	z := zap.New(zaphandler.NewZapCore(log), zap.AddCaller())
//	z.Info("server ready", zap.Int("port", 8001))
//
// zap levels map onto the three tracelog severities: Error and above
// become ERROR, Warn becomes WARNING, Info becomes INFO. Debug and
// below are treated like verbose records, gated on the Logger's
// verbose threshold and emitted at INFO. Fields render as sorted
// key=value text after the message, and Sync flushes the Logger.
package zaphandler
