package zaphandler

import (
	"fmt"
	"sort"
	"time"

	"github.com/valyala/bytebufferpool"
	"go.uber.org/zap/zapcore"

	"github.com/Philipp01105/tracelog/core"
	"github.com/Philipp01105/tracelog/formatter"
	"github.com/Philipp01105/tracelog/logger"
)

// debugVerbose is the verbose level zap debug records are gated on.
const debugVerbose = 1

// ZapCore is an adapter that implements zapcore.Core on top of a
// tracelog Logger. Entries render with the Logger's configured prefix
// layout; fields append as key=value text after the message.
type ZapCore struct {
	logger *logger.Logger
	fields []zapcore.Field
}

// NewZapCore creates a zapcore.Core adapter emitting through the given
// Logger. Wrap it with zap.New, typically together with zap.AddCaller
// so entries carry their call site:
//
//	z := zap.New(zaphandler.NewZapCore(log), zap.AddCaller())
func NewZapCore(l *logger.Logger) *ZapCore {
	return &ZapCore{logger: l}
}

// Enabled consults the Logger's level flags. Debug and below ride on
// the verbose threshold and are emitted at INFO.
func (c *ZapCore) Enabled(level zapcore.Level) bool {
	if level < zapcore.InfoLevel {
		return c.logger.VerboseEnabled(debugVerbose)
	}
	return c.logger.Enabled(zapLevelToCore(level))
}

// With returns a copy of the core with the given fields bound to every
// entry.
func (c *ZapCore) With(fields []zapcore.Field) zapcore.Core {
	if len(fields) == 0 {
		return c
	}
	bound := make([]zapcore.Field, 0, len(c.fields)+len(fields))
	bound = append(bound, c.fields...)
	bound = append(bound, fields...)
	return &ZapCore{logger: c.logger, fields: bound}
}

// Check adds the core to the checked entry when the entry's level is
// enabled.
func (c *ZapCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

// Write renders the entry into one trace record and hands it to the
// Logger. The entry's own time and caller drive the prefix; the error
// is always nil because the Logger absorbs sink failures itself.
func (c *ZapCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	t := ent.Time
	if t.IsZero() {
		t = time.Now()
	}

	loc := core.Location{File: "???"}
	if ent.Caller.Defined {
		loc = core.Location{File: ent.Caller.File, Line: ent.Caller.Line}
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	buf.B = formatter.ForFormat(c.logger.Format()).AppendPrefix(buf.B, t, zapLevelToCore(ent.Level), core.PID(), loc)
	if ent.LoggerName != "" {
		buf.B = append(buf.B, ent.LoggerName...)
		buf.B = append(buf.B, ':', ' ')
	}
	buf.B = append(buf.B, ent.Message...)
	buf.B = appendFields(buf.B, c.fields, fields)
	if ent.Stack != "" {
		buf.B = append(buf.B, '\n')
		buf.B = append(buf.B, ent.Stack...)
	}

	c.logger.Log(buf.String())
	return nil
}

// Sync flushes the Logger.
func (c *ZapCore) Sync() error {
	c.logger.Flush()
	return nil
}

// zapLevelToCore maps a zapcore.Level onto the severity the entry is
// emitted at. Error, DPanic, Panic and Fatal all land on ERROR; debug
// and below land on INFO.
func zapLevelToCore(level zapcore.Level) core.Level {
	switch {
	case level >= zapcore.ErrorLevel:
		return core.ErrorLevel
	case level == zapcore.WarnLevel:
		return core.WarningLevel
	default:
		return core.InfoLevel
	}
}

// appendFields renders the bound and per-entry fields as sorted
// " key=value" text.
func appendFields(dst []byte, bound, fields []zapcore.Field) []byte {
	if len(bound)+len(fields) == 0 {
		return dst
	}
	enc := zapcore.NewMapObjectEncoder()
	for i := range bound {
		bound[i].AddTo(enc)
	}
	for i := range fields {
		fields[i].AddTo(enc)
	}

	keys := make([]string, 0, len(enc.Fields))
	for k := range enc.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		dst = append(dst, ' ')
		dst = append(dst, k...)
		dst = append(dst, '=')
		dst = fmt.Appendf(dst, "%v", enc.Fields[k])
	}
	return dst
}
