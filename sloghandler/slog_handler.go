package sloghandler

import (
	"context"
	"log/slog"
	"runtime"
	"time"

	"github.com/valyala/bytebufferpool"

	"github.com/Philipp01105/tracelog/core"
	"github.com/Philipp01105/tracelog/formatter"
	"github.com/Philipp01105/tracelog/logger"
)

// debugVerbose is the verbose level slog debug records are gated on;
// they have no severity of their own and ride on INFO like verbose
// records do.
const debugVerbose = 1

// SlogHandler is an adapter that implements slog.Handler on top of a
// tracelog Logger. Records render with the Logger's configured prefix
// layout; attributes append as key=value text after the message.
type SlogHandler struct {
	logger *logger.Logger
	// attrText holds the attrs bound via WithAttrs, already rendered
	// with their group prefixes.
	attrText string
	group    string
}

// NewSlogHandler creates a slog.Handler adapter emitting through the
// given Logger.
func NewSlogHandler(l *logger.Logger) *SlogHandler {
	return &SlogHandler{logger: l}
}

// Enabled consults the Logger's level flags, so slog call sites are
// gated the same way the native front ends are.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	if level < slog.LevelInfo {
		return s.logger.VerboseEnabled(debugVerbose)
	}
	return s.logger.Enabled(slogLevelToCore(level))
}

// Handle renders a slog.Record into one trace record and hands it to
// the Logger. The record's own time and PC drive the prefix; a zero
// time falls back to now.
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	t := record.Time
	if t.IsZero() {
		t = time.Now()
	}

	loc := core.Location{File: "???"}
	if record.PC != 0 {
		frame, _ := runtime.CallersFrames([]uintptr{record.PC}).Next()
		if frame.File != "" {
			loc = core.Location{File: frame.File, Line: frame.Line}
		}
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	buf.B = formatter.ForFormat(s.logger.Format()).AppendPrefix(buf.B, t, slogLevelToCore(record.Level), core.PID(), loc)
	buf.B = append(buf.B, record.Message...)
	buf.B = append(buf.B, s.attrText...)
	record.Attrs(func(a slog.Attr) bool {
		buf.B = appendAttr(buf.B, s.group, a)
		return true
	})

	s.logger.Log(buf.String())
	return nil
}

// WithAttrs returns a new SlogHandler with the given attributes bound
// to every record.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return s
	}
	text := []byte(s.attrText)
	for _, a := range attrs {
		text = appendAttr(text, s.group, a)
	}
	return &SlogHandler{logger: s.logger, attrText: string(text), group: s.group}
}

// WithGroup returns a new SlogHandler that prefixes the keys of
// subsequent attributes with the given group name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	newGroup := name
	if s.group != "" {
		newGroup = s.group + "." + name
	}
	return &SlogHandler{logger: s.logger, attrText: s.attrText, group: newGroup}
}

// slogLevelToCore maps a slog.Level onto the severity the record is
// emitted at. Everything below Warn, including debug, lands on INFO.
func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarningLevel
	default:
		return core.InfoLevel
	}
}

// appendAttr renders one attribute as " key=value" with the group
// prefix applied. Group attributes flatten recursively; an inline
// group with an empty key keeps the enclosing prefix.
func appendAttr(dst []byte, group string, a slog.Attr) []byte {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return dst
	}

	key := a.Key
	if group != "" && a.Key != "" {
		key = group + "." + a.Key
	} else if group != "" {
		key = group
	}

	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			dst = appendAttr(dst, key, ga)
		}
		return dst
	}

	dst = append(dst, ' ')
	dst = append(dst, key...)
	dst = append(dst, '=')
	return append(dst, a.Value.String()...)
}
