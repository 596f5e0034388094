package logger

import (
	"fmt"
	"time"

	"github.com/valyala/bytebufferpool"

	"github.com/Philipp01105/tracelog/core"
	"github.com/Philipp01105/tracelog/formatter"
)

// Message is a single trace record under construction. The prefix is
// rendered into a pooled buffer when the message is built; the caller
// appends free text after it and finishes the record with Commit.
// A Message must not be shared between goroutines.
type Message struct {
	logger *Logger
	buf    *bytebufferpool.ByteBuffer
}

// Message starts a record at the given level, capturing the caller's
// source location and the current time. The caller appends text with
// Print, Printf or Write and finishes the record with Commit,
// typically deferred so the record is committed on every exit path:
//
//	m := log.Message(logger.ErrorLevel)
//	defer m.Commit()
//	m.Printf("binding port %d", port)
//
// Message applies no level gating; callers wanting the configured
// visibility check Enabled or VerboseEnabled first.
func (l *Logger) Message(level core.Level) *Message {
	return l.message(level)
}

// message builds a Message for the caller two frames up the stack;
// every exported front end sits exactly one frame between the emitting
// code and this function.
func (l *Logger) message(level core.Level) *Message {
	loc := core.Here(2)
	buf := bytebufferpool.Get()
	buf.B = formatter.ForFormat(l.Format()).AppendPrefix(buf.B, time.Now(), level, core.PID(), loc)
	return &Message{logger: l, buf: buf}
}

// Print appends text to the record in the manner of fmt.Sprint.
func (m *Message) Print(args ...interface{}) *Message {
	if m.buf != nil {
		fmt.Fprint(m.buf, args...)
	}
	return m
}

// Printf appends text to the record in the manner of fmt.Sprintf.
func (m *Message) Printf(format string, args ...interface{}) *Message {
	if m.buf != nil {
		fmt.Fprintf(m.buf, format, args...)
	}
	return m
}

// Write appends raw bytes to the record, satisfying io.Writer. It
// never fails; bytes written after Commit are discarded.
func (m *Message) Write(p []byte) (int, error) {
	if m.buf != nil {
		m.buf.B = append(m.buf.B, p...)
	}
	return len(p), nil
}

// Commit hands the finished line to the Logger and releases the
// message buffer back to the pool. Commit is idempotent and never
// fails, so it is safe to defer unconditionally; a failing sink is
// already handled inside Log.
func (m *Message) Commit() {
	if m.buf == nil {
		return
	}
	m.logger.Log(m.buf.String())
	bytebufferpool.Put(m.buf)
	m.buf = nil
}
