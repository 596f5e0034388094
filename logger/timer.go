package logger

import (
	"time"

	"github.com/Philipp01105/tracelog/core"
)

// Timer measures the duration of one operation and emits it as a
// verbose record when stopped.
type Timer struct {
	logger  *Logger
	name    string
	level   uint32
	start   time.Time
	stopped bool
}

// StartTimer begins timing the named operation. Stop emits the
// completion record, by default at verbose level 1.
func (l *Logger) StartTimer(name string) *Timer {
	return &Timer{logger: l, name: name, level: 1, start: time.Now()}
}

// AtVerboseLevel changes the verbose level the completion record is
// gated on.
func (t *Timer) AtVerboseLevel(level uint32) *Timer {
	t.level = level
	return t
}

// Elapsed returns the time since the timer started.
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}

// Stop emits "<name> took <duration>" at INFO severity, gated on the
// timer's verbose level, and returns the elapsed time. Calls after the
// first do nothing and return 0.
func (t *Timer) Stop() time.Duration {
	if t.stopped {
		return 0
	}
	t.stopped = true

	elapsed := t.Elapsed()
	if t.logger.VerboseEnabled(t.level) {
		m := t.logger.message(core.InfoLevel)
		m.Printf("%s took %s", t.name, elapsed)
		m.Commit()
	}
	return elapsed
}
