package formatter

import (
	"time"

	"github.com/Philipp01105/tracelog/core"
)

// Formatter renders the deterministic prefix placed in front of the
// caller-supplied text of every trace record.
type Formatter interface {
	// AppendPrefix appends the prefix for a record emitted at t from loc
	// to dst and returns the extended slice. The timestamp is always
	// rendered in UTC.
	AppendPrefix(dst []byte, t time.Time, level core.Level, pid int, loc core.Location) []byte
}

// ForFormat returns the Formatter implementing the given prefix layout.
func ForFormat(f core.Format) Formatter {
	if f == core.ISO8601Format {
		return ISO8601{}
	}
	return Default{}
}
