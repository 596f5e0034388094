package formatter

import (
	"strconv"
	"time"

	"github.com/Philipp01105/tracelog/core"
)

// ISO8601 renders an ISO-8601 timestamp at seconds precision followed
// by the level code:
//
//	yyyy-mm-ddThh:mm:ssZ L pid file:line]
//
// No fractional seconds are rendered in this layout.
type ISO8601 struct{}

// AppendPrefix appends the ISO-8601-layout prefix to dst.
func (ISO8601) AppendPrefix(dst []byte, t time.Time, level core.Level, pid int, loc core.Location) []byte {
	// The trailing Z is a literal; the timestamp is forced to UTC first.
	dst = t.UTC().AppendFormat(dst, "2006-01-02T15:04:05Z")
	dst = append(dst, ' ', level.Char(), ' ')
	dst = strconv.AppendInt(dst, int64(pid), 10)
	dst = append(dst, ' ')
	dst = append(dst, loc.ShortFile()...)
	dst = append(dst, ':')
	dst = strconv.AppendInt(dst, int64(loc.Line), 10)
	return append(dst, ']', ' ')
}
