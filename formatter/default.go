package formatter

import (
	"strconv"
	"time"

	"github.com/Philipp01105/tracelog/core"
)

// Default renders the compact glog-style prefix:
//
//	Lmmdd hh:mm:ss.ssssss pid file:line]
//
// where L is the one-character level code and microseconds are
// six-digit zero-padded. No year is rendered in this layout.
type Default struct{}

// AppendPrefix appends the default-layout prefix to dst.
func (Default) AppendPrefix(dst []byte, t time.Time, level core.Level, pid int, loc core.Location) []byte {
	dst = append(dst, level.Char())
	// AppendFormat writes straight into dst without a string allocation
	dst = t.UTC().AppendFormat(dst, "0102 15:04:05.000000")
	dst = append(dst, ' ')
	dst = strconv.AppendInt(dst, int64(pid), 10)
	dst = append(dst, ' ')
	dst = append(dst, loc.ShortFile()...)
	dst = append(dst, ':')
	dst = strconv.AppendInt(dst, int64(loc.Line), 10)
	return append(dst, ']', ' ')
}
