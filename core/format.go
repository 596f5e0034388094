package core

import (
	"fmt"
	"strings"
)

// Format selects the prefix layout rendered in front of every record
type Format uint8

const (
	// DefaultFormat renders the compact glog-style prefix without a year:
	// Lmmdd hh:mm:ss.ssssss pid file:line]
	DefaultFormat Format = iota
	// ISO8601Format renders an ISO-8601 timestamp at seconds precision:
	// yyyy-mm-ddThh:mm:ssZ L pid file:line]
	ISO8601Format
)

// String returns the configuration name of the format
func (f Format) String() string {
	switch f {
	case ISO8601Format:
		return "ISO8601"
	default:
		return "default"
	}
}

// ParseFormat converts a format name into a Format. It accepts
// "default" and "ISO8601" in any case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "default":
		return DefaultFormat, nil
	case "iso8601":
		return ISO8601Format, nil
	}
	return DefaultFormat, fmt.Errorf("unknown log format %q", s)
}
