// Package formatter renders the deterministic record prefix that
// precedes the caller-supplied text of every trace record.
//
// Two layouts exist. Default is the compact glog-style prefix with a
// one-character level code, month/day, wall-clock time at microsecond
// resolution, the process id and the source location:
//
//	E0301 12:00:00.500000 1234 server.cc:42] message text
//
// ISO8601 renders a full ISO-8601 timestamp at seconds precision with
// the level code after it:
//
//	2024-03-01T12:00:00Z E 1234 server.cc:42] message text
//
// Both layouts interpret the timestamp in UTC and reduce the source
// file to the text after its final '/'. Formatters are stateless and
// rely on Go's Append-style functions (time.AppendFormat,
// strconv.AppendInt) to render into a caller-provided slice without
// per-call allocations; buffer ownership stays with the caller so the
// logger can pool line buffers across records.
package formatter
