package formatter

import (
	"regexp"
	"testing"
	"time"

	"github.com/Philipp01105/tracelog/core"
)

var testLoc = core.Location{File: "/home/user/server.cc", Line: 42}

func TestDefault_Layout(t *testing.T) {
	ts := time.Date(2024, 3, 1, 12, 0, 0, 123456789, time.UTC)

	got := string(Default{}.AppendPrefix(nil, ts, core.ErrorLevel, 1234, testLoc))
	want := "E0301 12:00:00.123456 1234 server.cc:42] "
	if got != want {
		t.Errorf("AppendPrefix() = %q, want %q", got, want)
	}
}

func TestISO8601_Layout(t *testing.T) {
	ts := time.Date(2024, 3, 1, 12, 0, 0, 123456789, time.UTC)

	got := string(ISO8601{}.AppendPrefix(nil, ts, core.ErrorLevel, 1234, testLoc))
	want := "2024-03-01T12:00:00Z E 1234 server.cc:42] "
	if got != want {
		t.Errorf("AppendPrefix() = %q, want %q", got, want)
	}
}

func TestDefault_Pattern(t *testing.T) {
	re := regexp.MustCompile(`^[EWI]\d{4} \d{2}:\d{2}:\d{2}\.\d{6} \d+ \S+:\d+\] `)

	got := Default{}.AppendPrefix(nil, time.Now(), core.WarningLevel, core.PID(), core.Here(0))
	line := string(got) + "caller text"
	if !re.MatchString(line) {
		t.Errorf("Expected default layout to match %s, got: %s", re, line)
	}
}

func TestISO8601_Pattern(t *testing.T) {
	re := regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}Z [EWI] \d+ \S+:\d+\] `)

	got := ISO8601{}.AppendPrefix(nil, time.Now(), core.InfoLevel, core.PID(), core.Here(0))
	line := string(got) + "caller text"
	if !re.MatchString(line) {
		t.Errorf("Expected ISO8601 layout to match %s, got: %s", re, line)
	}
}

func TestAppendPrefix_ForcesUTC(t *testing.T) {
	zone := time.FixedZone("UTC+2", 2*60*60)
	ts := time.Date(2024, 3, 1, 14, 0, 0, 0, zone) // 12:00:00 UTC

	got := string(ISO8601{}.AppendPrefix(nil, ts, core.InfoLevel, 1, testLoc))
	want := "2024-03-01T12:00:00Z I 1 server.cc:42] "
	if got != want {
		t.Errorf("AppendPrefix() = %q, want %q", got, want)
	}
}

func TestAppendPrefix_ClampsLevel(t *testing.T) {
	ts := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	got := string(Default{}.AppendPrefix(nil, ts, core.Level(9), 1, testLoc))
	if got[0] != 'I' {
		t.Errorf("Expected level above INFO to render 'I', got %c", got[0])
	}
}

func TestForFormat(t *testing.T) {
	if _, ok := ForFormat(core.DefaultFormat).(Default); !ok {
		t.Error("ForFormat(DefaultFormat) did not return a Default formatter")
	}
	if _, ok := ForFormat(core.ISO8601Format).(ISO8601); !ok {
		t.Error("ForFormat(ISO8601Format) did not return an ISO8601 formatter")
	}
}

func BenchmarkDefaultAppendPrefix(b *testing.B) {
	ts := time.Now()
	dst := make([]byte, 0, 64)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		dst = Default{}.AppendPrefix(dst[:0], ts, core.InfoLevel, 1234, testLoc)
	}
}

func BenchmarkISO8601AppendPrefix(b *testing.B) {
	ts := time.Now()
	dst := make([]byte, 0, 64)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		dst = ISO8601{}.AppendPrefix(dst[:0], ts, core.InfoLevel, 1234, testLoc)
	}
}
