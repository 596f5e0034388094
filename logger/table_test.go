package logger

import (
	"regexp"
	"strings"
	"testing"
)

func TestVerboseTable_Gated(t *testing.T) {
	l, buf := newTestLogger()

	l.VerboseTable(1, "models", []string{"Name", "Status"}, [][]string{{"resnet", "READY"}})
	if buf.Len() > 0 {
		t.Errorf("Expected table suppressed at threshold 0, got: %q", buf.String())
	}
}

func TestVerboseTable_SingleRecord(t *testing.T) {
	l, buf := newTestLogger()
	l.SetVerboseLevel(1)

	l.VerboseTable(1, "models", []string{"Name", "Status"}, [][]string{
		{"resnet", "READY"},
		{"bert", "LOADING"},
	})

	out := buf.String()
	for _, want := range []string{"models", "resnet", "READY", "bert", "LOADING"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in table record, got: %q", want, out)
		}
	}

	// The whole table is one record: exactly one prefixed line.
	perLine := regexp.MustCompile(`(?m)^[EWI]\d{4} \d{2}:\d{2}:\d{2}\.\d{6} \d+ \S+:\d+\] `)
	if got := len(perLine.FindAllString(out, -1)); got != 1 {
		t.Errorf("Expected a single prefixed record, got %d prefixes: %q", got, out)
	}
	if got := strings.Count(out, "\n"); got < 4 {
		t.Errorf("Expected a multi-line record, got %d lines: %q", got, out)
	}
}
