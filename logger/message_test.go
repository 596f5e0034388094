package logger

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"testing"
)

func TestMessage_PrefixThenText(t *testing.T) {
	l, buf := newTestLogger()

	m := l.Message(InfoLevel)
	m.Print("first")
	m.Printf(" and %s", "second")
	m.Commit()

	line := buf.String()
	if !defaultPrefix.MatchString(line) {
		t.Fatalf("Expected default layout prefix, got: %q", line)
	}
	rest := defaultPrefix.ReplaceAllString(strings.TrimSuffix(line, "\n"), "")
	if rest != "first and second" {
		t.Errorf("Expected caller text appended without separators, got: %q", rest)
	}
}

func TestMessage_CommitIdempotent(t *testing.T) {
	l, buf := newTestLogger()

	m := l.Message(InfoLevel)
	m.Print("once")
	m.Commit()
	m.Commit()

	if got := strings.Count(buf.String(), "\n"); got != 1 {
		t.Errorf("Expected exactly one record, got %d: %q", got, buf.String())
	}
}

func TestMessage_DiscardsAfterCommit(t *testing.T) {
	l, buf := newTestLogger()

	m := l.Message(InfoLevel)
	m.Print("kept")
	m.Commit()
	m.Print("lost")
	m.Printf(" %s", "too")
	m.Write([]byte("gone"))
	m.Commit()

	out := buf.String()
	if !strings.Contains(out, "kept") {
		t.Errorf("Expected committed text in output, got: %q", out)
	}
	for _, s := range []string{"lost", "too", "gone"} {
		if strings.Contains(out, s) {
			t.Errorf("Expected %q discarded after Commit, got: %q", s, out)
		}
	}
}

func TestMessage_DeferredCommitRunsOnPanic(t *testing.T) {
	l, buf := newTestLogger()

	func() {
		defer func() {
			if recover() == nil {
				t.Error("Expected the panic to propagate to the recover")
			}
		}()
		m := l.Message(ErrorLevel)
		defer m.Commit()
		m.Print("about to fail")
		panic("boom")
	}()

	if !strings.Contains(buf.String(), "about to fail") {
		t.Errorf("Expected record committed during unwinding, got: %q", buf.String())
	}
}

func TestMessage_AsWriter(t *testing.T) {
	l, buf := newTestLogger()

	m := l.Message(InfoLevel)
	fmt.Fprintf(m, "copied %d bytes", 42)
	io.WriteString(m, " and a tail")
	m.Commit()

	if !strings.Contains(buf.String(), "copied 42 bytes and a tail") {
		t.Errorf("Expected io.Writer text in record, got: %q", buf.String())
	}
}

func TestMessage_Chaining(t *testing.T) {
	l, buf := newTestLogger()

	l.Message(InfoLevel).Print("a").Printf(" %d", 1).Commit()

	if !strings.Contains(buf.String(), "a 1") {
		t.Errorf("Expected chained appends in record, got: %q", buf.String())
	}
}

func TestMessage_AppliesNoGating(t *testing.T) {
	l, buf := newTestLogger()
	l.SetEnabled(InfoLevel, false)

	m := l.Message(InfoLevel)
	m.Print("still emitted")
	m.Commit()

	if !strings.Contains(buf.String(), "still emitted") {
		t.Errorf("Expected Message to bypass level gating, got: %q", buf.String())
	}
}

func TestMessage_ISO8601FullLine(t *testing.T) {
	l, buf := newTestLogger()
	l.SetFormat(ISO8601Format)

	m := l.Message(ErrorLevel)
	m.Print("failed to bind port 8001")
	m.Commit()

	re := regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}Z E \d+ message_test\.go:\d+\] failed to bind port 8001\n$`)
	if !re.MatchString(buf.String()) {
		t.Errorf("Expected full ISO8601 record, got: %q", buf.String())
	}
}

func TestMessage_LevelAboveInfoClamps(t *testing.T) {
	l, buf := newTestLogger()

	m := l.Message(Level(5))
	m.Print("clamped")
	m.Commit()

	if buf.String()[0] != 'I' {
		t.Errorf("Expected level above INFO to render 'I', got: %q", buf.String())
	}
}

func BenchmarkMessageCommit(b *testing.B) {
	l := New()
	l.stderr = io.Discard

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		m := l.Message(InfoLevel)
		m.Print("benchmark record")
		m.Commit()
	}
}
