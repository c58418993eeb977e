package log

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevelFromString(t *testing.T) {
	cases := map[string]Level{
		"debug":   LevelDebug,
		"INFO":    LevelInfo,
		" error ": LevelError,
		"none":    LevelNone,
		"bogus":   LevelDebug,
	}
	for in, want := range cases {
		if got := LevelFromString(in); got != want {
			t.Fatalf("LevelFromString(%q)=%v want %v", in, got, want)
		}
	}
}

func TestLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelInfo)
	l.Debugf("[TEST] hidden %d", 1)
	l.Infof("[TEST] shown %d", 2)
	l.Warnf("[TEST] warned")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug message written at info level: %q", out)
	}
	if !strings.Contains(out, "[TEST] shown 2") {
		t.Fatalf("info message missing: %q", out)
	}
	if !strings.Contains(out, "WARN") {
		t.Fatalf("warning missing at info level: %q", out)
	}
}

func TestLoggerSetLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelDebug)
	l.SetLevel(LevelError)
	if l.Level() != LevelError {
		t.Fatalf("level=%v want ERROR", l.Level())
	}
	l.Warnf("quiet")
	l.Errorf("loud")
	out := buf.String()
	if strings.Contains(out, "quiet") {
		t.Fatalf("warning written at error level: %q", out)
	}
	if !strings.Contains(out, "loud") {
		t.Fatalf("error missing: %q", out)
	}

	buf.Reset()
	l.SetLevel(LevelNone)
	l.Errorf("silent")
	if buf.Len() != 0 {
		t.Fatalf("expected no output at NONE, got %q", buf.String())
	}
}
