package formatter

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/mowl-logging/mowl/core"
)

func testEntry(level core.Level, msg string) *core.Entry {
	return &core.Entry{
		Time:    time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC),
		Level:   level,
		Module:  "github.com/user/app",
		Message: msg,
	}
}

func TestTextFormatter_Plain(t *testing.T) {
	f := NewTextFormatter(Config{DisableColors: true})

	out, err := f.Format(testEntry(core.InfoLevel, "hello world"))
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := "[2026-01-15T12:00:00Z] [github.com/user/app] [INFO] hello world\n"
	if string(out) != want {
		t.Errorf("Format() = %q, want %q", out, want)
	}
}

func TestTextFormatter_Colors(t *testing.T) {
	f := NewTextFormatter(Config{})

	tests := []struct {
		level core.Level
		pen   string
	}{
		{core.ErrorLevel, "\x1b[31;1m"},
		{core.WarnLevel, "\x1b[33;1m"},
		{core.InfoLevel, "\x1b[32;1m"},
		{core.DebugLevel, "\x1b[36;1m"},
		{core.TraceLevel, "\x1b[37;1m"},
	}

	for _, tt := range tests {
		out, err := f.Format(testEntry(tt.level, "x"))
		if err != nil {
			t.Fatalf("Format() error = %v", err)
		}

		wantLabel := tt.pen + "[" + tt.level.String() + "]" + "\x1b[0m"
		if !strings.Contains(string(out), wantLabel) {
			t.Errorf("output for %v missing colored label %q: %q", tt.level, wantLabel, out)
		}
	}

	// Timestamp dim, module bright blue.
	out, _ := f.Format(testEntry(core.InfoLevel, "x"))
	if !strings.Contains(string(out), "\x1b[2m[2026-01-15T12:00:00Z]\x1b[0m") {
		t.Errorf("timestamp not dimmed: %q", out)
	}
	if !strings.Contains(string(out), "\x1b[34;1m[github.com/user/app]\x1b[0m") {
		t.Errorf("module not bright blue: %q", out)
	}
}

func TestTextFormatter_NoEscapesWhenDisabled(t *testing.T) {
	f := NewTextFormatter(Config{DisableColors: true})

	for level := core.TraceLevel; level <= core.ErrorLevel; level++ {
		out, _ := f.Format(testEntry(level, "plain"))
		if bytes.ContainsRune(out, '\x1b') {
			t.Errorf("escape bytes present for %v: %q", level, out)
		}
	}
}

func TestTextFormatter_MissingModule(t *testing.T) {
	f := NewTextFormatter(Config{DisableColors: true})

	entry := testEntry(core.WarnLevel, "lost")
	entry.Module = ""

	out, _ := f.Format(entry)
	if !strings.Contains(string(out), "[?] [WARN] lost") {
		t.Errorf("missing module should render ?: %q", out)
	}
}

func TestTextFormatter_UnknownLevel(t *testing.T) {
	f := NewTextFormatter(Config{DisableColors: true})

	out, _ := f.Format(testEntry(core.Level(99), "odd"))
	if !strings.Contains(string(out), "[UNKNOWN] odd") {
		t.Errorf("unknown level mishandled: %q", out)
	}
}

func TestTextFormatter_IncludeCaller(t *testing.T) {
	f := NewTextFormatter(Config{DisableColors: true, IncludeCaller: true})

	entry := testEntry(core.DebugLevel, "here")
	entry.Caller = core.CallerInfo{ShortFile: "main.go", Line: 42, Defined: true}

	out, _ := f.Format(entry)
	if !strings.Contains(string(out), "[main.go:42] here") {
		t.Errorf("caller segment missing: %q", out)
	}

	// Undefined caller degrades to no segment instead of panicking.
	entry.Caller = core.CallerInfo{}
	out, _ = f.Format(entry)
	if strings.Contains(string(out), ":0]") {
		t.Errorf("undefined caller rendered: %q", out)
	}
}

func TestTextFormatter_CustomTimestampFormat(t *testing.T) {
	f := NewTextFormatter(Config{DisableColors: true, TimestampFormat: "15:04:05"})

	out, _ := f.Format(testEntry(core.InfoLevel, "tick"))
	if !strings.HasPrefix(string(out), "[12:00:00] ") {
		t.Errorf("custom timestamp not applied: %q", out)
	}
}

func TestTextFormatter_FormatTo(t *testing.T) {
	f := NewTextFormatter(Config{DisableColors: true})

	var buf bytes.Buffer
	if err := f.FormatTo(testEntry(core.ErrorLevel, "direct"), &buf); err != nil {
		t.Fatalf("FormatTo() error = %v", err)
	}
	if !strings.Contains(buf.String(), "[ERROR] direct") {
		t.Errorf("FormatTo output: %q", buf.String())
	}
}

func BenchmarkTextFormatter_FormatTo(b *testing.B) {
	f := NewTextFormatter(Config{DisableColors: true})
	entry := testEntry(core.InfoLevel, "benchmark message")

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = f.FormatTo(entry, discard{})
	}
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
