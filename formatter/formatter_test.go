package formatter

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/philipp01105/uartlog/core"
)

func TestTemplate_NoTimestamp(t *testing.T) {
	got := Template(core.ErrorLevel, "disk %d%% full", false)
	want := "\x1b[31mE %s: disk %d%% full\x1b[0m\r\n"
	if got != want {
		t.Errorf("Template() = %q, want %q", got, want)
	}
}

func TestTemplate_WithTimestamp(t *testing.T) {
	got := Template(core.WarnLevel, "low battery", true)
	want := "\x1b[33mW (%d) %s: low battery\x1b[0m\r\n"
	if got != want {
		t.Errorf("Template() = %q, want %q", got, want)
	}
}

func TestTemplate_Levels(t *testing.T) {
	tests := []struct {
		level  core.Level
		prefix string
	}{
		{core.ErrorLevel, core.ColorRed + "E "},
		{core.WarnLevel, core.ColorYellow + "W "},
		{core.InfoLevel, core.ColorGreen + "I "},
		{core.DebugLevel, core.ColorMagenta + "D "},
		{core.VerboseLevel, core.ColorCyan + "V "},
		{core.NoneLevel, core.ColorGreen + "I "},
		{core.MaxLevel, core.ColorGreen + "I "},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			got := Template(tt.level, "x", false)
			if !strings.HasPrefix(got, tt.prefix) {
				t.Errorf("Template(%v) = %q, want prefix %q", tt.level, got, tt.prefix)
			}
			if !strings.HasSuffix(got, "x"+core.ColorReset+"\r\n") {
				t.Errorf("Template(%v) = %q, missing reset and CRLF", tt.level, got)
			}
		})
	}
}

func TestTemplate_RendersMessage(t *testing.T) {
	line := fmt.Sprintf(Template(core.ErrorLevel, "code=%d", false), "APP", 7)
	want := "\x1b[31mE APP: code=7\x1b[0m\r\n"
	if line != want {
		t.Errorf("rendered line = %q, want %q", line, want)
	}
}

func TestTo(t *testing.T) {
	var buf bytes.Buffer
	f := To(&buf)

	n := f("%s=%d\n", []any{"answer", 42})
	if got := buf.String(); got != "answer=42\n" {
		t.Errorf("output = %q, want %q", got, "answer=42\n")
	}
	if n != buf.Len() {
		t.Errorf("To() returned %d, wrote %d", n, buf.Len())
	}
}

func TestTo_ConcurrentLinesDoNotInterleave(t *testing.T) {
	var buf bytes.Buffer
	f := To(&buf)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				f("worker-%d line-%d\n", []any{id, j})
			}
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 400 {
		t.Fatalf("got %d lines, want 400", len(lines))
	}
	for _, l := range lines {
		if !strings.HasPrefix(l, "worker-") || strings.Count(l, "line-") != 1 {
			t.Errorf("interleaved line: %q", l)
		}
	}
}

func TestPlain_StripsColors(t *testing.T) {
	var buf bytes.Buffer
	f := Plain(&buf)

	f(Template(core.InfoLevel, "ready", false), []any{"NET"})
	if got, want := buf.String(), "I NET: ready\r\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestDiscard(t *testing.T) {
	if n := Discard("%d", []any{1}); n != 0 {
		t.Errorf("Discard() = %d, want 0", n)
	}
}

func BenchmarkTo(b *testing.B) {
	f := To(io.Discard)
	format := Template(core.InfoLevel, "temp=%d", false)
	args := []any{"SENSOR", 21}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		f(format, args)
	}
}
