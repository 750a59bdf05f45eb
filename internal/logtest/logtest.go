// Package logtest builds facades and expected lines for tests that go
// through the leveled path, so they hold under every uartlog build tag.
package logtest

import (
	"bytes"
	"fmt"
	"regexp"

	"github.com/charmbracelet/x/ansi"

	"github.com/philipp01105/uartlog/core"
	"github.com/philipp01105/uartlog/formatter"
	"github.com/philipp01105/uartlog/logger"
)

// Ticks is the timestamp every facade from NewFacade reports.
const Ticks uint32 = 42

// NewFacade returns a facade that renders into buf and reads Ticks as its
// timestamp.
func NewFacade(buf *bytes.Buffer) *logger.Facade {
	f := logger.New()
	f.SetFormatter(func(format string, args []any) int {
		n, _ := fmt.Fprintf(buf, format, args...)
		return n
	})
	f.SetTimestampSource(func() uint32 { return Ticks })
	return f
}

// Line renders the colored line this build writes for level, tag and msg.
func Line(level core.Level, tag, msg string) string {
	args := []any{tag, msg}
	if logger.IncludeTimestamp {
		args = append([]any{Ticks}, args...)
	}
	return fmt.Sprintf(formatter.Template(level.Line(), "%s", logger.IncludeTimestamp), args...)
}

// Kept is Line when the build keeps level and "" when LocalLevel drops it.
func Kept(level core.Level, tag, msg string) string {
	if logger.LocalLevel < level {
		return ""
	}
	return Line(level, tag, msg)
}

// PlainKept is Kept without colors and without the timestamp field, for
// comparing against output passed through StripTimestamp.
func PlainKept(level core.Level, tag, msg string) string {
	if logger.LocalLevel < level {
		return ""
	}
	return ansi.Strip(fmt.Sprintf(formatter.Template(level.Line(), "%s", false), tag, msg))
}

var timestampField = regexp.MustCompile(`(?m)^((?:\x1b\[[0-9;]*m)?[EWIDV]) \(\d+\)`)

// StripTimestamp removes the " (<ms>)" field from every line in s.
func StripTimestamp(s string) string {
	return timestampField.ReplaceAllString(s, "$1")
}
