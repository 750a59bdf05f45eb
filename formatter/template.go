package formatter

import (
	"strings"

	"github.com/philipp01105/uartlog/core"
)

// Template decorates a caller format string into a complete log line
// format. The result expects its arguments in this order: the timestamp
// (only when withTimestamp is set), the tag, then the caller's arguments.
//
//	<color><letter> (%d) %s: <format><reset>\r\n
//
// Levels other than error, warn, debug and verbose are decorated as info.
func Template(level core.Level, format string, withTimestamp bool) string {
	level = level.Line()
	color := level.Color()

	var b strings.Builder
	b.Grow(len(color) + len(format) + len(core.ColorReset) + 16)
	b.WriteString(color)
	b.WriteByte(level.Letter())
	if withTimestamp {
		b.WriteString(" (%d)")
	}
	b.WriteString(" %s: ")
	b.WriteString(format)
	b.WriteString(core.ColorReset)
	b.WriteString("\r\n")
	return b.String()
}
