package formatter

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-isatty"
	"github.com/philipp01105/uartlog/internal/syncwriter"
)

// Formatter turns a printf-style format and its argument list into emitted
// text and returns the number of bytes produced. It is the vprintf of the
// facade: it must be safe to call concurrently and re-entrantly because the
// facade never locks around it.
type Formatter func(format string, args []any) int

// Stdout is the default Formatter. It prints to os.Stdout.
func Stdout(format string, args []any) int {
	n, _ := fmt.Fprintf(os.Stdout, format, args...)
	return n
}

// Discard formats nothing and reports zero bytes.
func Discard(string, []any) int { return 0 }

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}

// To returns a Formatter that formats into a pooled buffer and hands each
// line to w in a single Write call. On a write error it returns the number
// of bytes the writer accepted.
func To(w io.Writer) Formatter {
	w = syncwriter.Wrap(w)
	return func(format string, args []any) int {
		buf := getBuffer()
		fmt.Fprintf(buf, format, args...)
		n, _ := w.Write(buf.Bytes())
		putBuffer(buf)
		return n
	}
}

// Plain is like To but removes ANSI escape sequences before writing, for
// outputs that do not render colors. The returned count is the number of
// bytes written after stripping.
func Plain(w io.Writer) Formatter {
	w = syncwriter.Wrap(w)
	return func(format string, args []any) int {
		buf := getBuffer()
		fmt.Fprintf(buf, format, args...)
		n, _ := io.WriteString(w, ansi.Strip(buf.String()))
		putBuffer(buf)
		return n
	}
}

// Auto returns To(f) when f is a terminal and Plain(f) otherwise.
func Auto(f *os.File) Formatter {
	if IsTerminal(f) {
		return To(f)
	}
	return Plain(f)
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
