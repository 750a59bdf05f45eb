package logger

import (
	"io"
	"sync/atomic"

	"github.com/philipp01105/uartlog/core"
	"github.com/philipp01105/uartlog/formatter"
)

// Level, Sink and TimestampSource re-exported for convenience
type (
	Level           = core.Level
	Sink            = core.Sink
	TimestampSource = core.TimestampSource
)

const (
	NoneLevel    = core.NoneLevel
	ErrorLevel   = core.ErrorLevel
	WarnLevel    = core.WarnLevel
	InfoLevel    = core.InfoLevel
	DebugLevel   = core.DebugLevel
	VerboseLevel = core.VerboseLevel
	MaxLevel     = core.MaxLevel
)

// Facade holds the three swappable references log output flows through:
// the formatter, the timestamp source and the raw byte sink.
//
// Every reference is stored atomically, so setters may race with loggers
// without tearing. The facade never locks around a formatter or sink call;
// both must be safe to invoke concurrently. The zero value is ready to use
// and formats to os.Stdout.
type Facade struct {
	formatter atomic.Pointer[formatter.Formatter]
	timestamp atomic.Pointer[TimestampSource]
	sink      atomic.Pointer[Sink]
}

// New creates a facade with the default formatter and no timestamp source
// or sink.
func New() *Facade {
	return &Facade{}
}

// SetFormatter replaces the active formatter and returns the previous one
// so it can be restored later. A nil formatter selects formatter.Stdout.
func (f *Facade) SetFormatter(fn formatter.Formatter) formatter.Formatter {
	var p *formatter.Formatter
	if fn != nil {
		p = &fn
	}
	return deref(f.formatter.Swap(p))
}

// Formatter returns the active formatter.
func (f *Facade) Formatter() formatter.Formatter {
	return deref(f.formatter.Load())
}

func deref(p *formatter.Formatter) formatter.Formatter {
	if p == nil {
		return formatter.Stdout
	}
	return *p
}

// SetTimestampSource replaces the timestamp provider.
func (f *Facade) SetTimestampSource(fn TimestampSource) {
	f.timestamp.Store(&fn)
}

// Timestamp returns the current value of the timestamp source, in
// milliseconds. It panics if no source has been configured.
func (f *Facade) Timestamp() uint32 {
	p := f.timestamp.Load()
	if p == nil || *p == nil {
		panic("uartlog: timestamp source not configured")
	}
	return (*p)()
}

// SetOutputSink replaces the raw byte sink used by RawWrite.
func (f *Facade) SetOutputSink(fn Sink) {
	f.sink.Store(&fn)
}

// Write formats a message through the active formatter. level and tag are
// accepted for integration purposes only; no filtering happens here.
func (f *Facade) Write(level Level, tag, format string, args ...any) {
	f.Writev(level, tag, format, args)
}

// Writev is Write with an explicit argument list. It lets other logging
// frameworks use the facade as their output without re-packing arguments.
func (f *Facade) Writev(_ Level, _ string, format string, args []any) {
	deref(f.formatter.Load())(format, args)
}

// RawWrite forwards p to the sink one byte at a time, in order, and
// returns len(p) whatever the sink reports. It panics if no sink has been
// configured.
func (f *Facade) RawWrite(p []byte) int {
	s := f.sink.Load()
	if s == nil || *s == nil {
		panic("uartlog: output sink not configured")
	}
	sink := *s
	for i := range p {
		sink(p[i : i+1])
	}
	return len(p)
}

// Output returns an io.Writer over RawWrite. Using it as the formatter
// destination routes every formatted byte through the sink:
//
//	f.SetFormatter(formatter.To(f.Output()))
func (f *Facade) Output() io.Writer {
	return rawWriter{f}
}

type rawWriter struct{ f *Facade }

func (w rawWriter) Write(p []byte) (int, error) {
	return w.f.RawWrite(p), nil
}
