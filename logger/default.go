package logger

import (
	"io"
	"sync/atomic"

	"github.com/philipp01105/uartlog/formatter"
)

var defaultFacade atomic.Pointer[Facade]

func init() {
	defaultFacade.Store(New())
}

// Default returns the process-wide facade
func Default() *Facade {
	return defaultFacade.Load()
}

// SetDefault replaces the process-wide facade. A nil facade is ignored.
func SetDefault(f *Facade) {
	if f == nil {
		return
	}
	defaultFacade.Store(f)
}

// Package-level functions operating on the default facade

// SetFormatter replaces the default facade's formatter and returns the previous one
func SetFormatter(fn formatter.Formatter) formatter.Formatter {
	return Default().SetFormatter(fn)
}

// SetTimestampSource replaces the default facade's timestamp source
func SetTimestampSource(fn TimestampSource) {
	Default().SetTimestampSource(fn)
}

// Timestamp returns the default facade's timestamp; it panics if no source is set
func Timestamp() uint32 {
	return Default().Timestamp()
}

// SetOutputSink replaces the default facade's sink
func SetOutputSink(fn Sink) {
	Default().SetOutputSink(fn)
}

// Write formats a message through the default facade
func Write(level Level, tag, format string, args ...any) {
	Default().Write(level, tag, format, args...)
}

// Writev formats a message with an explicit argument list through the default facade
func Writev(level Level, tag, format string, args []any) {
	Default().Writev(level, tag, format, args)
}

// RawWrite forwards p byte by byte to the default facade's sink
func RawWrite(p []byte) int {
	return Default().RawWrite(p)
}

// Output returns an io.Writer over the default facade's sink
func Output() io.Writer {
	return Default().Output()
}

// Log writes a leveled line through the default facade if the build keeps level
func Log(level Level, tag, format string, args ...any) {
	Default().logAt(LocalLevel, level, tag, format, args)
}

// E logs at error level using the default facade
func E(tag, format string, args ...any) {
	if LocalLevel >= ErrorLevel {
		Default().emit(ErrorLevel, tag, IncludeTimestamp, format, args)
	}
}

// W logs at warn level using the default facade
func W(tag, format string, args ...any) {
	if LocalLevel >= WarnLevel {
		Default().emit(WarnLevel, tag, IncludeTimestamp, format, args)
	}
}

// I logs at info level using the default facade
func I(tag, format string, args ...any) {
	if LocalLevel >= InfoLevel {
		Default().emit(InfoLevel, tag, IncludeTimestamp, format, args)
	}
}

// D logs at debug level using the default facade
func D(tag, format string, args ...any) {
	if LocalLevel >= DebugLevel {
		Default().emit(DebugLevel, tag, IncludeTimestamp, format, args)
	}
}

// V logs at verbose level using the default facade
func V(tag, format string, args ...any) {
	if LocalLevel >= VerboseLevel {
		Default().emit(VerboseLevel, tag, IncludeTimestamp, format, args)
	}
}
