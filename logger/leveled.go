package logger

import "github.com/philipp01105/uartlog/formatter"

// Emit decorates format with the line template for level and writes it.
// The tag, and the timestamp when IncludeTimestamp is set, are prepended
// to args. Levels without a template of their own are written as info.
func (f *Facade) Emit(level Level, tag, format string, args ...any) {
	f.emit(level, tag, IncludeTimestamp, format, args)
}

// Log is Emit for call sites the build keeps: it writes only when
// LocalLevel >= level.
func (f *Facade) Log(level Level, tag, format string, args ...any) {
	f.logAt(LocalLevel, level, tag, format, args)
}

func (f *Facade) logAt(threshold, level Level, tag, format string, args []any) {
	if threshold >= level {
		f.emit(level, tag, IncludeTimestamp, format, args)
	}
}

func (f *Facade) emit(level Level, tag string, withTimestamp bool, format string, args []any) {
	line := level.Line()
	var full []any
	if withTimestamp {
		full = make([]any, 0, len(args)+2)
		full = append(full, f.Timestamp(), tag)
	} else {
		full = make([]any, 0, len(args)+1)
		full = append(full, tag)
	}
	full = append(full, args...)
	f.Writev(line, tag, formatter.Template(line, format, withTimestamp), full)
}

// The comparisons below are between constants, so call sites above the
// build threshold compile to nothing.

// E logs at error level
func (f *Facade) E(tag, format string, args ...any) {
	if LocalLevel >= ErrorLevel {
		f.emit(ErrorLevel, tag, IncludeTimestamp, format, args)
	}
}

// W logs at warn level
func (f *Facade) W(tag, format string, args ...any) {
	if LocalLevel >= WarnLevel {
		f.emit(WarnLevel, tag, IncludeTimestamp, format, args)
	}
}

// I logs at info level
func (f *Facade) I(tag, format string, args ...any) {
	if LocalLevel >= InfoLevel {
		f.emit(InfoLevel, tag, IncludeTimestamp, format, args)
	}
}

// D logs at debug level
func (f *Facade) D(tag, format string, args ...any) {
	if LocalLevel >= DebugLevel {
		f.emit(DebugLevel, tag, IncludeTimestamp, format, args)
	}
}

// V logs at verbose level
func (f *Facade) V(tag, format string, args ...any) {
	if LocalLevel >= VerboseLevel {
		f.emit(VerboseLevel, tag, IncludeTimestamp, format, args)
	}
}
