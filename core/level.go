package core

import "strings"

// Level represents the severity level of a log message. Lower values are
// more severe; a build threshold of level L keeps every call site whose
// level is <= L.
type Level int8

const (
	// NoneLevel means no log output
	NoneLevel Level = iota
	// ErrorLevel for critical errors the program cannot recover from on its own
	ErrorLevel
	// WarnLevel for error conditions from which recovery measures have been taken
	WarnLevel
	// InfoLevel for messages describing the normal flow of events
	InfoLevel
	// DebugLevel for extra information not needed in normal use (values, sizes, etc)
	DebugLevel
	// VerboseLevel for bulky or frequent debugging output that may flood the sink
	VerboseLevel
	// MaxLevel is the upper bound sentinel; as a threshold it keeps everything
	MaxLevel
)

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case NoneLevel:
		return "NONE"
	case ErrorLevel:
		return "ERROR"
	case WarnLevel:
		return "WARN"
	case InfoLevel:
		return "INFO"
	case DebugLevel:
		return "DEBUG"
	case VerboseLevel:
		return "VERBOSE"
	case MaxLevel:
		return "MAX"
	default:
		return "UNKNOWN"
	}
}

// pre-computed level letters, indexed by level
var levelLetters = [...]byte{
	ErrorLevel:   'E',
	WarnLevel:    'W',
	InfoLevel:    'I',
	DebugLevel:   'D',
	VerboseLevel: 'V',
}

// Letter returns the single letter printed at the start of a log line.
// Levels without a letter of their own are printed as info.
func (l Level) Letter() byte {
	if l > NoneLevel && int(l) < len(levelLetters) {
		return levelLetters[l]
	}
	return 'I'
}

// Line returns the level a log line is actually written with. Error, Warn,
// Debug and Verbose map to themselves, everything else is written as Info.
func (l Level) Line() Level {
	switch l {
	case ErrorLevel, WarnLevel, DebugLevel, VerboseLevel:
		return l
	default:
		return InfoLevel
	}
}

// ParseLevel converts a string to a Level
func ParseLevel(s string) Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "NONE", "OFF":
		return NoneLevel
	case "E", "ERROR":
		return ErrorLevel
	case "W", "WARN", "WARNING":
		return WarnLevel
	case "I", "INFO":
		return InfoLevel
	case "D", "DEBUG":
		return DebugLevel
	case "V", "VERBOSE":
		return VerboseLevel
	case "MAX", "ALL":
		return MaxLevel
	default:
		return InfoLevel
	}
}
