package core

// ANSI escape sequences used to colorize log lines
const (
	ColorRed     = "\x1b[31m"
	ColorGreen   = "\x1b[32m"
	ColorYellow  = "\x1b[33m"
	ColorBlue    = "\x1b[34m"
	ColorMagenta = "\x1b[35m"
	ColorCyan    = "\x1b[36m"
	ColorReset   = "\x1b[0m"
)

var levelColors = [...]string{
	ErrorLevel:   ColorRed,
	WarnLevel:    ColorYellow,
	InfoLevel:    ColorGreen,
	DebugLevel:   ColorMagenta,
	VerboseLevel: ColorCyan,
}

// Color returns the escape sequence for the level, or "" for NoneLevel and
// out of range values.
func (l Level) Color() string {
	if l < 0 || int(l) >= len(levelColors) {
		return ""
	}
	return levelColors[l]
}
