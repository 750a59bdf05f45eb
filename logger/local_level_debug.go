//go:build uartlog_level_debug

package logger

// LocalLevel is the build threshold selected by the uartlog_level_debug tag.
const LocalLevel = DebugLevel
