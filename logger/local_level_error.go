//go:build uartlog_level_error

package logger

// LocalLevel is the build threshold selected by the uartlog_level_error tag.
const LocalLevel = ErrorLevel
