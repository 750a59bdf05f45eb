//go:build uartlog_level_warn

package logger

// LocalLevel is the build threshold selected by the uartlog_level_warn tag.
const LocalLevel = WarnLevel
