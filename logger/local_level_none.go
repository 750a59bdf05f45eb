//go:build uartlog_level_none

package logger

// LocalLevel is the build threshold selected by the uartlog_level_none tag.
const LocalLevel = NoneLevel
