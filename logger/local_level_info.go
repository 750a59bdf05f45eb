//go:build uartlog_level_info

package logger

// LocalLevel is the build threshold selected by the uartlog_level_info tag.
const LocalLevel = InfoLevel
