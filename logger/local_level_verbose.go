//go:build uartlog_level_verbose

package logger

// LocalLevel is the build threshold selected by the uartlog_level_verbose tag.
const LocalLevel = VerboseLevel
