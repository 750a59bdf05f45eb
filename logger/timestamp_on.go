//go:build uartlog_timestamp

package logger

// IncludeTimestamp is set by the uartlog_timestamp build tag.
const IncludeTimestamp = true
