//go:build !uartlog_timestamp

package logger

// IncludeTimestamp reports whether leveled log lines carry the facade
// timestamp. Build with the uartlog_timestamp tag to enable it.
const IncludeTimestamp = false
