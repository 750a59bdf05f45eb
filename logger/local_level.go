//go:build !uartlog_level_none && !uartlog_level_error && !uartlog_level_warn && !uartlog_level_info && !uartlog_level_debug && !uartlog_level_verbose

package logger

// LocalLevel is the highest level whose call sites the build keeps. It is
// chosen with one of the uartlog_level_{none,error,warn,info,debug,verbose}
// build tags and defaults to MaxLevel, which keeps every call site.
const LocalLevel = MaxLevel
