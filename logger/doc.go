// Package logger is the public API of uartlog. Most users only need to
// import this package.
//
// A Facade holds three swappable references: the Formatter that turns a
// format and its arguments into text, the TimestampSource that supplies a
// millisecond counter, and the Sink that receives raw output bytes. The
// package keeps a process-wide default Facade, and the package-level
// functions SetFormatter, Write, RawWrite, E, W, etc. delegate to it, so
// firmware-style code can log without passing anything around:
//
//	logger.SetTimestampSource(core.Ticks)
//	logger.SetOutputSink(uartTx)
//	logger.SetFormatter(formatter.To(logger.Output()))
//	logger.E("APP", "bad crc %#x", crc)
//
// Timestamp and RawWrite panic when their source or sink was never set.
// Configure both before the first log call.
//
// Filtering happens at build time only. LocalLevel is a constant selected
// with a uartlog_level_* build tag, and the leveled helpers compare it
// against their own constant level, so call sites above the threshold
// are removed by the compiler. Write and Writev never filter.
// IncludeTimestamp, set with the uartlog_timestamp tag, adds the
// facade's timestamp to every leveled line:
//
//	go build -tags 'uartlog_level_warn uartlog_timestamp' ./...
//
// Each line has the form
//
//	<color><letter> (<ms>) <tag>: <message><reset>\r\n
//
// with the parenthesized timestamp present only when IncludeTimestamp
// is set.
package logger
