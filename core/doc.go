// Package core defines the shared types used across uartlog.
//
// It provides the Level type and its fixed ordering (none, error, warn,
// info, debug, verbose, max), the one-letter and ANSI color decoration of
// each level, and the two function types a facade is configured with:
// Sink, which receives raw output bytes, and TimestampSource, which
// returns a millisecond counter.
//
// The tick clock is a ready-made TimestampSource for hosts without a
// hardware tick counter. StartTickClock publishes the elapsed
// milliseconds into an atomic once per millisecond, so Ticks is a single
// atomic load on the logging path.
package core
