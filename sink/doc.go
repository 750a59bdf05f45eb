// Package sink provides ready-made output sinks for a facade.
//
// A sink receives the raw bytes RawWrite forwards, usually one byte per
// call. New adapts any io.Writer, such as a serial device opened as an
// *os.File or a network connection. Writers that are not known to be safe
// for concurrent use are guarded by a mutex. An optional Stats value
// counts delivered bytes and failed writes.
package sink
