// Package formatter defines the printf-style functions a facade emits text
// with, and the line template every leveled log call is decorated with.
//
// A Formatter receives the already decorated format and the argument
// slice and returns the number of bytes produced. Stdout, the default,
// prints to os.Stdout. To writes each formatted line to any io.Writer in
// one Write call using a pooled bytes.Buffer; writers that are not known
// to be safe for concurrent use are guarded by a mutex so lines never
// interleave. Plain does the same with ANSI color sequences stripped, and
// Auto picks between the two depending on whether the file is a
// terminal.
//
// Buffers larger than 64 KiB are not returned to the pool to prevent a
// single large log line from permanently inflating memory usage.
package formatter
