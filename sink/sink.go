package sink

import (
	"io"
	"os"
	"sync/atomic"

	"github.com/philipp01105/uartlog/core"
	"github.com/philipp01105/uartlog/internal/syncwriter"
)

// Stats counts the bytes a sink delivered and the writes that failed.
// The counters are updated atomically and can be read at any time.
type Stats struct {
	written atomic.Uint64
	failed  atomic.Uint64
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	BytesWritten uint64
	Failures     uint64
}

// Snapshot returns the current counter values
func (s *Stats) Snapshot() Snapshot {
	return Snapshot{
		BytesWritten: s.written.Load(),
		Failures:     s.failed.Load(),
	}
}

// Config holds configuration for a writer-backed sink
type Config struct {
	// Writer receives the bytes (default: os.Stdout)
	Writer io.Writer
	// Stats, if set, is updated on every write
	Stats *Stats
	// ConcurrentWriter indicates the Writer supports concurrent Write calls.
	// Automatically detected for io.Discard and *os.File.
	ConcurrentWriter bool
}

// New creates a sink that writes to cfg.Writer. It returns the number of
// bytes written, or -1 if the writer failed.
func New(cfg Config) core.Sink {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	w := cfg.Writer
	if !cfg.ConcurrentWriter {
		w = syncwriter.Wrap(w)
	}
	stats := cfg.Stats

	return func(data []byte) int {
		n, err := w.Write(data)
		if stats != nil {
			stats.written.Add(uint64(n))
			if err != nil {
				stats.failed.Add(1)
			}
		}
		if err != nil {
			return -1
		}
		return n
	}
}

// Writer is shorthand for New(Config{Writer: w}).
func Writer(w io.Writer) core.Sink {
	return New(Config{Writer: w})
}

// Discard accepts and drops every byte.
func Discard(data []byte) int {
	return len(data)
}
