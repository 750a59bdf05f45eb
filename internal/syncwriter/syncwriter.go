// Package syncwriter serializes Write calls on writers that are not safe
// for concurrent use.
package syncwriter

import (
	"io"
	"os"
	"sync"
)

// lockedWriter wraps an io.Writer with a mutex, acquiring the lock only
// for Write calls, so concurrent callers never interleave inside one line.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (lw *lockedWriter) Write(p []byte) (n int, err error) {
	lw.mu.Lock()
	n, err = lw.w.Write(p)
	lw.mu.Unlock()
	return
}

// IsConcurrentSafe returns true if the writer is known to be safe for
// concurrent Write calls, allowing callers to skip write-level locking.
func IsConcurrentSafe(w io.Writer) bool {
	if w == io.Discard {
		return true
	}
	_, ok := w.(*os.File)
	return ok
}

// Wrap returns w unchanged if it is concurrent safe and a mutex-guarded
// writer otherwise.
func Wrap(w io.Writer) io.Writer {
	if IsConcurrentSafe(w) {
		return w
	}
	return &lockedWriter{w: w}
}
