package core

import (
	"sync"
	"sync/atomic"
	"time"
)

var (
	tickClockOnce sync.Once
	tickStart     time.Time
	ticks         atomic.Uint32
)

// StartTickClock starts the background goroutine that publishes the
// milliseconds elapsed since the first call, once per millisecond. It is
// safe to call multiple times; the goroutine is started exactly once and
// runs for the lifetime of the process.
func StartTickClock() {
	tickClockOnce.Do(func() {
		tickStart = time.Now()
		go func() {
			ticker := time.NewTicker(time.Millisecond)
			for range ticker.C {
				ticks.Store(uint32(time.Since(tickStart).Milliseconds()))
			}
		}()
	})
}

// Ticks returns the most recently published millisecond count. It has the
// TimestampSource signature and reads 0 until StartTickClock has been
// called. The counter wraps after about 49.7 days.
func Ticks() uint32 {
	return ticks.Load()
}
