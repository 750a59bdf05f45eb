package core

import (
	"testing"
	"time"
)

func TestTicks(t *testing.T) {
	StartTickClock()
	time.Sleep(20 * time.Millisecond)

	got := Ticks()
	if got == 0 {
		t.Fatal("Ticks() = 0 after the clock has been running for 20ms")
	}

	// The published count can never run ahead of real elapsed time
	elapsed := uint32(time.Since(tickStart).Milliseconds())
	if got > elapsed {
		t.Errorf("Ticks() = %d, ahead of elapsed %d", got, elapsed)
	}
}

func TestStartTickClockIdempotent(t *testing.T) {
	StartTickClock()
	start := tickStart
	StartTickClock()
	StartTickClock()

	if !tickStart.Equal(start) {
		t.Error("StartTickClock() reset the start time on a repeated call")
	}
}

func TestTicksIsTimestampSource(t *testing.T) {
	var src TimestampSource = Ticks
	if src == nil {
		t.Fatal("Ticks does not satisfy TimestampSource")
	}
}
