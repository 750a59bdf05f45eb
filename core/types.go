package core

// Sink accepts raw output bytes for final delivery, for example a UART
// transmit routine. The returned status is implementation defined.
type Sink func(data []byte) int

// TimestampSource returns a millisecond counter. Wrap-around at 2^32 is
// the caller's concern.
type TimestampSource func() uint32
