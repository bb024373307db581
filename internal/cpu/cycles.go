package cpu

import "time"

// epoch anchors the counter to the monotonic clock reading taken at package load.
var epoch = time.Now()

// ReadCycleCounter reads a monotonic tick counter for micro-benchmarking plans.
// Ticks are nanoseconds since package initialisation; the value never goes
// backwards, even across wall-clock adjustments.
func ReadCycleCounter() int64 {
	return int64(time.Since(epoch))
}

// CyclesSince returns the number of ticks elapsed since the given start count.
func CyclesSince(start int64) int64 {
	return ReadCycleCounter() - start
}

// CyclesToNanoseconds converts a tick count to nanoseconds.
// The counter already runs at 1 GHz, so this is the identity; callers use it
// to keep reporting code independent of the counter's resolution.
func CyclesToNanoseconds(cycles int64) int64 {
	return cycles
}
