//go:build rp2040 || rp2350

package main

import (
	"runtime/volatile"
	"unsafe"

	"dimmer/core"
)

// TIMER peripheral raw counter registers. The timer is a 64-bit counter
// clocked from the 1 MHz tick generator, so it counts microseconds.
const (
	timerBase     = 0x40054000
	timerTIMERAWH = timerBase + 0x08
	timerTIMERAWL = timerBase + 0x0C
)

var (
	timerRawH = (*volatile.Register32)(unsafe.Pointer(uintptr(timerTIMERAWH)))
	timerRawL = (*volatile.Register32)(unsafe.Pointer(uintptr(timerTIMERAWL)))
)

// hardwareClock exposes the raw timer as the uptime source for status
// reporting.
type hardwareClock struct{}

var _ core.ClockDriver = hardwareClock{}

// UptimeMicros reads the full 64-bit counter. The high word is read
// before and after the low word so a low-word rollover during the read is
// detected and the read retried.
func (hardwareClock) UptimeMicros() uint64 {
	for {
		high := timerRawH.Get()
		low := timerRawL.Get()
		if timerRawH.Get() == high {
			return uint64(high)<<32 | uint64(low)
		}
	}
}
