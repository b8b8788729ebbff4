//go:build tinygo

package core

import "runtime/interrupt"

// disableInterrupts masks interrupts and returns the previous state.
// Sections bracketed by these calls must stay bounded: a handful of loads
// or stores, never I/O.
func disableInterrupts() interrupt.State {
	return interrupt.Disable()
}

// restoreInterrupts restores the interrupt state.
func restoreInterrupts(state interrupt.State) {
	interrupt.Restore(state)
}
