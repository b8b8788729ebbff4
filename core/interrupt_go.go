//go:build !tinygo

package core

// State mirrors the interrupt state token used on hardware builds.
type State uintptr

// interruptDepth tracks mask nesting on regular Go, where there are no
// real interrupts. Tests read it to verify that code required to run with
// interrupts masked actually does.
var interruptDepth int

func disableInterrupts() State {
	interruptDepth++
	return State(interruptDepth)
}

func restoreInterrupts(State) {
	interruptDepth--
}
