package core

// OutputDriver is the abstract gate-drive interface that core code uses.
// Platform-specific implementations handle the actual control line of the
// switching device. Both calls are side-effect-only, idempotent and
// constant-time; they run in interrupt context and must never block.
type OutputDriver interface {
	// Assert drives the gate to its conducting level.
	Assert()

	// Deassert drives the gate to its blocking level.
	Deassert()
}

// Global singleton used by core code.
var outputDriver OutputDriver

// SetOutputDriver is called by target-specific code to register its driver.
func SetOutputDriver(d OutputDriver) {
	outputDriver = d
}

// MustOutput returns the configured driver or panics if missing.
func MustOutput() OutputDriver {
	if outputDriver == nil {
		panic("output driver not configured")
	}
	return outputDriver
}
