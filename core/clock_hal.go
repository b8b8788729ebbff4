package core

// ClockDriver exposes the platform's free-running microsecond timer. It
// feeds status reporting only; phase timing is driven by the tick
// interrupt, never by this clock.
type ClockDriver interface {
	// UptimeMicros returns microseconds since power-up.
	UptimeMicros() uint64
}

var clockDriver ClockDriver

// SetClockDriver is called by target-specific code to register its clock.
func SetClockDriver(c ClockDriver) {
	clockDriver = c
}

// MustClock returns the configured clock or panics if missing.
func MustClock() ClockDriver {
	if clockDriver == nil {
		panic("clock driver not configured")
	}
	return clockDriver
}
