// Phase-controlled AC power delivery.
// Implements leading-edge TRIAC dimming: every mains zero cross forces the
// gate off and re-arms the delay clock; the 10 kHz phase timer fires the
// gate once the configured delay has elapsed, leaving the load conducting
// for the remainder of the half-cycle.
package core

import "sync/atomic"

const (
	// TickHz is the phase timer cadence. One tick is 100us.
	TickHz = 10000

	// TickPeriodUS is the duration of one tick in microseconds.
	TickPeriodUS = 1000000 / TickHz

	// MaxDelayTicks bounds the phase delay to 9.5ms, just under a 10ms
	// half-cycle at 50Hz mains. Delays at or past the half-cycle length
	// would skip firings and flicker the load.
	MaxDelayTicks = 95

	// DefaultDelayTicks is applied at startup when no persisted value
	// exists.
	DefaultDelayTicks = 50
)

// Dimmer holds the process-wide phase-control state. There is exactly one
// writer per transition direction: the zero-cross handler sets armed, the
// tick handler clears it; elapsed is owned by the tick handler apart from
// the reset at each arm. All fields are accessed atomically so neither
// interrupt context can observe a torn value.
type Dimmer struct {
	armed   uint32 // 1 between a zero cross and the subsequent fire
	elapsed uint32 // ticks counted since the last arm
	delay   uint32 // configured phase delay, 0..MaxDelayTicks
	ticks   uint32 // free-running tick counter, wraps at 2^32
}

// NewDimmer returns a dimmer initialized with the given delay. The delay
// is clamped like any other update.
func NewDimmer(delay uint32) *Dimmer {
	d := &Dimmer{}
	d.SetDelay(delay)
	return d
}

// ZeroCross is the zero-cross ISR body. The sense signal edges twice per
// mains cycle (once per half-cycle) and each edge is handled identically:
// force the gate off so the load can never conduct across a crossing, then
// re-arm with a fresh count. It must complete in bounded, minimal time as
// it preempts both the phase timer and ordinary program flow.
func (d *Dimmer) ZeroCross() {
	// The deassert and the re-arm are one unit with respect to the phase
	// timer: a tick landing between them would see the previous arm with
	// stale elapsed and could re-fire the gate right after the crossing.
	// The masked section is one pin write and two stores.
	state := disableInterrupts()
	MustOutput().Deassert()
	atomic.StoreUint32(&d.elapsed, 0)
	atomic.StoreUint32(&d.armed, 1)
	restoreInterrupts(state)
}

// Tick is the phase timer ISR body, invoked at TickHz by a hardware
// periodic timer. While armed it counts elapsed ticks and fires the gate
// once the configured delay has been reached; otherwise it is an idle
// tick. It never blocks or allocates.
func (d *Dimmer) Tick() {
	atomic.AddUint32(&d.ticks, 1)
	if atomic.LoadUint32(&d.armed) == 0 {
		return
	}
	if atomic.LoadUint32(&d.elapsed) < atomic.LoadUint32(&d.delay) {
		atomic.AddUint32(&d.elapsed, 1)
		return
	}
	// ">=" rather than "==": if a tick is ever skipped the fire happens
	// on the next opportunity instead of being missed for the whole
	// half-cycle. The fire sequence is masked so a zero cross cannot land
	// between the gate assert and the state stores and have its fresh arm
	// clobbered; the conditions are re-checked inside in case an edge
	// arrived just before the mask took effect.
	state := disableInterrupts()
	if atomic.LoadUint32(&d.armed) != 0 &&
		atomic.LoadUint32(&d.elapsed) >= atomic.LoadUint32(&d.delay) {
		MustOutput().Assert()
		atomic.StoreUint32(&d.armed, 0)
		atomic.StoreUint32(&d.elapsed, 0)
	}
	restoreInterrupts(state)
}

// Armed reports whether a zero cross has been seen and the fire is still
// pending.
func (d *Dimmer) Armed() bool {
	return atomic.LoadUint32(&d.armed) != 0
}

// ElapsedTicks returns the ticks counted since the last arm.
func (d *Dimmer) ElapsedTicks() uint32 {
	return atomic.LoadUint32(&d.elapsed)
}

// TickCount returns the free-running tick counter. One tick is 100us, so
// this doubles as a coarse uptime clock.
func (d *Dimmer) TickCount() uint32 {
	return atomic.LoadUint32(&d.ticks)
}
