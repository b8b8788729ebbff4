package core

import "sync/atomic"

// SetDelay clamps v to [0, MaxDelayTicks] and stores it, returning the
// value actually applied. Callable from normal (non-interrupt) program
// flow only; the tick handler reads the value with a single atomic load,
// so no critical section is needed around the store.
func (d *Dimmer) SetDelay(v uint32) uint8 {
	if v > MaxDelayTicks {
		v = MaxDelayTicks
	}
	atomic.StoreUint32(&d.delay, v)
	return uint8(v)
}

// Delay returns the current phase delay in ticks.
func (d *Dimmer) Delay() uint8 {
	return uint8(atomic.LoadUint32(&d.delay))
}

// RestoreDelay initializes the delay from the persisted value. A missing,
// unreadable or out-of-range record falls back to DefaultDelayTicks.
// Stored values are clamped before every save, so an out-of-range read
// means the record is corrupt, not merely stale.
func RestoreDelay(d *Dimmer) uint8 {
	v, present, err := MustStore().Load()
	if err != nil || !present || v > MaxDelayTicks {
		return d.SetDelay(DefaultDelayTicks)
	}
	return d.SetDelay(uint32(v))
}

// Snapshot is a coherent view of the dimmer state for status reporting.
type Snapshot struct {
	Delay   uint8
	Armed   bool
	Elapsed uint32
	Ticks   uint32
}

// Snapshot reads all fields inside a brief critical section so a status
// report is internally consistent even when a tick or zero cross lands
// mid-read. The section is two loads per field, never unbounded work.
func (d *Dimmer) Snapshot() Snapshot {
	state := disableInterrupts()
	s := Snapshot{
		Delay:   uint8(atomic.LoadUint32(&d.delay)),
		Armed:   atomic.LoadUint32(&d.armed) != 0,
		Elapsed: atomic.LoadUint32(&d.elapsed),
		Ticks:   atomic.LoadUint32(&d.ticks),
	}
	restoreInterrupts(state)
	return s
}
