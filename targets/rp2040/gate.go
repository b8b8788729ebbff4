//go:build rp2040 || rp2350

package main

import "machine"

// GateDriver drives the TRIAC gate control line. Pin set/clear on the
// RP2040 is a single register write, so both calls are safe from any
// interrupt context.
type GateDriver struct {
	pin machine.Pin
}

// NewGateDriver configures the pin as an output and leaves it blocking.
func NewGateDriver(pin machine.Pin) *GateDriver {
	pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	pin.Low()
	return &GateDriver{pin: pin}
}

// Assert drives the gate to its conducting level.
func (g *GateDriver) Assert() {
	g.pin.High()
}

// Deassert drives the gate to its blocking level.
func (g *GateDriver) Deassert() {
	g.pin.Low()
}
