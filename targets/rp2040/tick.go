//go:build rp2040 || rp2350

package main

import (
	"device/arm"
	"machine"

	"dimmer/core"
)

// startPhaseClock programs SysTick to interrupt at core.TickHz (10 kHz,
// one interrupt per 100us). SysTick is a free-running hardware countdown
// timer, so the cadence holds regardless of what the main loop is doing.
func startPhaseClock() {
	arm.SetupSystemTimer(machine.CPUFrequency() / core.TickHz)
}

// phaseTickISR is the SysTick interrupt handler. It must finish well
// inside the 100us period; the tick body is a few atomic operations and
// at most one pin write.
//
//export SysTick_Handler
func phaseTickISR() {
	dim.Tick()
}
