//go:build rp2040 || rp2350

package main

import (
	"context"
	"machine"
	"sync/atomic"
	"time"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"

	"dimmer/cmdio"
	"dimmer/core"
)

// Board wiring. The zero-cross input comes from an opto-isolated detector
// on the rectified mains; its electrical polarity does not matter because
// both edges are handled identically.
const (
	zeroCrossPin = machine.GP2
	gatePin      = machine.GP3
	uartTXPin    = machine.GP0
	uartRXPin    = machine.GP1
	uartBaud     = 115200
)

var (
	// dim is referenced from the SysTick and pin interrupt handlers.
	dim *core.Dimmer

	// rxFifo carries raw UART bytes from the reader goroutine to the
	// main loop. Single writer, single reader, cooperative scheduler.
	rxFifo *cmdio.FifoBuffer

	// scanner frames the FIFO bytes into command lines; the status
	// command reports its oversized-line counter.
	scanner = cmdio.NewLineScanner()

	// rxDrops counts bytes the reader goroutine could not fit into the
	// FIFO. Written by the reader, read from the main loop, so atomic.
	rxDrops uint32
)

func main() {
	// Gate first: the load must be blocking before anything else runs.
	core.SetOutputDriver(NewGateDriver(gatePin))

	store, err := NewEEPROMStore()
	if err != nil {
		// Keep running: a failed store degrades persistence, not
		// phase control. RestoreDelay falls back to the default.
		println("eeprom:", err.Error())
	}
	core.SetDelayStore(store)

	core.SetClockDriver(hardwareClock{})
	core.SetChannelStats(func() (uint32, uint32) {
		return atomic.LoadUint32(&rxDrops), scanner.Dropped()
	})

	dim = core.NewDimmer(core.DefaultDelayTicks)
	core.RestoreDelay(dim)
	core.InitDimmerCommands(dim)

	zeroCrossPin.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	if err := zeroCrossPin.SetInterrupt(machine.PinRising|machine.PinFalling, zeroCrossISR); err != nil {
		println("zero-cross interrupt:", err.Error())
		return
	}

	// The phase clock starts last so the first tick already sees a fully
	// initialized dimmer.
	startPhaseClock()

	uart := uartx.UART0
	if err := uart.Configure(uartx.UARTConfig{
		BaudRate: uartBaud,
		TX:       uartTXPin,
		RX:       uartRXPin,
	}); err != nil {
		println("uart:", err.Error())
		return
	}

	rxFifo = cmdio.NewFifoBuffer(256)
	go uartReaderLoop(uart)

	println("dimmer ready, delay =", dim.Delay())

	// Main flow: busy-poll the command FIFO and dispatch complete lines.
	// This is the only code allowed to perform unbounded-latency I/O
	// (EEPROM writes inside command handlers).
	var buf [64]byte
	for {
		n := rxFifo.Read(buf[:])
		for i := 0; i < n; i++ {
			line, ok := scanner.Feed(buf[i])
			if !ok {
				continue
			}
			reply := core.DispatchLine(line)
			if reply != "" {
				_ = cmdio.WriteLine(uart, reply)
			}
		}
		// Yield to the reader goroutine.
		time.Sleep(time.Millisecond)
	}
}

// zeroCrossISR runs on every electrical transition of the sense signal.
func zeroCrossISR(machine.Pin) {
	dim.ZeroCross()
}

// uartReaderLoop continuously moves received bytes into the FIFO, the
// counterpart of the main loop's drain.
func uartReaderLoop(u *uartx.UART) {
	ctx := context.Background()
	buf := make([]byte, 64)
	for {
		n, err := u.RecvSomeContext(ctx, buf)
		if err != nil || n == 0 {
			time.Sleep(time.Millisecond)
			continue
		}
		if w := rxFifo.Write(buf[:n]); w < n {
			atomic.AddUint32(&rxDrops, uint32(n-w))
		}
	}
}
