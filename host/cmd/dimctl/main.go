// dimctl is the interactive control tool for the dimmer firmware.
//
// One-shot:
//
//	dimctl -device /dev/ttyACM0 -set 42
//	dimctl -get
//	dimctl -status
//
// Without a one-shot flag it drops into an interactive prompt that
// forwards lines verbatim to the firmware.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"dimmer/host/client"
)

var (
	device = flag.String("device", "/dev/ttyACM0", "serial device path")
	baud   = flag.Int("baud", 115200, "baud rate")
	set    = flag.Int("set", -1, "set the phase delay in 100us ticks and exit")
	get    = flag.Bool("get", false, "print the current delay and exit")
	status = flag.Bool("status", false, "print the firmware status and exit")
	save   = flag.Bool("save", false, "persist the current delay and exit")
)

func main() {
	flag.Parse()

	c, err := client.Dial(*device, *baud)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dimctl: %v\n", err)
		os.Exit(1)
	}
	defer c.Close()

	if reply, done := oneShot(c); done {
		fmt.Println(reply)
		return
	}

	interactive(c)
}

// oneShot runs a single flagged command, reporting whether one was given.
func oneShot(c *client.Client) (string, bool) {
	var (
		reply string
		err   error
		done  bool
	)
	switch {
	case *set >= 0:
		reply, err = c.SetDelay(uint(*set))
		done = true
	case *get:
		reply, err = c.GetDelay()
		done = true
	case *status:
		reply, err = c.Status()
		done = true
	case *save:
		reply, err = c.Save()
		done = true
	}
	if done && err != nil {
		fmt.Fprintf(os.Stderr, "dimctl: %v\n", err)
		os.Exit(1)
	}
	return reply, done
}

func interactive(c *client.Client) {
	fmt.Println("dimmer control - commands: set <ticks>, get, save, status, quit")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" || line == "q" {
			return
		}

		reply, err := c.Do(line)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			continue
		}
		if reply == "" {
			reply = "ok"
		}
		fmt.Println(reply)
	}

	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "dimctl: reading input: %v\n", err)
		os.Exit(1)
	}
}
