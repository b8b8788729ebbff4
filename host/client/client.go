// Package client speaks the dimmer's line-oriented control protocol:
// one command per line out, one "ok ..." or "error ..." line back.
package client

import (
	"bufio"
	"fmt"
	"strings"

	"dimmer/host/serial"
)

// Client wraps a serial port with the command/reply exchange.
type Client struct {
	port serial.Port
	r    *bufio.Reader
}

// Dial opens the serial device and returns a connected client.
func Dial(device string, baud int) (*Client, error) {
	cfg := serial.DefaultConfig(device)
	if baud > 0 {
		cfg.Baud = baud
	}
	port, err := serial.Open(cfg)
	if err != nil {
		return nil, err
	}
	return New(port), nil
}

// New wraps an already-open port.
func New(port serial.Port) *Client {
	return &Client{
		port: port,
		r:    bufio.NewReader(port),
	}
}

// Do sends one command line and returns the reply payload. A firmware
// "error ..." reply is surfaced as a Go error.
func (c *Client) Do(cmd string) (string, error) {
	if _, err := fmt.Fprintf(c.port, "%s\n", cmd); err != nil {
		return "", fmt.Errorf("send %q: %w", cmd, err)
	}

	line, err := c.r.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("read reply to %q: %w", cmd, err)
	}
	line = strings.TrimSpace(line)

	switch {
	case line == "ok":
		return "", nil
	case strings.HasPrefix(line, "ok "):
		return strings.TrimPrefix(line, "ok "), nil
	case strings.HasPrefix(line, "error "):
		return "", fmt.Errorf("firmware: %s", strings.TrimPrefix(line, "error "))
	default:
		return "", fmt.Errorf("unexpected reply %q", line)
	}
}

// SetDelay applies a new phase delay and returns the firmware's report,
// which reflects any clamping (e.g. "delay=95 clamped").
func (c *Client) SetDelay(ticks uint) (string, error) {
	return c.Do(fmt.Sprintf("set %d", ticks))
}

// GetDelay returns the current delay report.
func (c *Client) GetDelay() (string, error) {
	return c.Do("get")
}

// Status returns the firmware's state snapshot line.
func (c *Client) Status() (string, error) {
	return c.Do("status")
}

// Save persists the current delay.
func (c *Client) Save() (string, error) {
	return c.Do("save")
}

// Close closes the underlying port.
func (c *Client) Close() error {
	return c.port.Close()
}
