package client

import (
	"bytes"
	"strings"
	"testing"
)

// fakePort scripts the firmware side of the exchange.
type fakePort struct {
	replies *bytes.Buffer
	sent    bytes.Buffer
	closed  bool
}

func newFakePort(replies string) *fakePort {
	return &fakePort{replies: bytes.NewBufferString(replies)}
}

func (p *fakePort) Read(b []byte) (int, error)  { return p.replies.Read(b) }
func (p *fakePort) Write(b []byte) (int, error) { return p.sent.Write(b) }
func (p *fakePort) Close() error                { p.closed = true; return nil }

func TestDoParsesOkReply(t *testing.T) {
	port := newFakePort("ok delay=42\n")
	c := New(port)

	reply, err := c.Do("get")
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	if reply != "delay=42" {
		t.Errorf("reply = %q, want %q", reply, "delay=42")
	}
	if got := port.sent.String(); got != "get\n" {
		t.Errorf("sent = %q, want %q", got, "get\n")
	}
}

func TestDoParsesBareOk(t *testing.T) {
	c := New(newFakePort("ok\n"))
	reply, err := c.Do("set 10")
	if err != nil || reply != "" {
		t.Errorf("got (%q, %v), want empty reply and nil error", reply, err)
	}
}

func TestDoSurfacesFirmwareError(t *testing.T) {
	c := New(newFakePort("error unknown command bogus\n"))
	if _, err := c.Do("bogus"); err == nil || !strings.Contains(err.Error(), "unknown command") {
		t.Errorf("err = %v, want firmware error", err)
	}
}

func TestDoRejectsGarbage(t *testing.T) {
	c := New(newFakePort("!!noise!!\n"))
	if _, err := c.Do("get"); err == nil {
		t.Error("expected error on unexpected reply")
	}
}

func TestSetDelayFormatsCommand(t *testing.T) {
	port := newFakePort("ok delay=95 clamped\n")
	c := New(port)

	reply, err := c.SetDelay(150)
	if err != nil {
		t.Fatalf("SetDelay: %v", err)
	}
	if reply != "delay=95 clamped" {
		t.Errorf("reply = %q", reply)
	}
	if got := port.sent.String(); got != "set 150\n" {
		t.Errorf("sent = %q, want %q", got, "set 150\n")
	}
}
