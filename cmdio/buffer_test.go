package cmdio

import (
	"bytes"
	"testing"
)

func TestFifoWriteRead(t *testing.T) {
	f := NewFifoBuffer(8)

	if n := f.Write([]byte("abc")); n != 3 {
		t.Fatalf("Write = %d, want 3", n)
	}
	if f.Available() != 3 || f.Free() != 5 {
		t.Errorf("available=%d free=%d, want 3/5", f.Available(), f.Free())
	}

	out := make([]byte, 8)
	if n := f.Read(out); n != 3 || !bytes.Equal(out[:3], []byte("abc")) {
		t.Errorf("Read = %d %q, want 3 %q", n, out[:3], "abc")
	}
	if f.Available() != 0 {
		t.Errorf("available after drain = %d, want 0", f.Available())
	}
}

func TestFifoWrap(t *testing.T) {
	f := NewFifoBuffer(4)
	out := make([]byte, 4)

	// Advance head so subsequent writes wrap the ring.
	f.Write([]byte("ab"))
	f.Read(out[:2])

	if n := f.Write([]byte("cdef")); n != 4 {
		t.Fatalf("Write across wrap = %d, want 4", n)
	}
	if n := f.Read(out); n != 4 || !bytes.Equal(out, []byte("cdef")) {
		t.Errorf("Read across wrap = %d %q, want 4 %q", n, out[:n], "cdef")
	}
}

func TestFifoFull(t *testing.T) {
	f := NewFifoBuffer(4)

	if n := f.Write([]byte("abcdef")); n != 4 {
		t.Fatalf("Write into small ring = %d, want 4", n)
	}
	if f.Put('x') {
		t.Error("Put succeeded on a full ring")
	}

	out := make([]byte, 8)
	if n := f.Read(out); n != 4 || !bytes.Equal(out[:4], []byte("abcd")) {
		t.Errorf("Read = %d %q, want the first 4 bytes", n, out[:n])
	}
}

func TestFifoReset(t *testing.T) {
	f := NewFifoBuffer(4)
	f.Write([]byte("ab"))
	f.Reset()
	if f.Available() != 0 || f.Free() != 4 {
		t.Errorf("after reset: available=%d free=%d", f.Available(), f.Free())
	}
}
