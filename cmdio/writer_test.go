package cmdio

import (
	"bytes"
	"errors"
	"testing"
)

func TestWriteLine(t *testing.T) {
	var buf bytes.Buffer

	if err := WriteLine(&buf, "ok delay=42"); err != nil {
		t.Fatalf("WriteLine: %v", err)
	}
	if err := WriteLine(&buf, "error bad arguments"); err != nil {
		t.Fatalf("WriteLine: %v", err)
	}

	want := "ok delay=42\nerror bad arguments\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

// brokenWriter fails after accepting a set number of writes.
type brokenWriter struct {
	remaining int
}

func (w *brokenWriter) Write(p []byte) (int, error) {
	if w.remaining == 0 {
		return 0, errors.New("port gone")
	}
	w.remaining--
	return len(p), nil
}

func TestWriteLineError(t *testing.T) {
	// Failure on the payload write.
	if err := WriteLine(&brokenWriter{}, "ok"); err == nil {
		t.Error("expected error from payload write")
	}
	// Failure on the terminator write.
	if err := WriteLine(&brokenWriter{remaining: 1}, "ok"); err == nil {
		t.Error("expected error from newline write")
	}
}
