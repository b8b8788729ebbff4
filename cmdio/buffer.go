// Package cmdio provides the byte-level plumbing for the serial command
// channel: a fixed-capacity FIFO between the UART reader and the main
// loop, and a scanner that splits the byte stream into command lines.
package cmdio

// FifoBuffer is a fixed-capacity byte ring. It is safe for one writer and
// one reader without locking only under a cooperative scheduler (the
// firmware's UART reader goroutine and main loop); it is not safe for
// concurrent OS threads.
type FifoBuffer struct {
	buf  []byte
	head int // index of the oldest byte
	n    int // bytes currently stored
}

// NewFifoBuffer creates a FifoBuffer with the given capacity.
func NewFifoBuffer(capacity int) *FifoBuffer {
	return &FifoBuffer{buf: make([]byte, capacity)}
}

// Write appends data, returning how many bytes fit. Excess bytes are
// dropped rather than overwriting unread data.
func (f *FifoBuffer) Write(data []byte) int {
	written := 0
	for _, b := range data {
		if f.n == len(f.buf) {
			break
		}
		f.buf[(f.head+f.n)%len(f.buf)] = b
		f.n++
		written++
	}
	return written
}

// Put appends a single byte, reporting whether it fit.
func (f *FifoBuffer) Put(b byte) bool {
	if f.n == len(f.buf) {
		return false
	}
	f.buf[(f.head+f.n)%len(f.buf)] = b
	f.n++
	return true
}

// Read copies up to len(data) bytes out of the buffer and returns the
// count.
func (f *FifoBuffer) Read(data []byte) int {
	read := 0
	for read < len(data) && f.n > 0 {
		data[read] = f.buf[f.head]
		f.head = (f.head + 1) % len(f.buf)
		f.n--
		read++
	}
	return read
}

// Available returns the number of buffered bytes.
func (f *FifoBuffer) Available() int {
	return f.n
}

// Free returns the remaining capacity.
func (f *FifoBuffer) Free() int {
	return len(f.buf) - f.n
}

// Reset discards all buffered data.
func (f *FifoBuffer) Reset() {
	f.head = 0
	f.n = 0
}
