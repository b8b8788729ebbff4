package cmdio

// MaxLineLen bounds a single command line. Anything longer is discarded
// up to the next newline; command lines are a verb and one small integer,
// so the bound is generous.
const MaxLineLen = 64

// LineScanner assembles newline-terminated command lines from a byte
// stream. Carriage returns are ignored so both "\n" and "\r\n" terminate
// a line. The scanner allocates only when a complete line is handed out.
type LineScanner struct {
	buf      [MaxLineLen]byte
	n        int
	overflow bool
	dropped  uint32
}

// NewLineScanner creates a LineScanner.
func NewLineScanner() *LineScanner {
	return &LineScanner{}
}

// Feed consumes one byte. When the byte completes a line, Feed returns it
// with ok=true; blank and oversized lines are swallowed and reported with
// ok=false.
func (s *LineScanner) Feed(c byte) (line string, ok bool) {
	switch c {
	case '\r':
		return "", false
	case '\n':
		if s.overflow {
			s.overflow = false
			s.dropped++
			s.n = 0
			return "", false
		}
		if s.n == 0 {
			return "", false
		}
		line = string(s.buf[:s.n])
		s.n = 0
		return line, true
	default:
		if s.overflow {
			return "", false
		}
		if s.n == len(s.buf) {
			s.overflow = true
			return "", false
		}
		s.buf[s.n] = c
		s.n++
		return "", false
	}
}

// Dropped returns how many oversized lines have been discarded.
func (s *LineScanner) Dropped() uint32 {
	return s.dropped
}
