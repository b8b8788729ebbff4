package core

import "errors"

var (
	// ErrNotANumber is returned when input is not a non-negative decimal.
	ErrNotANumber = errors.New("not a non-negative integer")

	// ErrValueTooLarge is returned when input overflows 32 bits.
	ErrValueTooLarge = errors.New("value too large")
)

// ParseUint parses an unsigned decimal integer. It avoids strconv to keep
// the firmware image small, the same reason the conversion helpers below
// avoid fmt.
func ParseUint(s string) (uint32, error) {
	if s == "" {
		return 0, ErrNotANumber
	}
	var n uint32
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, ErrNotANumber
		}
		digit := uint32(c - '0')
		if n > (1<<32-1-digit)/10 {
			return 0, ErrValueTooLarge
		}
		n = n*10 + digit
	}
	return n, nil
}

// utoa converts an unsigned integer to its decimal string.
func utoa(n uint32) string {
	if n == 0 {
		return "0"
	}
	var buf [10]byte
	pos := len(buf)
	for n > 0 {
		pos--
		buf[pos] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[pos:])
}

// utoa64 is utoa for 64-bit values, used for the microsecond uptime.
func utoa64(n uint64) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	pos := len(buf)
	for n > 0 {
		pos--
		buf[pos] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[pos:])
}
