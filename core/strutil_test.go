package core

import "testing"

func TestParseUint(t *testing.T) {
	valid := []struct {
		in   string
		want uint32
	}{
		{"0", 0},
		{"7", 7},
		{"95", 95},
		{"150", 150},
		{"4294967295", 1<<32 - 1},
	}
	for _, c := range valid {
		got, err := ParseUint(c.in)
		if err != nil {
			t.Errorf("ParseUint(%q) error: %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseUint(%q) = %d, want %d", c.in, got, c.want)
		}
	}

	invalid := []struct {
		in  string
		err error
	}{
		{"", ErrNotANumber},
		{"-1", ErrNotANumber},
		{"1x", ErrNotANumber},
		{" 5", ErrNotANumber},
		{"4294967296", ErrValueTooLarge},
		{"99999999999", ErrValueTooLarge},
	}
	for _, c := range invalid {
		if _, err := ParseUint(c.in); err != c.err {
			t.Errorf("ParseUint(%q) error = %v, want %v", c.in, err, c.err)
		}
	}
}

func TestUtoa(t *testing.T) {
	cases := map[uint32]string{
		0:          "0",
		9:          "9",
		10:         "10",
		95:         "95",
		4294967295: "4294967295",
	}
	for in, want := range cases {
		if got := utoa(in); got != want {
			t.Errorf("utoa(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestUtoa64(t *testing.T) {
	cases := map[uint64]string{
		0:                    "0",
		4294967296:           "4294967296",
		18446744073709551615: "18446744073709551615",
	}
	for in, want := range cases {
		if got := utoa64(in); got != want {
			t.Errorf("utoa64(%d) = %q, want %q", in, got, want)
		}
	}
}
