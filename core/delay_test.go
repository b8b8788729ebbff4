package core

import (
	"errors"
	"testing"
)

func TestSetDelayClamp(t *testing.T) {
	dim, _ := setupDimmer(t, 0)

	cases := []struct {
		in   uint32
		want uint8
	}{
		{0, 0},
		{1, 1},
		{95, 95},
		{96, 95},
		{150, 95},
		{1 << 30, 95},
	}
	for _, c := range cases {
		if got := dim.SetDelay(c.in); got != c.want {
			t.Errorf("SetDelay(%d) = %d, want %d", c.in, got, c.want)
		}
		if got := dim.Delay(); got != c.want {
			t.Errorf("Delay() after SetDelay(%d) = %d, want %d", c.in, got, c.want)
		}
		// Applying the clamped result again is a no-op on the stored
		// value.
		if got := dim.SetDelay(uint32(c.want)); got != c.want {
			t.Errorf("SetDelay(%d) re-apply = %d, want %d", c.want, got, c.want)
		}
	}
}

func TestRestoreDelay(t *testing.T) {
	dim, _ := setupDimmer(t, 0)

	tests := []struct {
		name  string
		store *fakeStore
		want  uint8
	}{
		{"stored value", &fakeStore{value: 30, present: true}, 30},
		{"stored zero", &fakeStore{value: 0, present: true}, 0},
		{"stored maximum", &fakeStore{value: 95, present: true}, 95},
		{"no value", &fakeStore{}, DefaultDelayTicks},
		{"corrupt value", &fakeStore{value: 200, present: true}, DefaultDelayTicks},
		{"read failure", &fakeStore{loadErr: errors.New("i2c timeout")}, DefaultDelayTicks},
	}
	for _, tt := range tests {
		SetDelayStore(tt.store)
		if got := RestoreDelay(dim); got != tt.want {
			t.Errorf("%s: RestoreDelay = %d, want %d", tt.name, got, tt.want)
		}
		if got := dim.Delay(); got != tt.want {
			t.Errorf("%s: Delay after restore = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestSnapshot(t *testing.T) {
	dim, _ := setupDimmer(t, 7)
	dim.ZeroCross()
	dim.Tick()
	dim.Tick()

	s := dim.Snapshot()
	if s.Delay != 7 || !s.Armed || s.Elapsed != 2 || s.Ticks != 2 {
		t.Errorf("snapshot = %+v, want delay=7 armed=true elapsed=2 ticks=2", s)
	}
}
