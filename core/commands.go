package core

// InitDimmerCommands registers the serial command set against d. Called
// once at startup after the output driver and delay store are configured.
func InitDimmerCommands(d *Dimmer) {
	RegisterCommand("set", "set <ticks>", func(args []string) (string, error) {
		return handleSet(d, args)
	})
	RegisterCommand("get", "get", func(args []string) (string, error) {
		return handleGet(d, args)
	})
	RegisterCommand("save", "save", func(args []string) (string, error) {
		return handleSave(d, args)
	})
	RegisterCommand("status", "status", func(args []string) (string, error) {
		return handleStatus(d, args)
	})
}

// handleSet applies a new phase delay. Values above MaxDelayTicks are
// clamped, and the clamped value is persisted so the bound survives a
// power cycle; in-range values are applied without touching the store.
func handleSet(d *Dimmer, args []string) (string, error) {
	if len(args) != 1 {
		return "", ErrUsage
	}
	v, err := ParseUint(args[0])
	if err != nil {
		return "", err
	}

	applied := d.SetDelay(v)
	reply := "delay=" + utoa(uint32(applied))
	if uint32(applied) != v {
		if err := MustStore().Save(applied); err != nil {
			return "", err
		}
		reply += " clamped"
	}
	return reply, nil
}

func handleGet(d *Dimmer, args []string) (string, error) {
	if len(args) != 0 {
		return "", ErrUsage
	}
	return "delay=" + utoa(uint32(d.Delay())), nil
}

// handleSave persists the current delay on demand, independent of the
// clamp path.
func handleSave(d *Dimmer, args []string) (string, error) {
	if len(args) != 0 {
		return "", ErrUsage
	}
	v := d.Delay()
	if err := MustStore().Save(v); err != nil {
		return "", err
	}
	return "saved delay=" + utoa(uint32(v)), nil
}

// handleStatus reports a coherent snapshot of the state machine, the
// wall-clock microsecond uptime, and the command-channel drop counters.
// The uptime and counters are read outside the snapshot's critical
// section; they are independent of the phase state.
func handleStatus(d *Dimmer, args []string) (string, error) {
	if len(args) != 0 {
		return "", ErrUsage
	}
	s := d.Snapshot()
	armed := "0"
	if s.Armed {
		armed = "1"
	}
	rxDropped, badLines := readChannelStats()
	return "delay=" + utoa(uint32(s.Delay)) +
		" armed=" + armed +
		" elapsed=" + utoa(s.Elapsed) +
		" ticks=" + utoa(s.Ticks) +
		" uptime_us=" + utoa64(MustClock().UptimeMicros()) +
		" rxdrops=" + utoa(rxDropped) +
		" badlines=" + utoa(badLines), nil
}
