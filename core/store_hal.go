package core

// DelayStore persists the last saved delay across power cycles. Load and
// Save may block for milliseconds (EEPROM write cycles), so they are
// main-flow only and must never be called from interrupt context.
type DelayStore interface {
	// Load returns the stored delay and whether a value is present.
	// A factory-fresh store reports present=false with no error.
	Load() (value uint8, present bool, err error)

	// Save durably records the value.
	Save(value uint8) error
}

// Global singleton used by core code.
var delayStore DelayStore

// SetDelayStore is called by target-specific code to register its store.
func SetDelayStore(s DelayStore) {
	delayStore = s
}

// MustStore returns the configured store or panics if missing.
func MustStore() DelayStore {
	if delayStore == nil {
		panic("delay store not configured")
	}
	return delayStore
}
