//go:build rp2040 || rp2350

package main

import (
	"machine"

	"tinygo.org/x/drivers/at24cx"

	"dimmer/core"
)

// EEPROM layout: a marker byte distinguishes a saved record from the 0xFF
// of a factory-fresh part, followed by the delay itself.
const (
	eepromMarkerAddr = 0x00
	eepromDelayAddr  = 0x01
	eepromMarker     = 0xA5
)

const (
	sdaPin = machine.GP4
	sclPin = machine.GP5
)

// EEPROMStore persists the delay in an AT24Cxx I2C EEPROM. It implements
// core.DelayStore; all calls happen in main flow, where the multi-
// millisecond write cycle is acceptable.
type EEPROMStore struct {
	dev at24cx.Device
}

var _ core.DelayStore = (*EEPROMStore)(nil)

// NewEEPROMStore configures I2C0 and the EEPROM device. An error here
// still returns a usable store; individual operations will report the
// underlying bus failure.
func NewEEPROMStore() (*EEPROMStore, error) {
	err := machine.I2C0.Configure(machine.I2CConfig{
		SDA:       sdaPin,
		SCL:       sclPin,
		Frequency: 400 * machine.KHz,
	})
	dev := at24cx.New(machine.I2C0)
	dev.Configure(at24cx.Config{})
	return &EEPROMStore{dev: dev}, err
}

// Load reads the stored delay. A missing marker means no value has ever
// been saved.
func (s *EEPROMStore) Load() (uint8, bool, error) {
	marker, err := s.dev.ReadByte(eepromMarkerAddr)
	if err != nil {
		return 0, false, err
	}
	if marker != eepromMarker {
		return 0, false, nil
	}
	v, err := s.dev.ReadByte(eepromDelayAddr)
	if err != nil {
		return 0, false, err
	}
	return v, true, nil
}

// Save writes the delay first and the marker second, so a record is only
// marked valid once the value is in place.
func (s *EEPROMStore) Save(v uint8) error {
	if err := s.dev.WriteByte(eepromDelayAddr, v); err != nil {
		return err
	}
	return s.dev.WriteByte(eepromMarkerAddr, eepromMarker)
}
