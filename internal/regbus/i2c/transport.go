// internal/regbus/i2c/transport.go
package i2c

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

// Transport implements regbus.Transport on a Linux I²C bus via periph.
type Transport struct {
	bus i2c.BusCloser
	dev *i2c.Dev
}

// Config is minimal transport config.
type Config struct {
	Bus     string // e.g. "/dev/i2c-1" or "1"
	Address uint16 // 7-bit device address
}

// Open initializes the host drivers and opens the bus.
func Open(cfg Config) (*Transport, error) {
	if cfg.Address == 0 {
		return nil, errors.New("i2c transport: address required")
	}

	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("i2c transport: host init: %w", err)
	}

	bus, err := i2creg.Open(cfg.Bus)
	if err != nil {
		return nil, fmt.Errorf("i2c transport: open %q: %w", cfg.Bus, err)
	}

	return &Transport{
		bus: bus,
		dev: &i2c.Dev{Bus: bus, Addr: cfg.Address},
	}, nil
}

// Close releases the bus.
func (t *Transport) Close() error {
	if t == nil || t.bus == nil {
		return nil
	}
	return t.bus.Close()
}

// Address reports the device address this transport talks to.
func (t *Transport) Address() uint16 {
	return t.dev.Addr
}

// ---- regbus.Transport ----

// SelectRegister sends the one-byte pointer-set write.
func (t *Transport) SelectRegister(addr byte) error {
	return t.dev.Tx([]byte{addr}, nil)
}

// ReadByte is a bare one-byte read at the device pointer.
func (t *Transport) ReadByte() (byte, error) {
	var b [1]byte
	if err := t.dev.Tx(nil, b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}

// WriteByteAt is a register-addressed one-byte write.
func (t *Transport) WriteByteAt(addr, value byte) error {
	return t.dev.Tx([]byte{addr, value}, nil)
}
