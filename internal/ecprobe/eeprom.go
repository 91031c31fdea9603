// internal/ecprobe/eeprom.go
package ecprobe

import "errors"

// ReadEEPROM reads one cell of the device's general-purpose storage.
// The address travels as a float; that is the firmware's wire format.
func (p *Probe) ReadEEPROM(address float32) (float32, error) {
	if err := p.bus.WriteFloatRegister(RegSolution, address); err != nil {
		return 0, err
	}
	if err := p.trigger(TaskReadEEPROM); err != nil {
		return 0, err
	}
	return p.bus.ReadFloatRegister(RegBuffer)
}

// WriteEEPROM stores value at address and returns the buffer read-back.
func (p *Probe) WriteEEPROM(address, value float32) (float32, error) {
	if err := p.bus.WriteFloatRegister(RegSolution, address); err != nil {
		return 0, err
	}
	if err := p.bus.WriteFloatRegister(RegBuffer, value); err != nil {
		return 0, err
	}
	if err := p.trigger(TaskWriteEEPROM); err != nil {
		return 0, err
	}
	return p.bus.ReadFloatRegister(RegBuffer)
}

// SetBusAddress moves the device to newAddress. After it returns the device
// no longer answers at the old address. reconnect, if non-nil, is called with
// the new address and must return a bus that reaches the device there; the
// probe switches to that bus and address only once reconnect succeeds. With a
// nil reconnect the probe keeps its old bus and address, and the owner has to
// build a new Probe for the new address.
func (p *Probe) SetBusAddress(newAddress uint16, reconnect func(uint16) (Bus, error)) error {
	if err := p.bus.WriteFloatRegister(RegSolution, float32(newAddress)); err != nil {
		return err
	}
	if err := p.trigger(TaskChangeAddress); err != nil {
		return err
	}
	if reconnect == nil {
		return nil
	}

	bus, err := reconnect(newAddress)
	if err != nil {
		return err
	}
	if bus == nil {
		return errors.New("ecprobe: reconnect returned no bus")
	}
	p.bus = bus
	p.address = newAddress
	return nil
}
