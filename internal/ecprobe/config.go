// internal/ecprobe/config.go
package ecprobe

// UseTemperatureCompensation sets or clears the compensation bit.
func (p *Probe) UseTemperatureCompensation(enable bool) error {
	return p.setConfigBit(ConfigBitTempComp, enable)
}

// UsingTemperatureCompensation reads the compensation bit.
func (p *Probe) UsingTemperatureCompensation() (bool, error) {
	return p.configBit(ConfigBitTempComp)
}

// UseDualPoint selects dual-point (true) or single-point (false) correction.
func (p *Probe) UseDualPoint(enable bool) error {
	return p.setConfigBit(ConfigBitDualPoint, enable)
}

func (p *Probe) UsingDualPoint() (bool, error) {
	return p.configBit(ConfigBitDualPoint)
}

// ConfigFlags reads the raw config byte.
func (p *Probe) ConfigFlags() (byte, error) {
	return p.bus.ReadByteAt(RegConfig)
}

func (p *Probe) configBit(bit byte) (bool, error) {
	cfg, err := p.ConfigFlags()
	if err != nil {
		return false, err
	}
	return cfg&(1<<bit) != 0, nil
}

// setConfigBit is a read-modify-write of one bit; all other bits are preserved.
func (p *Probe) setConfigBit(bit byte, on bool) error {
	if err := p.bus.SelectRegister(RegConfig); err != nil {
		return err
	}
	cfg, err := p.bus.ReadByte()
	if err != nil {
		return err
	}
	p.bus.Settle()

	if on {
		cfg |= 1 << bit
	} else {
		cfg &^= 1 << bit
	}

	return p.bus.WriteByteAt(RegConfig, cfg)
}
