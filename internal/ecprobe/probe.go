// internal/ecprobe/probe.go

// Package ecprobe drives an isolated EC (conductivity/salinity/temperature)
// probe interface over its register bus.
//
// Every operation is synchronous and issues fresh bus transactions; no device
// state is cached on the host. A Probe is not safe for concurrent use; callers
// sharing one physical device must serialize access themselves.
package ecprobe

import (
	"errors"
	"time"

	"github.com/tamzrod/ecprobe/internal/regbus"
)

// Bus is the register-level client the probe composes its operations from.
// *regbus.Client satisfies it.
type Bus interface {
	SelectRegister(addr byte) error
	ReadByte() (byte, error)
	WriteByteAt(addr, value byte) error
	ReadByteAt(addr byte) (byte, error)
	ReadFloatRegister(base byte) (float32, error)
	WriteFloatRegister(base byte, v float32) error
	Settle()
	Sleep(d time.Duration)
}

var _ Bus = (*regbus.Client)(nil)

// Config is the probe runtime config.
type Config struct {
	Address      uint16        // current bus address; informational
	MeasureDelay time.Duration // zero => MeasureDelay
}

// Probe is the EC probe driver.
type Probe struct {
	bus     Bus
	address uint16
	measure time.Duration
}

// New creates a probe on an already-connected bus client.
func New(bus Bus, cfg Config) (*Probe, error) {
	if bus == nil {
		return nil, errors.New("ecprobe: bus required")
	}
	if cfg.Address == 0 {
		cfg.Address = DefaultAddress
	}
	if cfg.MeasureDelay <= 0 {
		cfg.MeasureDelay = MeasureDelay
	}
	return &Probe{bus: bus, address: cfg.Address, measure: cfg.MeasureDelay}, nil
}

// Address is the bus address this probe was last told it lives at.
func (p *Probe) Address() uint16 {
	return p.address
}

// ---- identity ----

// Version reads the hardware version byte.
func (p *Probe) Version() (byte, error) {
	return p.bus.ReadByteAt(RegVersion)
}

// Firmware reads the firmware version byte.
func (p *Probe) Firmware() (byte, error) {
	return p.bus.ReadByteAt(RegFirmwareVersion)
}

// Connected reports whether something answers with a plausible version.
func (p *Probe) Connected() bool {
	v, err := p.Version()
	return err == nil && v != versionAbsent
}

// ---- measurement ----

// MeasureTemperature runs a temperature conversion and returns Celsius.
func (p *Probe) MeasureTemperature() (float32, error) {
	if err := p.trigger(TaskMeasureTemp); err != nil {
		return 0, err
	}
	p.bus.Sleep(p.measure)
	return p.bus.ReadFloatRegister(RegTemperature)
}

// SetTemp writes the temperature the firmware compensates against.
func (p *Probe) SetTemp(tempC float32) error {
	return p.bus.WriteFloatRegister(RegTemperature, tempC)
}

// MeasureEC measures conductivity compensated to tempC and returns mS.
//
// It switches temperature compensation on and leaves it on. Callers that rely
// on uncompensated readings must turn it off again afterwards.
func (p *Probe) MeasureEC(tempC float32) (float32, error) {
	if err := p.UseTemperatureCompensation(true); err != nil {
		return 0, err
	}
	return p.measureAt(tempC, RegMilliSiemens)
}

// MeasureSalinity measures at tempC and returns salinity in PSU.
// The same firmware task fills the mS register; only the read-back differs.
func (p *Probe) MeasureSalinity(tempC float32) (float32, error) {
	return p.measureAt(tempC, RegSalinityPSU)
}

// MeasureRaw runs an EC conversion and returns the uncorrected raw value.
func (p *Probe) MeasureRaw() (float32, error) {
	if err := p.trigger(TaskMeasureEC); err != nil {
		return 0, err
	}
	p.bus.Sleep(p.measure)
	return p.bus.ReadFloatRegister(RegRaw)
}

func (p *Probe) measureAt(tempC float32, result byte) (float32, error) {
	if err := p.SetTemp(tempC); err != nil {
		return 0, err
	}
	if err := p.trigger(TaskMeasureEC); err != nil {
		return 0, err
	}
	p.bus.Sleep(p.measure)
	return p.bus.ReadFloatRegister(result)
}

// trigger writes a task code to the task register.
func (p *Probe) trigger(t Task) error {
	return p.bus.WriteByteAt(RegTask, byte(t))
}
