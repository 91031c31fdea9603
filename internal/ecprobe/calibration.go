// internal/ecprobe/calibration.go
package ecprobe

import "math"

// Calibration is a fresh read of the calibration state held in the
// device's non-volatile memory. NaN in a field means "uncalibrated".
type Calibration struct {
	Offset          float32
	RefLow          float32
	RefHigh         float32
	ReadLow         float32
	ReadHigh        float32
	TempConstant    float32
	TempCoefficient float32
}

// SinglePoint reports whether a single-point offset is stored.
func (c Calibration) SinglePoint() bool {
	return !isNaN(c.Offset)
}

// DualPoint reports whether all four dual-point values are stored.
func (c Calibration) DualPoint() bool {
	return !isNaN(c.RefLow) && !isNaN(c.RefHigh) && !isNaN(c.ReadLow) && !isNaN(c.ReadHigh)
}

func isNaN(v float32) bool {
	return math.IsNaN(float64(v))
}

// ---- calibration tasks ----

// CalibrateSingle performs a single-point calibration in a solution of solutionEC mS.
// The resulting offset is persisted by the firmware.
func (p *Probe) CalibrateSingle(solutionEC float32) error {
	return p.calibrate(TaskCalibrateProbe, solutionEC)
}

// CalibrateProbeLow records the low dual-point pair in a solution of solutionEC mS.
func (p *Probe) CalibrateProbeLow(solutionEC float32) error {
	return p.calibrate(TaskCalibrateLow, solutionEC)
}

// CalibrateProbeHigh records the high dual-point pair in a solution of solutionEC mS.
func (p *Probe) CalibrateProbeHigh(solutionEC float32) error {
	return p.calibrate(TaskCalibrateHigh, solutionEC)
}

func (p *Probe) calibrate(t Task, solutionEC float32) error {
	if err := p.bus.WriteFloatRegister(RegSolution, solutionEC); err != nil {
		return err
	}
	if err := p.trigger(t); err != nil {
		return err
	}
	p.bus.Sleep(p.measure)
	return nil
}

// SetDualPointCalibration writes all four dual-point values.
// The writes are independent; a failure part way leaves old and new values mixed.
func (p *Probe) SetDualPointCalibration(refLow, refHigh, readLow, readHigh float32) error {
	return p.writeFloats([]floatWrite{
		{RegCalRefLow, refLow},
		{RegCalRefHigh, refHigh},
		{RegCalReadLow, readLow},
		{RegCalReadHigh, readHigh},
	})
}

// Reset clears every calibration value to NaN and restores the temperature
// constant and coefficient defaults.
func (p *Probe) Reset() error {
	nan := float32(math.NaN())
	return p.writeFloats([]floatWrite{
		{RegCalRefLow, nan},
		{RegCalRefHigh, nan},
		{RegCalReadLow, nan},
		{RegCalReadHigh, nan},
		{RegCalOffset, nan},
		{RegTempConstant, DefaultTempConstant},
		{RegTempCoefficient, DefaultTempCoefficient},
	})
}

type floatWrite struct {
	reg byte
	v   float32
}

func (p *Probe) writeFloats(ws []floatWrite) error {
	for _, w := range ws {
		if err := p.bus.WriteFloatRegister(w.reg, w.v); err != nil {
			return err
		}
	}
	return nil
}

// ---- getters / setters ----

func (p *Probe) CalibrateOffset() (float32, error) {
	return p.bus.ReadFloatRegister(RegCalOffset)
}

func (p *Probe) SetCalibrateOffset(offset float32) error {
	return p.bus.WriteFloatRegister(RegCalOffset, offset)
}

func (p *Probe) CalibrateLowReference() (float32, error) {
	return p.bus.ReadFloatRegister(RegCalRefLow)
}

func (p *Probe) CalibrateHighReference() (float32, error) {
	return p.bus.ReadFloatRegister(RegCalRefHigh)
}

func (p *Probe) CalibrateLowReading() (float32, error) {
	return p.bus.ReadFloatRegister(RegCalReadLow)
}

func (p *Probe) CalibrateHighReading() (float32, error) {
	return p.bus.ReadFloatRegister(RegCalReadHigh)
}

// TempConstant is the reference temperature readings are compensated to.
func (p *Probe) TempConstant() (float32, error) {
	return p.bus.ReadFloatRegister(RegTempConstant)
}

func (p *Probe) SetTempConstant(c float32) error {
	return p.bus.WriteFloatRegister(RegTempConstant, c)
}

// TempCoefficient is the fractional change in EC per °C.
func (p *Probe) TempCoefficient() (float32, error) {
	return p.bus.ReadFloatRegister(RegTempCoefficient)
}

func (p *Probe) SetTempCoefficient(c float32) error {
	return p.bus.WriteFloatRegister(RegTempCoefficient, c)
}

// Calibration reads the full calibration record. Any failure aborts.
func (p *Probe) Calibration() (Calibration, error) {
	var c Calibration

	reads := []struct {
		reg byte
		dst *float32
	}{
		{RegCalOffset, &c.Offset},
		{RegCalRefLow, &c.RefLow},
		{RegCalRefHigh, &c.RefHigh},
		{RegCalReadLow, &c.ReadLow},
		{RegCalReadHigh, &c.ReadHigh},
		{RegTempConstant, &c.TempConstant},
		{RegTempCoefficient, &c.TempCoefficient},
	}

	for _, r := range reads {
		v, err := p.bus.ReadFloatRegister(r.reg)
		if err != nil {
			return Calibration{}, err
		}
		*r.dst = v
	}
	return c, nil
}
