// internal/monitor/sampler.go
package monitor

import (
	"errors"
	"fmt"
	"time"
)

// Probe abstracts the measurements the sampler needs.
// *ecprobe.Probe satisfies it.
type Probe interface {
	MeasureTemperature() (float32, error)
	MeasureEC(tempC float32) (float32, error)
	MeasureSalinity(tempC float32) (float32, error)
}

// Config is the minimal runtime config the sampler needs.
type Config struct {
	ProbeID  string
	Interval time.Duration

	// FixedTempC is used instead of measuring when UseFixedTemp is set.
	UseFixedTemp bool
	FixedTempC   float32
}

// Sampler is a dumb, clock-driven measurer.
type Sampler struct {
	cfg   Config
	probe Probe
	now   func() time.Time
}

// New creates a sampler with immutable config.
func New(cfg Config, probe Probe) (*Sampler, error) {
	if cfg.ProbeID == "" {
		return nil, errors.New("monitor: probe id required")
	}
	if cfg.Interval <= 0 {
		return nil, errors.New("monitor: interval must be > 0")
	}
	if probe == nil {
		return nil, errors.New("monitor: probe required")
	}
	return &Sampler{cfg: cfg, probe: probe, now: time.Now}, nil
}

// SampleOnce performs exactly one measurement cycle.
// All-or-nothing: any failure aborts the cycle.
func (s *Sampler) SampleOnce() Sample {
	res := Sample{
		ProbeID: s.cfg.ProbeID,
		At:      s.now(),
	}

	tempC := s.cfg.FixedTempC
	if !s.cfg.UseFixedTemp {
		t, err := s.probe.MeasureTemperature()
		if err != nil {
			res.Err = fmt.Errorf("monitor: temperature: %w", err)
			return res
		}
		tempC = t
	}

	mS, err := s.probe.MeasureEC(tempC)
	if err != nil {
		res.Err = fmt.Errorf("monitor: ec: %w", err)
		return res
	}

	psu, err := s.probe.MeasureSalinity(tempC)
	if err != nil {
		res.Err = fmt.Errorf("monitor: salinity: %w", err)
		return res
	}

	// Commit only if all measurements succeeded
	res.TempC = tempC
	res.MilliSiemens = mS
	res.SalinityPSU = psu
	return res
}
