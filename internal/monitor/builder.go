// internal/monitor/builder.go
package monitor

import (
	"time"

	cfg "github.com/tamzrod/ecprobe/internal/config"
	"github.com/tamzrod/ecprobe/internal/ecprobe"
	"github.com/tamzrod/ecprobe/internal/regbus"
	ri2c "github.com/tamzrod/ecprobe/internal/regbus/i2c"
)

// OpenProbe opens the I²C transport and wires the register client and probe driver.
// The returned closer releases the bus.
func OpenProbe(p cfg.ProbeConfig) (*ecprobe.Probe, func() error, error) {
	tr, err := ri2c.Open(ri2c.Config{Bus: p.Bus, Address: p.Address})
	if err != nil {
		return nil, nil, err
	}

	bus, err := regbus.New(tr, regbus.Config{
		Settle: time.Duration(p.SettleMs) * time.Millisecond,
	})
	if err != nil {
		_ = tr.Close()
		return nil, nil, err
	}

	probe, err := ecprobe.New(bus, ecprobe.Config{
		Address:      p.Address,
		MeasureDelay: time.Duration(p.MeasureMs) * time.Millisecond,
	})
	if err != nil {
		_ = tr.Close()
		return nil, nil, err
	}

	return probe, tr.Close, nil
}

// Build constructs a Sampler for the configured probe.
// Config must already be validated and normalized.
func Build(c *cfg.Config, probe Probe) (*Sampler, error) {
	fixed, fromProbe, err := cfg.ParseTemperature(c.Monitor.Temperature)
	if err != nil {
		return nil, err
	}

	return New(
		Config{
			ProbeID:      c.Probe.ID,
			Interval:     time.Duration(c.Monitor.IntervalMs) * time.Millisecond,
			UseFixedTemp: !fromProbe,
			FixedTempC:   fixed,
		},
		probe,
	)
}
