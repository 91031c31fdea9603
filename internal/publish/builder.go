// internal/publish/builder.go
package publish

import (
	"errors"
	"time"

	cfg "github.com/tamzrod/ecprobe/internal/config"
	pmodbus "github.com/tamzrod/ecprobe/internal/publish/modbus"
)

// BuildPlan converts the probe + publish config into a Plan.
// Assumes config has already been validated and normalized.
func BuildPlan(c *cfg.Config) (Plan, error) {
	if c.Publish == nil {
		return Plan{}, errors.New("publish: not configured")
	}
	if c.Probe.ID == "" {
		return Plan{}, errors.New("publish: probe.id required")
	}
	return Plan{
		ProbeID: c.Probe.ID,
		UnitID:  c.Publish.UnitID,
		Address: c.Publish.Address,
	}, nil
}

// BuildClient opens the Modbus connection the plan is delivered over.
func BuildClient(p cfg.PublishConfig) (*pmodbus.EndpointClient, error) {
	return pmodbus.NewEndpointClient(pmodbus.Config{
		Endpoint: p.Endpoint,
		Serial:   cfg.IsSerialEndpoint(p.Endpoint),
		Timeout:  time.Duration(p.TimeoutMs) * time.Millisecond,
		BaudRate: p.BaudRate,
		Parity:   p.Parity,
	})
}
