// internal/config/normalize.go
package config

import (
	"fmt"
	"strings"
)

// ---- DEFAULTS ----

const (
	DefaultSettleMs   = 10
	DefaultMeasureMs  = 750
	DefaultIntervalMs = 5000
	DefaultTimeoutMs  = 1000
	DefaultBaudRate   = 9600
	DefaultParity     = "N"
)

// Normalize applies post-validation normalization.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	p := &cfg.Probe
	if p.SettleMs == 0 {
		p.SettleMs = DefaultSettleMs
	}
	if p.MeasureMs == 0 {
		p.MeasureMs = DefaultMeasureMs
	}
	if p.ID == "" {
		p.ID = fmt.Sprintf("%s@0x%02x", p.Bus, p.Address)
	}

	if cfg.Monitor.IntervalMs == 0 {
		cfg.Monitor.IntervalMs = DefaultIntervalMs
	}
	if strings.TrimSpace(cfg.Monitor.Temperature) == "" {
		cfg.Monitor.Temperature = TemperatureFromProbe
	}

	pub := cfg.Publish
	if pub == nil {
		return
	}
	if pub.TimeoutMs == 0 {
		pub.TimeoutMs = DefaultTimeoutMs
	}
	if IsSerialEndpoint(pub.Endpoint) {
		if pub.BaudRate == 0 {
			pub.BaudRate = DefaultBaudRate
		}
		if pub.Parity == "" {
			pub.Parity = DefaultParity
		}
		pub.Parity = strings.ToUpper(pub.Parity)
	}
}
