// internal/config/validate.go
package config

import (
	"fmt"
	"strconv"
	"strings"
)

// TemperatureFromProbe is the monitor.temperature value that measures on each cycle.
const TemperatureFromProbe = "probe"

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config: empty")
	}

	// ------------------------------------------------------------
	// PROBE
	// ------------------------------------------------------------

	p := cfg.Probe

	if strings.TrimSpace(p.Bus) == "" {
		return fmt.Errorf("probe %q: bus required", p.ID)
	}

	// 7-bit address space minus the reserved ranges
	if p.Address < 0x03 || p.Address > 0x77 {
		return fmt.Errorf("probe %q: address 0x%02x outside 0x03-0x77", p.ID, p.Address)
	}
	if p.SettleMs < 0 {
		return fmt.Errorf("probe %q: settle_ms must be >= 0", p.ID)
	}
	if p.MeasureMs < 0 {
		return fmt.Errorf("probe %q: measure_ms must be >= 0", p.ID)
	}
	for i := 0; i < len(p.ID); i++ {
		if p.ID[i] < 0x20 || p.ID[i] > 0x7E {
			return fmt.Errorf("probe %q: id must contain printable ASCII characters only", p.ID)
		}
	}

	// ------------------------------------------------------------
	// MONITOR
	// ------------------------------------------------------------

	if cfg.Monitor.IntervalMs < 0 {
		return fmt.Errorf("monitor: interval_ms must be >= 0")
	}
	if _, _, err := ParseTemperature(cfg.Monitor.Temperature); err != nil {
		return fmt.Errorf("monitor: %w", err)
	}

	// ------------------------------------------------------------
	// PUBLISH (OPT-IN)
	// ------------------------------------------------------------

	pub := cfg.Publish
	if pub == nil {
		return nil
	}

	if pub.Endpoint == "" {
		return fmt.Errorf("publish: endpoint required")
	}
	if pub.UnitID == 0 || pub.UnitID > 247 {
		return fmt.Errorf("publish: unit_id %d outside 1-247", pub.UnitID)
	}
	if pub.TimeoutMs < 0 {
		return fmt.Errorf("publish: timeout_ms must be >= 0")
	}

	if IsSerialEndpoint(pub.Endpoint) {
		if pub.BaudRate < 0 {
			return fmt.Errorf("publish: baud_rate must be >= 0")
		}
		switch strings.ToUpper(pub.Parity) {
		case "", "N", "E", "O":
		default:
			return fmt.Errorf("publish: parity %q must be N, E or O", pub.Parity)
		}
	} else if !strings.Contains(pub.Endpoint, ":") {
		return fmt.Errorf("publish: endpoint %q must be host:port or a serial device path", pub.Endpoint)
	}

	return nil
}

// IsSerialEndpoint reports whether endpoint names a serial device (Modbus RTU).
func IsSerialEndpoint(endpoint string) bool {
	return strings.HasPrefix(endpoint, "/dev/") || strings.HasPrefix(strings.ToUpper(endpoint), "COM")
}

// ParseTemperature interprets monitor.temperature.
// Empty and "probe" mean measure; anything else must be a Celsius number.
func ParseTemperature(s string) (fixed float32, fromProbe bool, err error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, TemperatureFromProbe) {
		return 0, true, nil
	}
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, false, fmt.Errorf("temperature %q: want %q or a Celsius value", s, TemperatureFromProbe)
	}
	return float32(v), false, nil
}
