// internal/config/config.go
package config

type Config struct {
	Probe   ProbeConfig    `yaml:"probe"`
	Monitor MonitorConfig  `yaml:"monitor"`
	Publish *PublishConfig `yaml:"publish"` // optional
}

// ---- PROBE ----

type ProbeConfig struct {
	ID        string `yaml:"id"`
	Bus       string `yaml:"bus"`
	Address   uint16 `yaml:"address"`
	SettleMs  int    `yaml:"settle_ms"`
	MeasureMs int    `yaml:"measure_ms"`
}

// ---- MONITOR ----

type MonitorConfig struct {
	IntervalMs int `yaml:"interval_ms"`

	// Temperature is "probe" (measure on each cycle) or a fixed Celsius value.
	Temperature string `yaml:"temperature"`
}

// ---- PUBLISH ----

// PublishConfig is the Modbus holding-register memory readings are delivered to.
// Endpoint "host:port" selects TCP; a device path selects RTU.
type PublishConfig struct {
	Endpoint  string `yaml:"endpoint"`
	UnitID    uint8  `yaml:"unit_id"`
	Address   uint16 `yaml:"address"`
	TimeoutMs int    `yaml:"timeout_ms"`

	// RTU only
	BaudRate int    `yaml:"baud_rate"`
	Parity   string `yaml:"parity"`
}
