// internal/monitor/types.go
package monitor

import "time"

// Sample is the result of one measurement cycle.
type Sample struct {
	ProbeID string
	At      time.Time

	TempC        float32
	MilliSiemens float32
	SalinityPSU  float32

	Err error // non-nil means the cycle failed and the readings are zero
}
