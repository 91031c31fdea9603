// internal/status/snapshot.go
package status

// Snapshot represents exactly what the publisher is allowed to deliver.
// It contains no logic and no memory of the past beyond current state.
type Snapshot struct {
	Health         uint16
	LastErrorCode  uint16
	SecondsInError uint16
}

// Tracker owns a Snapshot and applies sample outcomes and clock ticks to it.
// Each method reports whether the snapshot changed.
type Tracker struct {
	snap Snapshot
}

// Snapshot returns the current state.
func (t *Tracker) Snapshot() Snapshot {
	return t.snap
}

// Observe records one sample outcome. code is the error code for a
// failed sample and is ignored on success.
func (t *Tracker) Observe(failed bool, code uint16) bool {
	changed := false

	if !failed {
		// Recovery / OK
		if t.snap.Health != HealthOK {
			t.snap.Health = HealthOK
			changed = true
		}
		if t.snap.LastErrorCode != ErrorCodeNone {
			t.snap.LastErrorCode = ErrorCodeNone
			changed = true
		}
		if t.snap.SecondsInError != 0 {
			t.snap.SecondsInError = 0
			changed = true
		}
		return changed
	}

	if t.snap.Health != HealthError {
		t.snap.Health = HealthError
		changed = true
	}
	if t.snap.LastErrorCode != code {
		t.snap.LastErrorCode = code
		changed = true
	}

	// NOTE: seconds_in_error increments on Tick only.
	return changed
}

// Tick advances seconds_in_error by one while not OK. It never wraps.
func (t *Tracker) Tick() bool {
	if t.snap.Health == HealthOK {
		return false
	}
	if t.snap.SecondsInError >= SecondsInErrorMax {
		return false
	}
	t.snap.SecondsInError++
	return true
}
