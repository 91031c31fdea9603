// internal/status/status_test.go
package status

import (
	"math"
	"testing"
)

func TestTracker_ErrorThenRecovery(t *testing.T) {
	var tr Tracker

	if tr.Snapshot().Health != HealthUnknown {
		t.Fatalf("initial health must be unknown")
	}

	if !tr.Observe(true, ErrorCodeBus) {
		t.Fatalf("first error must change snapshot")
	}
	if tr.Observe(true, ErrorCodeBus) {
		t.Fatalf("repeated identical error must not change snapshot")
	}

	tr.Tick()
	tr.Tick()
	if got := tr.Snapshot().SecondsInError; got != 2 {
		t.Fatalf("seconds_in_error: got=%d want=2", got)
	}

	if !tr.Observe(false, 0) {
		t.Fatalf("recovery must change snapshot")
	}
	s := tr.Snapshot()
	if s.Health != HealthOK || s.LastErrorCode != ErrorCodeNone || s.SecondsInError != 0 {
		t.Fatalf("unexpected snapshot after recovery: %+v", s)
	}

	if tr.Tick() {
		t.Fatalf("tick while OK must not change snapshot")
	}
}

func TestTracker_TickSaturates(t *testing.T) {
	tr := Tracker{snap: Snapshot{Health: HealthError, SecondsInError: SecondsInErrorMax - 1}}

	if !tr.Tick() {
		t.Fatalf("expected tick to advance")
	}
	if tr.Tick() {
		t.Fatalf("tick must not wrap past %d", SecondsInErrorMax)
	}
	if tr.Snapshot().SecondsInError != SecondsInErrorMax {
		t.Fatalf("seconds_in_error: got=%d", tr.Snapshot().SecondsInError)
	}
}

func TestEncodeBlock_Layout(t *testing.T) {
	s := Snapshot{Health: HealthOK, LastErrorCode: 0, SecondsInError: 0}
	regs := EncodeBlock(1.413, 35.0, 22.1, s, "tank-1")

	if len(regs) != BlockSize {
		t.Fatalf("block size: got=%d want=%d", len(regs), BlockSize)
	}

	if got := DecodeFloat(regs[SlotMilliSiemens:]); got != 1.413 {
		t.Fatalf("mS: got=%v", got)
	}
	if got := DecodeFloat(regs[SlotSalinityPSU:]); got != 35.0 {
		t.Fatalf("psu: got=%v", got)
	}
	if got := DecodeFloat(regs[SlotTemperature:]); got != 22.1 {
		t.Fatalf("temp: got=%v", got)
	}
	if regs[SlotHealthCode] != HealthOK {
		t.Fatalf("health: got=%d", regs[SlotHealthCode])
	}

	// 't','a' packed high/low
	if regs[SlotProbeNameStart] != uint16('t')<<8|uint16('a') {
		t.Fatalf("name slot 0: got=0x%04x", regs[SlotProbeNameStart])
	}
}

func TestEncodeReadings_NaNSurvives(t *testing.T) {
	nan := math.Float32frombits(0x7fc00001)
	regs := EncodeReadings(nan, 0, 0)

	if got := math.Float32bits(DecodeFloat(regs[SlotMilliSiemens:])); got != 0x7fc00001 {
		t.Fatalf("NaN bits: got=0x%08x", got)
	}
}

func TestEncodeName_TruncatesAndSanitizes(t *testing.T) {
	regs := EncodeName("abcdefghijklmnopqrstu\x01")

	if len(regs) != SlotProbeNameSlots {
		t.Fatalf("name slots: got=%d", len(regs))
	}
	if regs[7] != uint16('o')<<8|uint16('p') {
		t.Fatalf("last name slot: got=0x%04x", regs[7])
	}

	regs = EncodeName("a\x01")
	if regs[0] != uint16('a')<<8|uint16('?') {
		t.Fatalf("sanitize: got=0x%04x", regs[0])
	}
}
