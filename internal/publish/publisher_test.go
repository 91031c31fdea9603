// internal/publish/publisher_test.go
package publish

import (
	"errors"
	"testing"

	"github.com/tamzrod/ecprobe/internal/config"
	"github.com/tamzrod/ecprobe/internal/monitor"
	"github.com/tamzrod/ecprobe/internal/status"
)

// ---- fake endpoint client ----

type fakeEndpointClient struct {
	writes []writeCall
	fail   bool
}

type writeCall struct {
	unitID uint8
	addr   uint16
	regs   []uint16
}

func (f *fakeEndpointClient) WriteRegisters(unitID uint8, addr uint16, regs []uint16) error {
	if f.fail {
		return errors.New("endpoint down")
	}
	f.writes = append(f.writes, writeCall{unitID: unitID, addr: addr, regs: regs})
	return nil
}

func newPublisher(t *testing.T, cli *fakeEndpointClient) *Publisher {
	t.Helper()
	p, err := New(Plan{ProbeID: "tank-1", UnitID: 7, Address: 100}, cli)
	if err != nil {
		t.Fatalf("New() err=%v", err)
	}
	return p
}

// ---- tests ----

func TestPublish_FirstWriteIsFullBlock(t *testing.T) {
	cli := &fakeEndpointClient{}
	p := newPublisher(t, cli)

	sample := monitor.Sample{ProbeID: "tank-1", TempC: 22.1, MilliSiemens: 1.413, SalinityPSU: 35}
	snap := status.Snapshot{Health: status.HealthOK}

	if err := p.Publish(sample, snap); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(cli.writes) != 1 {
		t.Fatalf("expected one full block write, got %d", len(cli.writes))
	}

	w := cli.writes[0]
	if w.unitID != 7 || w.addr != 100 || len(w.regs) != status.BlockSize {
		t.Fatalf("unexpected block write: unit=%d addr=%d len=%d", w.unitID, w.addr, len(w.regs))
	}
	want := status.EncodeBlock(1.413, 35, 22.1, snap, "tank-1")
	for i := range want {
		if w.regs[i] != want[i] {
			t.Fatalf("slot %d: got=0x%04x want=0x%04x", i, w.regs[i], want[i])
		}
	}
	if got := status.DecodeFloat(w.regs[status.SlotMilliSiemens:]); got != 1.413 {
		t.Fatalf("mS: got=%v", got)
	}
	name := status.EncodeName("tank-1")
	for i := range name {
		if w.regs[status.SlotProbeNameStart+i] != name[i] {
			t.Fatalf("name slot %d mismatch", i)
		}
	}
}

func TestPublish_AfterBlockWritesReadingsAndChangedSlots(t *testing.T) {
	cli := &fakeEndpointClient{}
	p := newPublisher(t, cli)

	sample := monitor.Sample{ProbeID: "tank-1", TempC: 22.1, MilliSiemens: 1.413, SalinityPSU: 35}
	if err := p.Publish(sample, status.Snapshot{Health: status.HealthOK}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cli.writes = nil

	if err := p.Publish(sample, status.Snapshot{Health: status.HealthOK}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cli.writes) != 1 {
		t.Fatalf("expected readings write only, got %d", len(cli.writes))
	}
	rd := cli.writes[0]
	if rd.addr != 100 || len(rd.regs) != status.ReadingSlots {
		t.Fatalf("unexpected readings write: %+v", rd)
	}
}

func TestPublish_FailedSampleWritesStatusRegionOnly(t *testing.T) {
	cli := &fakeEndpointClient{}
	p := newPublisher(t, cli)

	sample := monitor.Sample{ProbeID: "tank-1", Err: errors.New("bus")}
	if err := p.Publish(sample, status.Snapshot{Health: status.HealthError}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cli.writes) != 1 {
		t.Fatalf("expected one status region write, got %d", len(cli.writes))
	}
	st := cli.writes[0]
	if st.addr != 100+status.SlotHealthCode || len(st.regs) != status.BlockSize-status.SlotHealthCode {
		t.Fatalf("unexpected status write: addr=%d len=%d", st.addr, len(st.regs))
	}
}

func TestPublish_FailedSampleKeepsReadings(t *testing.T) {
	cli := &fakeEndpointClient{}
	p := newPublisher(t, cli)

	sample := monitor.Sample{ProbeID: "tank-1", Err: errors.New("bus")}
	snap := status.Snapshot{Health: status.HealthError, LastErrorCode: status.ErrorCodeBus}

	if err := p.Publish(sample, snap); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, w := range cli.writes {
		if w.addr < 100+status.ReadingSlots {
			t.Fatalf("readings must not be written for a failed sample: %+v", w)
		}
	}
}

func TestWriteStatus_IncrementalOnlyChangedSlots(t *testing.T) {
	cli := &fakeEndpointClient{}
	p := newPublisher(t, cli)

	if err := p.WriteStatus(status.Snapshot{Health: status.HealthError, LastErrorCode: 2, SecondsInError: 3}); err != nil {
		t.Fatalf("full write failed: %v", err)
	}
	cli.writes = nil

	// recovery changes all three
	if err := p.WriteStatus(status.Snapshot{Health: status.HealthOK}); err != nil {
		t.Fatalf("recovery write failed: %v", err)
	}
	if len(cli.writes) != 3 {
		t.Fatalf("expected 3 single-slot writes, got %d", len(cli.writes))
	}

	last := cli.writes[2]
	if last.addr != 100+status.SlotSecondsInError || len(last.regs) != 1 || last.regs[0] != 0 {
		t.Fatalf("seconds_in_error not reset: %+v", last)
	}

	cli.writes = nil
	if err := p.WriteStatus(status.Snapshot{Health: status.HealthOK}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cli.writes) != 0 {
		t.Fatalf("unchanged snapshot must not write, got %d writes", len(cli.writes))
	}
}

func TestWriteStatus_FailureForcesFullReassert(t *testing.T) {
	cli := &fakeEndpointClient{}
	p := newPublisher(t, cli)

	_ = p.WriteStatus(status.Snapshot{Health: status.HealthOK})

	cli.fail = true
	if err := p.WriteStatus(status.Snapshot{Health: status.HealthError, LastErrorCode: 1}); err == nil {
		t.Fatalf("expected error")
	}

	cli.fail = false
	cli.writes = nil
	if err := p.WriteStatus(status.Snapshot{Health: status.HealthError, LastErrorCode: 1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cli.writes) != 1 || len(cli.writes[0].regs) != status.BlockSize-status.SlotHealthCode {
		t.Fatalf("expected one full re-assert write, got %+v", cli.writes)
	}
}

func TestNew_RequiresClient(t *testing.T) {
	if _, err := New(Plan{}, nil); err == nil {
		t.Fatalf("expected error for nil client")
	}
}

func TestBuildPlan(t *testing.T) {
	c := &config.Config{
		Probe:   config.ProbeConfig{ID: "tank-1"},
		Publish: &config.PublishConfig{Endpoint: "127.0.0.1:502", UnitID: 4, Address: 40},
	}

	plan, err := BuildPlan(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan.ProbeID != "tank-1" || plan.UnitID != 4 || plan.Address != 40 {
		t.Fatalf("unexpected plan: %+v", plan)
	}

	c.Publish = nil
	if _, err := BuildPlan(c); err == nil {
		t.Fatalf("expected error without publish config")
	}
}
