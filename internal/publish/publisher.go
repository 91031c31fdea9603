// internal/publish/publisher.go
package publish

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tamzrod/ecprobe/internal/monitor"
	"github.com/tamzrod/ecprobe/internal/status"
)

// Publisher delivers samples and probe status into one Modbus memory.
// No interpretation: the snapshot is written verbatim.
type Publisher struct {
	plan Plan
	cli  endpointClient

	needFull bool
	last     status.Snapshot
	nameRegs []uint16
}

// New builds a publisher. The first status write re-asserts the full
// status + name region.
func New(plan Plan, cli endpointClient) (*Publisher, error) {
	if cli == nil {
		return nil, errors.New("publish: client required")
	}
	return &Publisher{
		plan:     plan,
		cli:      cli,
		needFull: true,
		last: status.Snapshot{
			Health:         status.HealthUnknown,
			LastErrorCode:  status.ErrorCodeNone,
			SecondsInError: 0,
		},
		nameRegs: status.EncodeName(plan.ProbeID),
	}, nil
}

// Publish writes the readings of a successful sample, then the snapshot.
// A failed sample leaves the previous readings in place. While the status
// region still needs a full write, a successful sample is published as the
// whole block in one request.
func (p *Publisher) Publish(s monitor.Sample, snap status.Snapshot) error {
	if s.Err == nil && p.needFull {
		regs := status.EncodeBlock(s.MilliSiemens, s.SalinityPSU, s.TempC, snap, p.plan.ProbeID)
		if err := p.cli.WriteRegisters(p.plan.UnitID, p.plan.Address, regs); err != nil {
			return fmt.Errorf("publish: block write failed: %w", err)
		}
		p.needFull = false
		p.last = snap
		return nil
	}

	var errs []string

	if s.Err == nil {
		regs := status.EncodeReadings(s.MilliSiemens, s.SalinityPSU, s.TempC)
		if err := p.cli.WriteRegisters(
			p.plan.UnitID,
			p.plan.Address+status.SlotMilliSiemens,
			regs,
		); err != nil {
			errs = append(errs, fmt.Sprintf("readings write failed: %v", err))
		}
	}

	if err := p.WriteStatus(snap); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return errors.New("publish: " + strings.Join(errs, " | "))
	}
	return nil
}

// WriteStatus delivers a status snapshot.
// On any write failure, the next call re-asserts the full status region.
func (p *Publisher) WriteStatus(s status.Snapshot) error {
	base := p.plan.Address

	// ------------------------------------------------------------
	// Full region write (identity re-assert)
	// ------------------------------------------------------------
	if p.needFull {
		regs := make([]uint16, 0, status.BlockSize-status.SlotHealthCode)
		regs = append(regs, status.Encode(s)...)
		regs = append(regs, p.nameRegs...)

		if err := p.cli.WriteRegisters(p.plan.UnitID, base+status.SlotHealthCode, regs); err != nil {
			p.needFull = true
			return fmt.Errorf("status full write failed: %w", err)
		}

		p.needFull = false
		p.last = s
		return nil
	}

	var errs []string

	slots := []struct {
		name string
		slot uint16
		last *uint16
		v    uint16
	}{
		{"health", status.SlotHealthCode, &p.last.Health, s.Health},
		{"last_error", status.SlotLastErrorCode, &p.last.LastErrorCode, s.LastErrorCode},
		{"seconds_in_error", status.SlotSecondsInError, &p.last.SecondsInError, s.SecondsInError},
	}

	for _, sl := range slots {
		if *sl.last == sl.v {
			continue
		}
		if err := p.cli.WriteRegisters(p.plan.UnitID, base+sl.slot, []uint16{sl.v}); err != nil {
			errs = append(errs, fmt.Sprintf("slot %s write failed: %v", sl.name, err))
			continue
		}
		*sl.last = sl.v
	}

	if len(errs) > 0 {
		// Any partial failure introduces doubt; re-assert on next call.
		p.needFull = true
		return errors.New("status " + strings.Join(errs, " | "))
	}

	return nil
}
