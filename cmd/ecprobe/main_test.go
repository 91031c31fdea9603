// cmd/ecprobe/main_test.go
package main

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/tamzrod/ecprobe/internal/config"
	"github.com/tamzrod/ecprobe/internal/ecprobe"
	"github.com/tamzrod/ecprobe/internal/regbus"
	"github.com/tamzrod/ecprobe/internal/regbus/mockbus"
	"github.com/tamzrod/ecprobe/internal/status"
)

func TestErrorCode(t *testing.T) {
	if errorCode(nil) != status.ErrorCodeNone {
		t.Fatalf("nil must map to none")
	}
	be := &regbus.BusError{Op: "read", Err: errors.New("nack")}
	if got := errorCode(fmt.Errorf("monitor: ec: %w", be)); got != status.ErrorCodeBus {
		t.Fatalf("wrapped BusError: got=%d want=%d", got, status.ErrorCodeBus)
	}
	if got := errorCode(errors.New("x")); got != status.ErrorCodeGeneric {
		t.Fatalf("generic: got=%d", got)
	}
}

func TestFloatArgs(t *testing.T) {
	v, err := floatArgs([]string{"50", "58.5"}, 2)
	if err != nil || v[0] != 50 || v[1] != 58.5 {
		t.Fatalf("got %v, %v", v, err)
	}
	if _, err := floatArgs([]string{"1"}, 2); err == nil {
		t.Fatalf("expected arity error")
	}
	if _, err := floatArgs([]string{"abc"}, 1); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestOnOff(t *testing.T) {
	if on, err := onOff([]string{"on"}); err != nil || !on {
		t.Fatalf("on: %v %v", on, err)
	}
	if on, err := onOff([]string{"off"}); err != nil || on {
		t.Fatalf("off: %v %v", on, err)
	}
	if _, err := onOff([]string{"maybe"}); err == nil {
		t.Fatalf("expected error")
	}
}

func TestRunCommand_OnSimulatedDevice(t *testing.T) {
	dev := mockbus.New()
	bus, _ := regbus.New(dev, regbus.Config{Sleeper: &mockbus.Clock{}})
	p, _ := ecprobe.New(bus, ecprobe.Config{})

	if err := runCommand(p, "dual-point", []string{"50", "58", "48", "56"}); err != nil {
		t.Fatalf("dual-point: %v", err)
	}
	if v, _ := p.CalibrateHighReading(); v != 56 {
		t.Fatalf("read high: got=%v", v)
	}

	if err := runCommand(p, "temp-comp", []string{"on"}); err != nil {
		t.Fatalf("temp-comp: %v", err)
	}
	if dev.Regs[ecprobe.RegConfig] != 0x02 {
		t.Fatalf("config: got=0x%02x", dev.Regs[ecprobe.RegConfig])
	}

	if err := runCommand(p, "info", nil); err != nil {
		t.Fatalf("info: %v", err)
	}

	if err := runCommand(p, "bogus", nil); err == nil {
		t.Fatalf("expected error for unknown command")
	}
}

func TestRunMonitor_SetupFailuresReturnError(t *testing.T) {
	dev := mockbus.New()
	bus, _ := regbus.New(dev, regbus.Config{Sleeper: &mockbus.Clock{}})
	p, _ := ecprobe.New(bus, ecprobe.Config{})

	badTemp := &config.Config{
		Probe:   config.ProbeConfig{ID: "tank-1", Bus: "/dev/i2c-1", Address: 0x3c},
		Monitor: config.MonitorConfig{IntervalMs: 1000, Temperature: "warm"},
	}
	if err := runMonitor(badTemp, p); err == nil || !strings.Contains(err.Error(), "monitor build") {
		t.Fatalf("bad temperature: got %v", err)
	}

	noEndpoint := &config.Config{
		Probe:   config.ProbeConfig{ID: "tank-1", Bus: "/dev/i2c-1", Address: 0x3c},
		Monitor: config.MonitorConfig{IntervalMs: 1000, Temperature: "probe"},
		Publish: &config.PublishConfig{UnitID: 1},
	}
	if err := runMonitor(noEndpoint, p); err == nil || !strings.Contains(err.Error(), "publish client") {
		t.Fatalf("publish client: got %v", err)
	}

	if len(dev.Log) != 0 {
		t.Fatalf("setup failure must not touch the bus, got %v", dev.Log)
	}
}
