// cmd/ecprobe/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/tamzrod/ecprobe/internal/config"
	"github.com/tamzrod/ecprobe/internal/ecprobe"
	"github.com/tamzrod/ecprobe/internal/monitor"
	"github.com/tamzrod/ecprobe/internal/publish"
	"github.com/tamzrod/ecprobe/internal/regbus"
	"github.com/tamzrod/ecprobe/internal/status"
)

const usage = `usage: ecprobe <config.yaml> <command> [args]

commands:
  info                                   versions, config flags and calibration
  temp                                   measure temperature (C)
  ec <tempC>                             measure EC (mS) compensated to tempC
  salinity <tempC>                       measure salinity (PSU)
  raw                                    raw EC reading
  cal-single|cal-low|cal-high <mS>       calibrate in a solution of known EC
  dual-point <refLow> <refHigh> <readLow> <readHigh>
  reset                                  clear calibration
  temp-comp on|off                       temperature compensation
  dual-point-mode on|off                 dual-point correction
  eeprom-read <addr>
  eeprom-write <addr> <value>
  set-address <addr>
  monitor                                sample on an interval (and publish if configured)`

func main() {
	if len(os.Args) < 3 {
		log.Fatal(usage)
	}

	cfgPath := os.Args[1]
	cmd := os.Args[2]
	args := os.Args[3:]

	// --------------------
	// Load + validate config
	// --------------------

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	if err := config.Validate(cfg); err != nil {
		log.Fatalf("config validation failed: %v", err)
	}
	config.Normalize(cfg)

	// --------------------
	// Open probe
	// --------------------

	probe, closeProbe, err := monitor.OpenProbe(cfg.Probe)
	if err != nil {
		log.Fatalf("probe open failed (probe=%s): %v", cfg.Probe.ID, err)
	}
	defer closeProbe()

	if cmd == "monitor" {
		if err := runMonitor(cfg, probe); err != nil {
			closeProbe()
			log.Fatalf("monitor failed (probe=%s): %v", cfg.Probe.ID, err)
		}
		return
	}

	if err := runCommand(probe, cmd, args); err != nil {
		closeProbe()
		log.Fatalf("%s failed (probe=%s): %v", cmd, cfg.Probe.ID, err)
	}
}

func runCommand(p *ecprobe.Probe, cmd string, args []string) error {
	switch cmd {
	case "info":
		return printInfo(p)

	case "temp":
		c, err := p.MeasureTemperature()
		if err != nil {
			return err
		}
		fmt.Printf("C: %.2f\nF: %.2f\n", c, ecprobe.Fahrenheit(c))

	case "ec":
		tc, err := floatArgs(args, 1)
		if err != nil {
			return err
		}
		ms, err := p.MeasureEC(tc[0])
		if err != nil {
			return err
		}
		ec := ecprobe.Conductivity(ms)
		fmt.Printf("mS: %.3f\nuS: %.1f\nPPM(500): %.0f\nPPM(640): %.0f\nPPM(700): %.0f\n",
			ec.MilliSiemens(), ec.MicroSiemens(), ec.PPM500(), ec.PPM640(), ec.PPM700())

	case "salinity":
		tc, err := floatArgs(args, 1)
		if err != nil {
			return err
		}
		psu, err := p.MeasureSalinity(tc[0])
		if err != nil {
			return err
		}
		fmt.Printf("PSU: %.3f\n", psu)

	case "raw":
		raw, err := p.MeasureRaw()
		if err != nil {
			return err
		}
		fmt.Printf("raw: %.3f\n", raw)

	case "cal-single", "cal-low", "cal-high":
		v, err := floatArgs(args, 1)
		if err != nil {
			return err
		}
		switch cmd {
		case "cal-single":
			return p.CalibrateSingle(v[0])
		case "cal-low":
			return p.CalibrateProbeLow(v[0])
		default:
			return p.CalibrateProbeHigh(v[0])
		}

	case "dual-point":
		v, err := floatArgs(args, 4)
		if err != nil {
			return err
		}
		return p.SetDualPointCalibration(v[0], v[1], v[2], v[3])

	case "reset":
		return p.Reset()

	case "temp-comp", "dual-point-mode":
		on, err := onOff(args)
		if err != nil {
			return err
		}
		if cmd == "temp-comp" {
			return p.UseTemperatureCompensation(on)
		}
		return p.UseDualPoint(on)

	case "eeprom-read":
		v, err := floatArgs(args, 1)
		if err != nil {
			return err
		}
		got, err := p.ReadEEPROM(v[0])
		if err != nil {
			return err
		}
		fmt.Printf("%g\n", got)

	case "eeprom-write":
		v, err := floatArgs(args, 2)
		if err != nil {
			return err
		}
		got, err := p.WriteEEPROM(v[0], v[1])
		if err != nil {
			return err
		}
		fmt.Printf("%g\n", got)

	case "set-address":
		if len(args) != 1 {
			return errors.New("set-address: want 1 argument")
		}
		addr, err := strconv.ParseUint(args[0], 0, 7)
		if err != nil {
			return fmt.Errorf("set-address: %w", err)
		}
		// The device stops answering at the old address; the next run must
		// use the new address in the config file.
		if err := p.SetBusAddress(uint16(addr), nil); err != nil {
			return err
		}
		fmt.Printf("address changed to 0x%02x; update probe.address in the config\n", addr)

	default:
		return fmt.Errorf("unknown command %q\n%s", cmd, usage)
	}

	return nil
}

func printInfo(p *ecprobe.Probe) error {
	ver, err := p.Version()
	if err != nil {
		return err
	}
	fw, err := p.Firmware()
	if err != nil {
		return err
	}
	flags, err := p.ConfigFlags()
	if err != nil {
		return err
	}
	cal, err := p.Calibration()
	if err != nil {
		return err
	}

	fmt.Printf("version: %d.%d\n", ver, fw)
	fmt.Printf("temp. compensation: %t\n", flags&(1<<ecprobe.ConfigBitTempComp) != 0)
	fmt.Printf("dual point: %t\n", flags&(1<<ecprobe.ConfigBitDualPoint) != 0)
	fmt.Printf("offset: %g\n", cal.Offset)
	fmt.Printf("low reference / read: %g / %g\n", cal.RefLow, cal.ReadLow)
	fmt.Printf("high reference / read: %g / %g\n", cal.RefHigh, cal.ReadHigh)
	fmt.Printf("temp. constant: %g\n", cal.TempConstant)
	fmt.Printf("temp. coefficient: %g\n", cal.TempCoefficient)
	return nil
}

// runMonitor samples on the configured interval and, if configured,
// publishes samples and probe status. It returns nil on SIGINT/SIGTERM and
// an error if the sampler or publisher cannot be set up.
func runMonitor(cfg *config.Config, probe *ecprobe.Probe) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sampler, err := monitor.Build(cfg, probe)
	if err != nil {
		return fmt.Errorf("monitor build: %w", err)
	}

	// ---- publisher (optional) ----
	var pub *publish.Publisher
	if cfg.Publish != nil {
		plan, err := publish.BuildPlan(cfg)
		if err != nil {
			return fmt.Errorf("publish plan: %w", err)
		}
		cli, err := publish.BuildClient(*cfg.Publish)
		if err != nil {
			return fmt.Errorf("publish client: %w", err)
		}
		defer cli.Close()

		pub, err = publish.New(plan, cli)
		if err != nil {
			return fmt.Errorf("publisher: %w", err)
		}
	}

	out := make(chan monitor.Sample)
	go sampler.Run(ctx, out)

	// Orchestrator (loop-owned state + 1Hz seconds ticker).
	// The publisher's first write carries the whole block, name included.
	var tracker status.Tracker

	secTicker := time.NewTicker(time.Second)
	defer secTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case res := <-out:
			if res.Err != nil {
				log.Printf("sample failed (probe=%s): %v", res.ProbeID, res.Err)
			} else {
				log.Printf("probe=%s C=%.2f mS=%.3f PSU=%.3f", res.ProbeID, res.TempC, res.MilliSiemens, res.SalinityPSU)
			}

			tracker.Observe(res.Err != nil, errorCode(res.Err))

			if pub == nil {
				continue
			}
			if err := pub.Publish(res, tracker.Snapshot()); err != nil {
				log.Printf("publish error (probe=%s): %v", res.ProbeID, err)
			}

		case <-secTicker.C:
			if !tracker.Tick() || pub == nil {
				continue
			}
			if err := pub.WriteStatus(tracker.Snapshot()); err != nil {
				log.Printf("status seconds tick write failed (probe=%s): %v", cfg.Probe.ID, err)
			}
		}
	}
}

// errorCode maps an error to a published status code.
func errorCode(err error) uint16 {
	if err == nil {
		return status.ErrorCodeNone
	}

	var be *regbus.BusError
	if errors.As(err, &be) {
		return status.ErrorCodeBus
	}
	return status.ErrorCodeGeneric
}

func floatArgs(args []string, n int) ([]float32, error) {
	if len(args) != n {
		return nil, fmt.Errorf("want %d argument(s), got %d", n, len(args))
	}
	out := make([]float32, n)
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 32)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		out[i] = float32(v)
	}
	return out, nil
}

func onOff(args []string) (bool, error) {
	if len(args) != 1 {
		return false, errors.New("want on|off")
	}
	switch args[0] {
	case "on", "true", "1":
		return true, nil
	case "off", "false", "0":
		return false, nil
	}
	return false, fmt.Errorf("want on|off, got %q", args[0])
}
