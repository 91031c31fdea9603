// internal/regbus/mockbus/mockbus.go

// Package mockbus is an in-memory register device for tests.
// It implements regbus.Transport over a 256-byte register file with
// an auto-incrementing pointer, a task hook, a call log and failure injection.
package mockbus

import (
	"errors"
	"fmt"
	"time"
)

// ErrInjected is returned by an operation selected by FailOn.
var ErrInjected = errors.New("mockbus: injected bus failure")

// Op is one logged transport call.
type Op struct {
	Kind  string // "select", "read", "write"
	Addr  byte
	Value byte
}

func (o Op) String() string {
	return fmt.Sprintf("%s(%d,%d)", o.Kind, o.Addr, o.Value)
}

// Device is a simulated register device.
type Device struct {
	Regs    [256]byte
	Pointer byte
	Log     []Op

	// OnWrite, if set, runs after every successful WriteByteAt.
	// It is how tests model firmware reacting to the task register.
	OnWrite func(d *Device, addr, value byte)

	// FailOn fails the n-th call (1-based) of the given kind.
	failKind string
	failN    int
	counts   map[string]int
}

// New returns an empty device.
func New() *Device {
	return &Device{counts: map[string]int{}}
}

// FailOn arranges for the n-th call of kind ("select", "read", "write") to fail.
func (d *Device) FailOn(kind string, n int) {
	d.failKind = kind
	d.failN = n
}

// Count returns how many calls of kind reached the device (failed ones included).
func (d *Device) Count(kind string) int {
	return d.counts[kind]
}

// Writes returns the logged writes in order.
func (d *Device) Writes() []Op {
	var out []Op
	for _, op := range d.Log {
		if op.Kind == "write" {
			out = append(out, op)
		}
	}
	return out
}

// Reset clears the call log and counters, keeping register contents.
func (d *Device) Reset() {
	d.Log = nil
	d.counts = map[string]int{}
}

func (d *Device) hit(kind string) error {
	if d.counts == nil {
		d.counts = map[string]int{}
	}
	d.counts[kind]++
	if d.failKind == kind && d.counts[kind] == d.failN {
		return ErrInjected
	}
	return nil
}

// ---- regbus.Transport ----

func (d *Device) SelectRegister(addr byte) error {
	if err := d.hit("select"); err != nil {
		return err
	}
	d.Pointer = addr
	d.Log = append(d.Log, Op{Kind: "select", Addr: addr})
	return nil
}

func (d *Device) ReadByte() (byte, error) {
	if err := d.hit("read"); err != nil {
		return 0, err
	}
	v := d.Regs[d.Pointer]
	d.Log = append(d.Log, Op{Kind: "read", Addr: d.Pointer, Value: v})
	d.Pointer++
	return v, nil
}

func (d *Device) WriteByteAt(addr, value byte) error {
	if err := d.hit("write"); err != nil {
		return err
	}
	d.Regs[addr] = value
	d.Log = append(d.Log, Op{Kind: "write", Addr: addr, Value: value})
	if d.OnWrite != nil {
		d.OnWrite(d, addr, value)
	}
	return nil
}

// ---- sleeper ----

// Clock records requested sleeps instead of blocking.
type Clock struct {
	Sleeps []time.Duration
}

func (c *Clock) Sleep(dur time.Duration) {
	c.Sleeps = append(c.Sleeps, dur)
}

// Total is the sum of all recorded sleeps.
func (c *Clock) Total() time.Duration {
	var t time.Duration
	for _, s := range c.Sleeps {
		t += s
	}
	return t
}
