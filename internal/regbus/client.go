// internal/regbus/client.go
package regbus

import (
	"errors"
	"time"
)

// DefaultSettle is the firmware settle time after every bus transaction.
const DefaultSettle = 10 * time.Millisecond

// Sleeper abstracts blocking waits so tests can run without wall-clock delays.
type Sleeper interface {
	Sleep(d time.Duration)
}

// SleeperFunc adapts a function to Sleeper.
type SleeperFunc func(time.Duration)

func (f SleeperFunc) Sleep(d time.Duration) { f(d) }

// RealSleeper blocks on time.Sleep.
var RealSleeper Sleeper = SleeperFunc(time.Sleep)

// Config is the client timing config.
type Config struct {
	Settle  time.Duration // zero => DefaultSettle
	Sleeper Sleeper       // nil => RealSleeper
}

// Client is protocol-correct access to one device's register space.
// It owns the device's register pointer for its session and is not safe
// for concurrent use.
type Client struct {
	tr     Transport
	settle time.Duration
	sleep  Sleeper
}

// New wraps a transport.
func New(tr Transport, cfg Config) (*Client, error) {
	if tr == nil {
		return nil, errors.New("regbus: transport required")
	}
	if cfg.Settle <= 0 {
		cfg.Settle = DefaultSettle
	}
	if cfg.Sleeper == nil {
		cfg.Sleeper = RealSleeper
	}
	return &Client{tr: tr, settle: cfg.Settle, sleep: cfg.Sleeper}, nil
}

// Sleep blocks on the client's sleeper. Used by callers for firmware
// measurement delays so all waiting goes through one provider.
func (c *Client) Sleep(d time.Duration) {
	c.sleep.Sleep(d)
}

// Settle waits one settle interval.
func (c *Client) Settle() {
	c.sleep.Sleep(c.settle)
}

// SelectRegister points the device at addr, then settles.
func (c *Client) SelectRegister(addr byte) error {
	if err := c.tr.SelectRegister(addr); err != nil {
		return &BusError{Op: "select", Register: addr, Err: err}
	}
	c.Settle()
	return nil
}

// ReadByte reads one byte at the current pointer.
// The caller owns pointer selection and any settle afterwards.
func (c *Client) ReadByte() (byte, error) {
	v, err := c.tr.ReadByte()
	if err != nil {
		return 0, &BusError{Op: "read", Err: err}
	}
	return v, nil
}

// WriteByteAt writes value directly at addr, then settles.
func (c *Client) WriteByteAt(addr, value byte) error {
	if err := c.tr.WriteByteAt(addr, value); err != nil {
		return &BusError{Op: "write", Register: addr, Err: err}
	}
	c.Settle()
	return nil
}

// ReadByteAt selects addr and reads one byte from it.
func (c *Client) ReadByteAt(addr byte) (byte, error) {
	if err := c.SelectRegister(addr); err != nil {
		return 0, err
	}
	v, err := c.ReadByte()
	if err != nil {
		var be *BusError
		if errors.As(err, &be) {
			be.Register = addr
		}
		return 0, err
	}
	return v, nil
}

// ReadFloatRegister reads the float stored low byte first at base..base+3.
// Any failure aborts the remaining reads.
func (c *Client) ReadFloatRegister(base byte) (float32, error) {
	if err := c.SelectRegister(base); err != nil {
		return 0, err
	}

	var buf [FloatSize]byte
	for i := 0; i < FloatSize; i++ {
		v, err := c.tr.ReadByte()
		if err != nil {
			return 0, &BusError{Op: "read", Register: base + byte(i), Err: err}
		}
		buf[i] = v
		c.Settle()
	}

	return DecodeFloat(buf), nil
}

// WriteFloatRegister writes v low byte first at base..base+3.
// A failure part way leaves the device value undefined; nothing is rolled back.
func (c *Client) WriteFloatRegister(base byte, v float32) error {
	buf := EncodeFloat(v)

	if err := c.SelectRegister(base); err != nil {
		return err
	}

	for i := 0; i < FloatSize; i++ {
		if err := c.WriteByteAt(base+byte(i), buf[i]); err != nil {
			return err
		}
	}
	return nil
}
