// internal/publish/modbus/client.go
package modbus

import (
	"errors"
	"sync"
	"time"

	"github.com/goburrow/modbus"
)

// EndpointClient is a single Modbus connection (TCP or RTU).
// It serializes requests because it mutates SlaveId per write.
type EndpointClient struct {
	mu       sync.Mutex
	handler  handler
	setSlave func(uint8)
	client   modbus.Client
}

type handler interface {
	modbus.ClientHandler
	Connect() error
	Close() error
}

type Config struct {
	Endpoint string
	Serial   bool
	Timeout  time.Duration

	// RTU only
	BaudRate int
	Parity   string
}

func NewEndpointClient(cfg Config) (*EndpointClient, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("publish modbus: endpoint required")
	}

	c := &EndpointClient{}

	if cfg.Serial {
		h := modbus.NewRTUClientHandler(cfg.Endpoint)
		h.BaudRate = cfg.BaudRate
		h.DataBits = 8
		h.Parity = cfg.Parity
		h.StopBits = 1
		h.Timeout = cfg.Timeout
		c.handler = h
		c.setSlave = func(id uint8) { h.SlaveId = id }
	} else {
		h := modbus.NewTCPClientHandler(cfg.Endpoint)
		h.Timeout = cfg.Timeout
		c.handler = h
		c.setSlave = func(id uint8) { h.SlaveId = id }
	}

	if err := c.handler.Connect(); err != nil {
		return nil, err
	}
	c.client = modbus.NewClient(c.handler)

	return c, nil
}

func (c *EndpointClient) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.handler.Close()
}

func (c *EndpointClient) WriteRegisters(unitID uint8, addr uint16, regs []uint16) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.setSlave(unitID)

	qty := uint16(len(regs))
	payload := packRegisters(regs)

	_, err := c.client.WriteMultipleRegisters(addr, qty, payload)
	return err
}

// Modbus register memory order (BIG-ENDIAN)
func packRegisters(regs []uint16) []byte {
	out := make([]byte, len(regs)*2)
	for i, r := range regs {
		out[2*i] = byte(r >> 8)
		out[2*i+1] = byte(r)
	}
	return out
}
