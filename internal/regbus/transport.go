// internal/regbus/transport.go
package regbus

// Transport is the byte-addressable bus boundary.
// One Transport talks to exactly one device address.
//
// SelectRegister moves the device's register pointer.
// ReadByte reads at the pointer (the device advances it).
// WriteByteAt writes one byte directly to a register address.
type Transport interface {
	SelectRegister(addr byte) error
	ReadByte() (byte, error)
	WriteByteAt(addr, value byte) error
}
