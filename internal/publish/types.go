// internal/publish/types.go
package publish

// Plan is the fully-built publish plan for one probe.
type Plan struct {
	ProbeID string
	UnitID  uint8
	Address uint16 // base holding register of the block
}

// endpointClient is the exact contract the publisher uses.
type endpointClient interface {
	WriteRegisters(unitID uint8, addr uint16, regs []uint16) error
}
