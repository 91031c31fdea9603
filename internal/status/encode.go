// internal/status/encode.go
package status

import "math"

// Encode converts a Snapshot into the three status registers.
// No IO. No side effects.
func Encode(s Snapshot) []uint16 {
	regs := make([]uint16, SlotSecondsInError-SlotHealthCode+1)

	regs[SlotHealthCode-SlotHealthCode] = s.Health
	regs[SlotLastErrorCode-SlotHealthCode] = s.LastErrorCode
	regs[SlotSecondsInError-SlotHealthCode] = s.SecondsInError

	return regs
}

// EncodeReadings packs the three readings into ReadingSlots registers.
func EncodeReadings(mS, psu, tempC float32) []uint16 {
	regs := make([]uint16, ReadingSlots)

	putFloat(regs[SlotMilliSiemens:], mS)
	putFloat(regs[SlotSalinityPSU:], psu)
	putFloat(regs[SlotTemperature:], tempC)

	return regs
}

// EncodeBlock builds the full block: readings, status and probe name.
func EncodeBlock(mS, psu, tempC float32, s Snapshot, name string) []uint16 {
	regs := make([]uint16, BlockSize)

	copy(regs[SlotMilliSiemens:], EncodeReadings(mS, psu, tempC))
	copy(regs[SlotHealthCode:], Encode(s))
	copy(regs[SlotProbeNameStart:], EncodeName(name))

	return regs
}

// DecodeFloat reads a float32 back out of two registers (high word first).
func DecodeFloat(regs []uint16) float32 {
	return math.Float32frombits(uint32(regs[0])<<16 | uint32(regs[1]))
}

func putFloat(dst []uint16, v float32) {
	bits := math.Float32bits(v)
	dst[0] = uint16(bits >> 16)
	dst[1] = uint16(bits)
}

// EncodeName packs up to 16 ASCII characters into 8 registers.
// Each register stores two ASCII bytes in big-endian order.
func EncodeName(name string) []uint16 {
	out := make([]uint16, SlotProbeNameSlots)

	b := []byte(name)
	if len(b) > ProbeNameMaxChars {
		b = b[:ProbeNameMaxChars]
	}

	// sanitize to printable ASCII
	for i := 0; i < len(b); i++ {
		if b[i] < 0x20 || b[i] > 0x7E {
			b[i] = '?'
		}
	}

	for i := 0; i < ProbeNameMaxChars; i += 2 {
		var hi, lo byte
		if i < len(b) {
			hi = b[i]
		}
		if i+1 < len(b) {
			lo = b[i+1]
		}
		out[i/2] = uint16(hi)<<8 | uint16(lo)
	}

	return out
}
