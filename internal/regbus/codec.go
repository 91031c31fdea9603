// internal/regbus/codec.go
package regbus

import (
	"encoding/binary"
	"math"
)

// FloatSize is the number of consecutive byte registers one float occupies.
const FloatSize = 4

// EncodeFloat returns the IEEE-754 bits of v, low byte first.
// NaN payload and sign survive unchanged.
func EncodeFloat(v float32) [FloatSize]byte {
	var b [FloatSize]byte
	binary.LittleEndian.PutUint32(b[:], math.Float32bits(v))
	return b
}

// DecodeFloat is the inverse of EncodeFloat.
func DecodeFloat(b [FloatSize]byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b[:]))
}
