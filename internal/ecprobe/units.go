// internal/ecprobe/units.go
package ecprobe

// Conductivity is an EC reading in milliSiemens.
// Conversions are plain arithmetic; NaN stays NaN.
type Conductivity float32

func (c Conductivity) MilliSiemens() float32 { return float32(c) }
func (c Conductivity) Siemens() float32      { return float32(c) / 1000 }
func (c Conductivity) MicroSiemens() float32 { return float32(c) * 1000 }

// PPM500 is total dissolved solids using the 500 (NaCl) conversion factor.
func (c Conductivity) PPM500() float32 { return float32(c) * 500 }

// PPM640 uses the 640 (EC/TDS "442") factor.
func (c Conductivity) PPM640() float32 { return float32(c) * 640 }

// PPM700 uses the 700 (KCl) factor.
func (c Conductivity) PPM700() float32 { return float32(c) * 700 }

// Fahrenheit converts Celsius.
func Fahrenheit(c float32) float32 {
	return c*9/5 + 32
}
