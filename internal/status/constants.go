// internal/status/constants.go
package status

// Published block layout constants (holding registers, relative to the
// configured base address). These values define the protocol and MUST NOT
// be configurable.

// ---- READINGS ----
// Each reading is a float32 in two registers, high word first.

// SlotMilliSiemens holds the last EC reading in mS.
const SlotMilliSiemens = 0

// SlotSalinityPSU holds the last salinity reading in PSU.
const SlotSalinityPSU = 2

// SlotTemperature holds the temperature the readings were taken at, in °C.
const SlotTemperature = 4

// ReadingSlots is the number of registers the readings occupy.
const ReadingSlots = 6

// ---- STATUS ----

// SlotHealthCode holds the probe health state.
const SlotHealthCode = 6

// SlotLastErrorCode holds the last error code.
const SlotLastErrorCode = 7

// SlotSecondsInError holds the duration (in seconds) the probe has been in error.
const SlotSecondsInError = 8

// ---- PROBE NAME ----

// SlotProbeNameStart is the first slot used for the probe id.
// The name is always placed at the END of the block.
const SlotProbeNameStart = 9

// SlotProbeNameSlots is the number of slots reserved for the probe id.
const SlotProbeNameSlots = 8

// ---- BLOCK GEOMETRY ----

// BlockSize is the total number of registers in one published block.
const BlockSize = SlotProbeNameStart + SlotProbeNameSlots

// ---- LIMITS ----

// ProbeNameMaxChars is the maximum number of ASCII characters stored for the probe id.
const ProbeNameMaxChars = 16

// SecondsInErrorMax is where seconds_in_error saturates.
const SecondsInErrorMax = 65535

// ---- HEALTH CODES ----

// HealthUnknown represents the boot state, before the first sample.
const HealthUnknown uint16 = 0

// HealthOK represents a probe whose last sample succeeded.
const HealthOK uint16 = 1

// HealthError represents a probe whose last sample failed.
const HealthError uint16 = 2

// ---- ERROR CODES ----

const (
	ErrorCodeNone    uint16 = 0
	ErrorCodeGeneric uint16 = 1
	ErrorCodeBus     uint16 = 2
)
