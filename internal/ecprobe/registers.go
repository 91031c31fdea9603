// internal/ecprobe/registers.go
package ecprobe

import "time"

// DefaultAddress is the factory bus address of the probe interface.
const DefaultAddress uint16 = 0x3c

// ---- REGISTER MAP ----
// Float registers occupy four consecutive addresses from their base.
// Layout is firmware-defined and MUST NOT be configurable.

const (
	RegVersion         byte = 0  // 1 byte
	RegMilliSiemens    byte = 1  // float
	RegTemperature     byte = 5  // float, Celsius
	RegSolution        byte = 9  // float, calibration solution / indirect address
	RegTempCoefficient byte = 13 // float
	RegCalRefHigh      byte = 17 // float
	RegCalRefLow       byte = 21 // float
	RegCalReadHigh     byte = 25 // float
	RegCalReadLow      byte = 29 // float
	RegCalOffset       byte = 33 // float
	RegSalinityPSU     byte = 37 // float
	RegRaw             byte = 41 // float
	RegTempConstant    byte = 45 // float
	RegBuffer          byte = 49 // float, EEPROM read/write buffer
	RegFirmwareVersion byte = 53 // 1 byte
	RegConfig          byte = 54 // 1 byte, bit flags
	RegTask            byte = 55 // 1 byte, write-only trigger
)

// ---- TASK CODES ----

// Task is a byte written to RegTask to trigger one firmware action.
type Task byte

const (
	TaskMeasureEC      Task = 80
	TaskMeasureTemp    Task = 40
	TaskCalibrateProbe Task = 20
	TaskCalibrateLow   Task = 10
	TaskCalibrateHigh  Task = 8
	TaskChangeAddress  Task = 4
	TaskReadEEPROM     Task = 2
	TaskWriteEEPROM    Task = 1
)

// ---- CONFIG BITS ----

const (
	ConfigBitDualPoint byte = 0
	ConfigBitTempComp  byte = 1
)

// ---- TIMING ----

// MeasureDelay is the firmware conversion time after an EC,
// temperature or calibration task.
const MeasureDelay = 750 * time.Millisecond

// ---- DEFAULTS RESTORED BY Reset ----

const (
	DefaultTempConstant    float32 = 25.0
	DefaultTempCoefficient float32 = 0.019
)

// versionAbsent is what an unpopulated bus reads back.
const versionAbsent byte = 0xFF
