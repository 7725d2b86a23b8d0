package ka3005p

import "strconv"

// Command is a setting the supply accepts without replying with data.
//
// The set of commands is closed: every variant lives in this package and
// supplies its own wire encoding, so adding one cannot compile without
// deciding how it is sent.
type Command interface {
	// Encode returns the exact ASCII request the firmware expects
	Encode() string

	command()
}

// Power switches the output on or off
type Power Switch

// Beep enables or disables the key beeper
type Beep Switch

// OverVoltageProtection enables or disables OVP
type OverVoltageProtection Switch

// OverCurrentProtection enables or disables OCP
type OverCurrentProtection Switch

// Save stores the current panel settings into a memory slot
type Save uint32

// Load recalls the panel settings stored in a memory slot
type Load uint32

// Voltage sets the output voltage in volts
type Voltage float32

// Current sets the output current limit in amperes
type Current float32

// Compile-time check that every variant is a Command
var (
	_ Command = Power(On)
	_ Command = Beep(On)
	_ Command = OverVoltageProtection(On)
	_ Command = OverCurrentProtection(On)
	_ Command = Save(0)
	_ Command = Load(0)
	_ Command = Voltage(0)
	_ Command = Current(0)
)

func (c Power) Encode() string                 { return switchCode("OUT", Switch(c)) }
func (c Beep) Encode() string                  { return switchCode("BEEP", Switch(c)) }
func (c OverVoltageProtection) Encode() string { return switchCode("OVP", Switch(c)) }
func (c OverCurrentProtection) Encode() string { return switchCode("OCP", Switch(c)) }
func (c Save) Encode() string                  { return "SAV" + strconv.FormatUint(uint64(c), 10) }
func (c Load) Encode() string                  { return "RCL" + strconv.FormatUint(uint64(c), 10) }

// Encode formats the voltage with exactly two fractional digits; the
// firmware rejects any other precision.
func (c Voltage) Encode() string { return "VSET1:" + fixed(float32(c), 2) }

// Encode formats the current with exactly three fractional digits
func (c Current) Encode() string { return "ISET1:" + fixed(float32(c), 3) }

func (Power) command()                 {}
func (Beep) command()                  {}
func (OverVoltageProtection) command() {}
func (OverCurrentProtection) command() {}
func (Save) command()                  {}
func (Load) command()                  {}
func (Voltage) command()               {}
func (Current) command()               {}

func switchCode(prefix string, s Switch) string {
	if s == On {
		return prefix + "1"
	}
	return prefix + "0"
}

// fixed renders v with exactly digits fractional digits, rounding the
// exact binary value (so 4.999 becomes 5.00).
func fixed(v float32, digits int) string {
	return strconv.FormatFloat(float64(v), 'f', digits, 32)
}
