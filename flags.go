package ka3005p

import "encoding/json"

// Channel selects an output channel in the status byte
type Channel int

const (
	Channel1 Channel = 1
	Channel2 Channel = 2
)

// Mode is the regulation mode of a channel
type Mode int

const (
	ConstantCurrent Mode = iota
	ConstantVoltage
)

func (m Mode) String() string {
	if m == ConstantVoltage {
		return "CV"
	}
	return "CC"
}

// MarshalText renders the mode as "CC" or "CV"
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// Lock is the front panel lock state
type Lock int

const (
	Unlocked Lock = iota
	Locked
)

func (l Lock) String() string {
	if l == Locked {
		return "Locked"
	}
	return "Unlocked"
}

// MarshalText renders the lock as "locked" or "unlocked"
func (l Lock) MarshalText() ([]byte, error) {
	if l == Locked {
		return []byte("locked"), nil
	}
	return []byte("unlocked"), nil
}

// Status byte bit assignments. Bits 2, 3 and 7 carry no defined meaning.
const (
	bitChannel1 = 1 << 0
	bitChannel2 = 1 << 1
	bitBeep     = 1 << 4
	bitLock     = 1 << 5
	bitOutput   = 1 << 6
)

// Flags is a read-only view of the status byte returned by STATUS?.
// Each accessor decodes one bit; bits do not interact.
type Flags uint8

// Byte returns the raw status byte
func (f Flags) Byte() byte {
	return byte(f)
}

// Mode decodes the regulation mode of ch. A clear bit means constant
// current. Channels other than 1 and 2 report ConstantCurrent.
func (f Flags) Mode(ch Channel) Mode {
	var mask Flags
	switch ch {
	case Channel1:
		mask = bitChannel1
	case Channel2:
		mask = bitChannel2
	}
	if mask != 0 && f&mask != 0 {
		return ConstantVoltage
	}
	return ConstantCurrent
}

// Channel1 is shorthand for Mode(Channel1)
func (f Flags) Channel1() Mode { return f.Mode(Channel1) }

// Channel2 is shorthand for Mode(Channel2)
func (f Flags) Channel2() Mode { return f.Mode(Channel2) }

// Beep decodes bit 4
func (f Flags) Beep() Switch { return SwitchFromBool(f&bitBeep != 0) }

// Lock decodes bit 5
func (f Flags) Lock() Lock {
	if f&bitLock != 0 {
		return Locked
	}
	return Unlocked
}

// Output decodes bit 6
func (f Flags) Output() Switch { return SwitchFromBool(f&bitOutput != 0) }

// flagsView is the structured form used when encoding Flags
type flagsView struct {
	Channel1 Mode   `json:"channel1" yaml:"channel1"`
	Channel2 Mode   `json:"channel2" yaml:"channel2"`
	Beep     Switch `json:"beep" yaml:"beep"`
	Lock     Lock   `json:"lock" yaml:"lock"`
	Output   Switch `json:"output" yaml:"output"`
	Raw      uint8  `json:"raw" yaml:"raw"`
}

func (f Flags) view() flagsView {
	return flagsView{
		Channel1: f.Channel1(),
		Channel2: f.Channel2(),
		Beep:     f.Beep(),
		Lock:     f.Lock(),
		Output:   f.Output(),
		Raw:      uint8(f),
	}
}

// MarshalJSON renders the decoded fields instead of the raw byte
func (f Flags) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.view())
}

// MarshalYAML mirrors MarshalJSON
func (f Flags) MarshalYAML() (interface{}, error) {
	return f.view(), nil
}
