package ka3005p

import (
	"errors"
	"strings"
)

// Switch is a binary on/off state
type Switch int

const (
	Off Switch = iota
	On
)

var errInvalidSwitch = errors.New("value must be either 'on' or 'off'")

// SwitchFromBool maps true to On and false to Off
func SwitchFromBool(b bool) Switch {
	if b {
		return On
	}
	return Off
}

// Bool reports whether the switch is On
func (s Switch) Bool() bool {
	return s == On
}

// Toggle returns the opposite state
func (s Switch) Toggle() Switch {
	if s == On {
		return Off
	}
	return On
}

func (s Switch) String() string {
	if s == On {
		return "On"
	}
	return "Off"
}

// MarshalText renders the switch as "on" or "off"
func (s Switch) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(s.String())), nil
}

// UnmarshalText accepts "on" or "off" in any case
func (s *Switch) UnmarshalText(text []byte) error {
	v, err := ParseSwitch(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// ParseSwitch parses "on" or "off", ignoring case and surrounding space
func ParseSwitch(s string) (Switch, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "on":
		return On, nil
	case "off":
		return Off, nil
	default:
		return Off, errInvalidSwitch
	}
}
