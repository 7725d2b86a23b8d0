package ka3005p

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseCommand converts a verb and its arguments, as typed on a command
// line, into a Command:
//
//	power on | beep off | ovp on | ocp off
//	voltage 12.5 | current 0.25
//	save 1 | load 1
//
// Verbs that name a query or a mode rather than a setting (status,
// identify, list, interactive) return an error wrapping ErrUnsupported.
func ParseCommand(fields []string) (Command, error) {
	if len(fields) == 0 {
		return nil, errors.New("empty command")
	}
	verb := strings.ToLower(fields[0])
	args := fields[1:]

	switch verb {
	case "power", "beep", "ovp", "ocp":
		s, err := switchArg(verb, args)
		if err != nil {
			return nil, err
		}
		switch verb {
		case "power":
			return Power(s), nil
		case "beep":
			return Beep(s), nil
		case "ovp":
			return OverVoltageProtection(s), nil
		default:
			return OverCurrentProtection(s), nil
		}

	case "voltage", "current":
		v, err := floatArg(verb, args)
		if err != nil {
			return nil, err
		}
		if verb == "voltage" {
			return Voltage(v), nil
		}
		return Current(v), nil

	case "save", "load":
		slot, err := slotArg(verb, args)
		if err != nil {
			return nil, err
		}
		if verb == "save" {
			return Save(slot), nil
		}
		return Load(slot), nil

	case "status", "identify", "list", "interactive":
		return nil, fmt.Errorf("%s: %w", verb, ErrUnsupported)

	default:
		return nil, fmt.Errorf("unknown command %q", fields[0])
	}
}

func oneArg(verb string, args []string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("%s expects exactly one argument, got %d", verb, len(args))
	}
	return args[0], nil
}

func switchArg(verb string, args []string) (Switch, error) {
	arg, err := oneArg(verb, args)
	if err != nil {
		return Off, err
	}
	s, err := ParseSwitch(arg)
	if err != nil {
		return Off, fmt.Errorf("%s: %w", verb, err)
	}
	return s, nil
}

func floatArg(verb string, args []string) (float32, error) {
	arg, err := oneArg(verb, args)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(arg, 32)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid number %q", verb, arg)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, fmt.Errorf("%s must be a non-negative number, got %q", verb, arg)
	}
	return float32(v), nil
}

func slotArg(verb string, args []string) (uint32, error) {
	arg, err := oneArg(verb, args)
	if err != nil {
		return 0, err
	}
	slot, err := strconv.ParseUint(arg, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid memory slot %q", verb, arg)
	}
	return uint32(slot), nil
}
