package ka3005p

import (
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestFlagsDecode(t *testing.T) {
	tests := []struct {
		raw      uint8
		channel1 Mode
		channel2 Mode
		beep     Switch
		lock     Lock
		output   Switch
	}{
		{0, ConstantCurrent, ConstantCurrent, Off, Unlocked, Off},
		{1, ConstantVoltage, ConstantCurrent, Off, Unlocked, Off},
		{2, ConstantCurrent, ConstantVoltage, Off, Unlocked, Off},
		{16, ConstantCurrent, ConstantCurrent, On, Unlocked, Off},
		{32, ConstantCurrent, ConstantCurrent, Off, Locked, Off},
		{64, ConstantCurrent, ConstantCurrent, Off, Unlocked, On},
		{0x51, ConstantVoltage, ConstantCurrent, On, Unlocked, On},
		// undefined bits 2, 3 and 7 change nothing
		{0x8c, ConstantCurrent, ConstantCurrent, Off, Unlocked, Off},
		{0xff, ConstantVoltage, ConstantVoltage, On, Locked, On},
	}

	for _, tt := range tests {
		f := Flags(tt.raw)
		if got := f.Channel1(); got != tt.channel1 {
			t.Errorf("Flags(%#x).Channel1() = %v, expected %v", tt.raw, got, tt.channel1)
		}
		if got := f.Channel2(); got != tt.channel2 {
			t.Errorf("Flags(%#x).Channel2() = %v, expected %v", tt.raw, got, tt.channel2)
		}
		if got := f.Beep(); got != tt.beep {
			t.Errorf("Flags(%#x).Beep() = %v, expected %v", tt.raw, got, tt.beep)
		}
		if got := f.Lock(); got != tt.lock {
			t.Errorf("Flags(%#x).Lock() = %v, expected %v", tt.raw, got, tt.lock)
		}
		if got := f.Output(); got != tt.output {
			t.Errorf("Flags(%#x).Output() = %v, expected %v", tt.raw, got, tt.output)
		}
		if f.Byte() != tt.raw {
			t.Errorf("Flags(%#x).Byte() = %#x", tt.raw, f.Byte())
		}
	}
}

// The switch sent with Power is the one the status byte reports back
func TestPowerSwitchMatchesOutputFlag(t *testing.T) {
	tests := []struct {
		s      Switch
		suffix string
		flags  Flags
	}{
		{On, "1", bitOutput},
		{Off, "0", 0},
	}

	for _, tt := range tests {
		if encoded := Power(tt.s).Encode(); !strings.HasSuffix(encoded, tt.suffix) {
			t.Errorf("Power(%v).Encode() = %q, expected suffix %q", tt.s, encoded, tt.suffix)
		}
		if got := tt.flags.Output(); got != tt.s {
			t.Errorf("Flags(%#x).Output() = %v, expected %v", tt.flags.Byte(), got, tt.s)
		}
	}
}

func TestFlagsUnknownChannel(t *testing.T) {
	if got := Flags(0xff).Mode(Channel(3)); got != ConstantCurrent {
		t.Errorf("Mode(3) = %v, expected ConstantCurrent", got)
	}
}

func TestFlagsJSON(t *testing.T) {
	data, err := json.Marshal(Flags(0x51))
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var got map[string]interface{}
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	expected := map[string]interface{}{
		"channel1": "CV",
		"channel2": "CC",
		"beep":     "on",
		"lock":     "unlocked",
		"output":   "on",
		"raw":      float64(0x51),
	}
	for k, v := range expected {
		if got[k] != v {
			t.Errorf("%s = %v, expected %v", k, got[k], v)
		}
	}
}

func TestFlagsYAML(t *testing.T) {
	data, err := yaml.Marshal(Flags(0x20))
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	out := string(data)
	for _, want := range []string{"lock: locked", "output: \"off\"", "channel1: CC"} {
		if !strings.Contains(out, want) {
			t.Errorf("YAML output missing %q:\n%s", want, out)
		}
	}
}
