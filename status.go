package ka3005p

import (
	"fmt"
	"strconv"
	"strings"
)

// SetPoints are the programmed voltage and current limits
type SetPoints struct {
	Voltage float32 `json:"voltage" yaml:"voltage"`
	Current float32 `json:"current" yaml:"current"`
}

// Status is a snapshot of the supply. Voltage and Current are the live
// output readings, not the set points.
type Status struct {
	Flags   Flags   `json:"flags" yaml:"flags"`
	Voltage float32 `json:"voltage" yaml:"voltage"`
	Current float32 `json:"current" yaml:"current"`

	// SetPoints is nil when the device was built WithSetPoints(false)
	SetPoints *SetPoints `json:"set_points,omitempty" yaml:"set_points,omitempty"`
}

func (s Status) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Voltage: %.2f, Current: %.3f\n", s.Voltage, s.Current)
	if s.SetPoints != nil {
		fmt.Fprintf(&b, "Set Voltage: %.2f, Set Current: %.3f\n", s.SetPoints.Voltage, s.SetPoints.Current)
	}
	fmt.Fprintf(&b, "Output: %s, Mode: %s, Beep: %s, Lock: %s",
		s.Flags.Output(), s.Flags.Channel1(), s.Flags.Beep(), s.Flags.Lock())
	return b.String()
}

// printable keeps only bytes in the printable ASCII range 32..126
func printable(reply []byte) string {
	out := make([]byte, 0, len(reply))
	for _, c := range reply {
		if c >= 32 && c <= 126 {
			out = append(out, c)
		}
	}
	return string(out)
}

// parseReading decodes a numeric reply such as "12.00"
func parseReading(query string, reply []byte) (float32, error) {
	text := strings.TrimSpace(printable(reply))
	v, err := strconv.ParseFloat(text, 32)
	if err != nil {
		return 0, &DecodeError{Query: query, Reply: reply, Err: err}
	}
	return float32(v), nil
}
