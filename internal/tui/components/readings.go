package components

import (
	"fmt"
	"strings"

	"github.com/allbin/go-ka3005p"
	"github.com/allbin/go-ka3005p/internal/tui/styles"
	"github.com/charmbracelet/lipgloss"
)

// FormatVolts renders a voltage with the front panel's precision
func FormatVolts(v float32) string {
	return fmt.Sprintf("%05.2f V", v)
}

// FormatAmps renders a current with the front panel's precision
func FormatAmps(a float32) string {
	return fmt.Sprintf("%.3f A", a)
}

// Readings is the large voltage/current panel with the decoded flags
type Readings struct {
	status *ka3005p.Status
	width  int
}

func NewReadings() *Readings {
	return &Readings{}
}

func (r *Readings) SetStatus(status ka3005p.Status) {
	r.status = &status
}

func (r *Readings) SetWidth(width int) {
	r.width = width
}

func (r *Readings) HasStatus() bool {
	return r.status != nil
}

func (r *Readings) View() string {
	if r.status == nil {
		return styles.PanelStyle.Render(styles.LabelStyle.Render("Waiting for first reading..."))
	}
	s := r.status

	volts := lipgloss.JoinVertical(lipgloss.Left,
		styles.LabelStyle.Render("VOLTAGE"),
		styles.VoltageStyle.Render(FormatVolts(s.Voltage)),
		r.setPoint(func(sp *ka3005p.SetPoints) string { return FormatVolts(sp.Voltage) }),
	)
	amps := lipgloss.JoinVertical(lipgloss.Left,
		styles.LabelStyle.Render("CURRENT"),
		styles.CurrentStyle.Render(FormatAmps(s.Current)),
		r.setPoint(func(sp *ka3005p.SetPoints) string { return FormatAmps(sp.Current) }),
	)

	flags := []string{
		badge("OUT", s.Flags.Output().String(), styles.SwitchStyle(s.Flags.Output())),
		badge("MODE", s.Flags.Channel1().String(), styles.ModeStyle(s.Flags.Channel1())),
		badge("BEEP", s.Flags.Beep().String(), styles.SwitchStyle(s.Flags.Beep())),
		badge("LOCK", s.Flags.Lock().String(), styles.SwitchStyle(ka3005p.SwitchFromBool(s.Flags.Lock() == ka3005p.Locked))),
	}

	gap := lipgloss.NewStyle().Width(4).Render("")
	top := lipgloss.JoinHorizontal(lipgloss.Top, volts, gap, amps)
	body := lipgloss.JoinVertical(lipgloss.Left, top, "", strings.Join(flags, "  "))

	panel := styles.PanelStyle
	if r.width > 4 {
		panel = panel.Width(r.width - 2)
	}
	return panel.Render(body)
}

func (r *Readings) setPoint(format func(*ka3005p.SetPoints) string) string {
	if r.status.SetPoints == nil {
		return ""
	}
	return styles.SetPointStyle.Render("set " + format(r.status.SetPoints))
}

func badge(label, value string, style lipgloss.Style) string {
	return styles.LabelStyle.Render(label+" ") + style.Render(value)
}
