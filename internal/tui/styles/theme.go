package styles

import (
	"github.com/allbin/go-ka3005p"
	"github.com/allbin/go-ka3005p/internal/tui/colors"
	"github.com/charmbracelet/lipgloss"
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colors.Mauve).
			Background(colors.Surface0).
			Padding(0, 1)

	LabelStyle = lipgloss.NewStyle().
			Foreground(colors.Subtext0)

	VoltageStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colors.Volts)

	CurrentStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colors.Amps)

	SetPointStyle = lipgloss.NewStyle().
			Foreground(colors.Subtext1).
			Faint(true)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colors.Surface2).
			Padding(0, 2)

	ContentBorderStyle = lipgloss.NewStyle().
				BorderTop(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(colors.Surface1)

	InputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colors.Surface2).
			Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colors.Red)

	InfoStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colors.Mauve)
)

// SwitchStyle colors an on/off badge
func SwitchStyle(s ka3005p.Switch) lipgloss.Style {
	style := lipgloss.NewStyle().Bold(true)
	if s == ka3005p.On {
		return style.Foreground(colors.SwitchOn)
	}
	return style.Foreground(colors.SwitchOff)
}

// ModeStyle colors the CV/CC regulation badge
func ModeStyle(m ka3005p.Mode) lipgloss.Style {
	style := lipgloss.NewStyle().Bold(true)
	if m == ka3005p.ConstantVoltage {
		return style.Foreground(colors.ConstantVoltage)
	}
	return style.Foreground(colors.ConstantCurrent)
}

type StatusType int

const (
	StatusConnected StatusType = iota
	StatusDisconnected
	StatusConnecting
	StatusError
)

func GetStatusStyle(status StatusType) lipgloss.Style {
	switch status {
	case StatusConnected:
		return lipgloss.NewStyle().Foreground(colors.Green).Bold(true)
	case StatusConnecting:
		return lipgloss.NewStyle().Foreground(colors.Yellow).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(colors.Red).Bold(true)
	}
}
