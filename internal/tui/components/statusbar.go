package components

import (
	"fmt"
	"time"

	"github.com/allbin/go-ka3005p/internal/tui/colors"
	"github.com/charmbracelet/lipgloss"
)

// ConnectionInfo describes the serial line shown in the status bar
type ConnectionInfo struct {
	Line     string // e.g. "9600 8N1"
	Identity string
	Interval time.Duration
}

type StatusBar struct {
	portPath       string
	status         string
	err            error
	width          int
	connected      bool
	lastPoll       time.Time
	connectionInfo *ConnectionInfo
}

func NewStatusBar(portPath string) *StatusBar {
	return &StatusBar{
		portPath: portPath,
		status:   "Initializing...",
	}
}

func (sb *StatusBar) SetWidth(width int) {
	sb.width = width
}

func (sb *StatusBar) SetConnectionInfo(info *ConnectionInfo) {
	sb.connectionInfo = info
}

func (sb *StatusBar) SetPolled(at time.Time) {
	sb.lastPoll = at
	sb.connected = true
	sb.err = nil
	sb.status = "Polling"
}

func (sb *StatusBar) SetError(err error) {
	sb.err = err
	if err != nil {
		sb.status = fmt.Sprintf("Poll failed: %v", err)
	}
}

func (sb *StatusBar) Err() error {
	return sb.err
}

// Render draws the single-line bar: mode, port, health, line info, time
func (sb *StatusBar) Render(inputMode string) string {
	terminalWidth := sb.width
	if terminalWidth <= 0 {
		terminalWidth = 80
	}

	modeColor := colors.Blue
	if inputMode == "INSERT" {
		modeColor = colors.Green
	}
	mode := lipgloss.NewStyle().
		Foreground(colors.Base).
		Background(modeColor).
		Bold(true).
		Padding(0, 1).
		Render(inputMode)

	port := lipgloss.NewStyle().
		Foreground(colors.Mauve).
		Bold(true).
		Padding(0, 1).
		Render(sb.portPath)

	var indicator lipgloss.Style
	var symbol string
	switch {
	case sb.err != nil:
		indicator = lipgloss.NewStyle().Foreground(colors.Red)
		symbol = "✗"
	case sb.connected:
		indicator = lipgloss.NewStyle().Foreground(colors.Green)
		symbol = "●"
	default:
		indicator = lipgloss.NewStyle().Foreground(colors.Yellow)
		symbol = "○"
	}
	health := indicator.Render(symbol)

	info := "⚡ ka3005p"
	if sb.connectionInfo != nil {
		info = fmt.Sprintf("⚡ %s every %s", sb.connectionInfo.Line, sb.connectionInfo.Interval)
		if sb.connectionInfo.Identity != "" {
			info = sb.connectionInfo.Identity + "  " + info
		}
	}
	details := lipgloss.NewStyle().
		Foreground(colors.Subtext0).
		Padding(0, 1).
		Render(info)

	polled := "--:--:--"
	if !sb.lastPoll.IsZero() {
		polled = sb.lastPoll.Format("15:04:05")
	}
	clock := lipgloss.NewStyle().
		Foreground(colors.Subtext1).
		Padding(0, 1).
		Render(polled)

	divider := lipgloss.NewStyle().
		Foreground(colors.Surface2).
		Padding(0, 1).
		Render("│")

	left := lipgloss.JoinHorizontal(lipgloss.Left, mode, port, health, divider)
	right := lipgloss.JoinHorizontal(lipgloss.Left, details, divider, clock)

	spacerWidth := terminalWidth - lipgloss.Width(left) - lipgloss.Width(right)
	if spacerWidth < 1 {
		spacerWidth = 1
	}
	spacer := lipgloss.NewStyle().Width(spacerWidth).Render("")

	bar := lipgloss.NewStyle().
		Foreground(colors.Text).
		Background(colors.Surface0).
		Width(terminalWidth)

	return bar.Render(lipgloss.JoinHorizontal(lipgloss.Left, left, spacer, right))
}
