package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/allbin/go-ka3005p/internal/tui/colors"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// EventMsg reports the outcome of a command sent from the dashboard
type EventMsg struct {
	Timestamp time.Time
	Request   string
	Reply     []byte
	Err       error
}

const maxEvents = 500

// Events is a scrolling log of commands and their outcome
type Events struct {
	viewport viewport.Model
	lines    []string
}

func NewEvents(width, height int) *Events {
	return &Events{viewport: viewport.New(width, height)}
}

func (e *Events) SetSize(width, height int) {
	e.viewport.Width = width
	e.viewport.Height = height
}

func (e *Events) Add(msg EventMsg) {
	e.lines = append(e.lines, FormatEvent(msg))
	if len(e.lines) > maxEvents {
		e.lines = e.lines[len(e.lines)-maxEvents:]
	}
	e.viewport.SetContent(strings.Join(e.lines, "\n"))
	e.viewport.GotoBottom()
}

func (e *Events) Clear() {
	e.lines = nil
	e.viewport.SetContent("")
}

func (e *Events) Len() int {
	return len(e.lines)
}

// FormatEvent renders one log line: time, request, then the reply or error
func FormatEvent(msg EventMsg) string {
	ts := lipgloss.NewStyle().Foreground(colors.Overlay0).Render(msg.Timestamp.Format("15:04:05.000"))
	req := lipgloss.NewStyle().Foreground(colors.Mauve).Bold(true).Render(msg.Request)

	var outcome string
	switch {
	case msg.Err != nil:
		outcome = lipgloss.NewStyle().Foreground(colors.Red).Render("✗ " + msg.Err.Error())
	case len(msg.Reply) > 0:
		outcome = lipgloss.NewStyle().Foreground(colors.Text).Render(fmt.Sprintf("← %q", msg.Reply))
	default:
		outcome = lipgloss.NewStyle().Foreground(colors.Green).Render("✓")
	}
	return fmt.Sprintf("%s  %s  %s", ts, req, outcome)
}

// Update only forwards resize messages so the viewport never swallows
// dashboard key bindings
func (e *Events) Update(msg tea.Msg) (viewport.Model, tea.Cmd) {
	switch msg.(type) {
	case tea.WindowSizeMsg:
		return e.viewport.Update(msg)
	default:
		return e.viewport, nil
	}
}

func (e *Events) View() string {
	return e.viewport.View()
}
