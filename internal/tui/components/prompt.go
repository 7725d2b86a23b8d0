package components

import (
	"strings"

	"github.com/allbin/go-ka3005p/internal/tui/colors"
	"github.com/allbin/go-ka3005p/internal/tui/styles"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const maxHistory = 100

// Prompt is the dashboard command line. It accepts the same verbs as
// the interactive shell, e.g. "voltage 12" or "power off".
type Prompt struct {
	textInput     textinput.Model
	history       []string
	historyIndex  int
	currentInput  string // Store current input when navigating history
	terminalWidth int
}

func NewPrompt() *Prompt {
	ti := textinput.New()
	ti.Placeholder = "voltage 12 | current 0.5 | power on | raw *IDN?"
	ti.CharLimit = 64
	ti.Prompt = ""

	return &Prompt{
		textInput:    ti,
		historyIndex: -1,
	}
}

func (p *Prompt) SetWidth(width int) {
	p.terminalWidth = width
	usable := width - 6
	if usable < 20 {
		usable = 20
	}
	p.textInput.Width = usable
}

func (p *Prompt) Focus() { p.textInput.Focus() }
func (p *Prompt) Blur()  { p.textInput.Blur() }

func (p *Prompt) Value() string {
	return p.textInput.Value()
}

func (p *Prompt) SetValue(value string) {
	p.textInput.SetValue(value)
}

func (p *Prompt) Update(msg tea.Msg) (*Prompt, tea.Cmd) {
	var cmd tea.Cmd
	p.textInput, cmd = p.textInput.Update(msg)
	return p, cmd
}

func (p *Prompt) View(active bool) string {
	symbol := lipgloss.NewStyle().Foreground(colors.Green).Bold(true).Render(">")

	var content string
	if active {
		content = lipgloss.JoinHorizontal(lipgloss.Left, symbol, " ", p.textInput.View())
	} else {
		hint := lipgloss.NewStyle().Foreground(colors.Overlay0).Render("Press 'i' or ':' to enter a command")
		content = lipgloss.JoinHorizontal(lipgloss.Left, symbol, " ", hint)
	}

	width := p.terminalWidth - 4
	if width < 10 {
		width = 10
	}
	style := styles.InputStyle.Width(width)
	if active {
		style = style.BorderForeground(colors.Green)
	}
	return style.Render(content)
}

// AddToHistory remembers a command unless empty or repeated
func (p *Prompt) AddToHistory(command string) {
	command = strings.TrimSpace(command)
	if command == "" {
		return
	}
	if len(p.history) > 0 && p.history[len(p.history)-1] == command {
		return
	}

	p.history = append(p.history, command)
	if len(p.history) > maxHistory {
		p.history = p.history[1:]
	}
	p.historyIndex = -1
	p.currentInput = ""
}

func (p *Prompt) HistoryUp() {
	if len(p.history) == 0 {
		return
	}
	if p.historyIndex == -1 {
		p.currentInput = p.textInput.Value()
		p.historyIndex = len(p.history) - 1
	} else if p.historyIndex > 0 {
		p.historyIndex--
	}
	p.textInput.SetValue(p.history[p.historyIndex])
}

func (p *Prompt) HistoryDown() {
	if len(p.history) == 0 || p.historyIndex == -1 {
		return
	}
	if p.historyIndex < len(p.history)-1 {
		p.historyIndex++
		p.textInput.SetValue(p.history[p.historyIndex])
		return
	}
	p.historyIndex = -1
	p.textInput.SetValue(p.currentInput)
	p.currentInput = ""
}
