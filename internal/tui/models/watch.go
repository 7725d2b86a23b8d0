package models

import (
	"time"

	"github.com/allbin/go-ka3005p"
	"github.com/allbin/go-ka3005p/internal/tui/components"
	"github.com/allbin/go-ka3005p/internal/tui/keys"
	"github.com/allbin/go-ka3005p/internal/tui/styles"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type tickMsg time.Time

// Layout heights of the fixed parts of the dashboard
const (
	readingsHeight  = 7
	promptHeight    = 3
	statusBarHeight = 1
	helpHeight      = 1
	minPaneHeight   = 3
)

// WatchModel is the live dashboard: it polls the supply on an interval,
// shows the latest reading with recent history, and sends commands
// typed into its prompt.
type WatchModel struct {
	*SupplyModel
	supply   Supply
	interval time.Duration

	readings  *components.Readings
	history   *components.History
	events    *components.Events
	statusBar *components.StatusBar
	prompt    *components.Prompt
	help      help.Model
	keys      keys.WatchKeys

	// at most one Status read runs at a time; polls requested meanwhile
	// collapse into one queued read
	polling    bool
	pollQueued bool
}

func NewWatchModel(supply Supply, portPath string, interval time.Duration, info *components.ConnectionInfo) *WatchModel {
	m := &WatchModel{
		SupplyModel: NewSupplyModel(),
		supply:      supply,
		interval:    interval,
		readings:    components.NewReadings(),
		history:     components.NewHistory(80, minPaneHeight),
		events:      components.NewEvents(80, minPaneHeight),
		statusBar:   components.NewStatusBar(portPath),
		prompt:      components.NewPrompt(),
		help:        help.New(),
		keys:        keys.NewWatchKeys(),
	}
	m.statusBar.SetConnectionInfo(info)
	return m
}

func (m *WatchModel) Init() tea.Cmd {
	return tea.Batch(m.poll(), m.tick())
}

// poll starts a status read. While one is running it only queues
// another, issued when the running read reports back.
func (m *WatchModel) poll() tea.Cmd {
	if m.polling {
		m.pollQueued = true
		return nil
	}
	m.polling = true
	supply := m.supply
	return func() tea.Msg {
		status, err := supply.Status()
		return StatusMsg{Status: status, Err: err, At: time.Now()}
	}
}

func (m *WatchModel) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *WatchModel) run(fn func() components.EventMsg) tea.Cmd {
	return func() tea.Msg {
		return fn()
	}
}

func (m *WatchModel) layout(width, height int) {
	panes := height - readingsHeight - promptHeight - statusBarHeight - helpHeight
	historyHeight := panes / 2
	if historyHeight < minPaneHeight {
		historyHeight = minPaneHeight
	}
	eventsHeight := panes - historyHeight
	if eventsHeight < minPaneHeight {
		eventsHeight = minPaneHeight
	}

	m.readings.SetWidth(width)
	m.history.SetSize(width, historyHeight)
	m.events.SetSize(width, eventsHeight)
	m.prompt.SetWidth(width)
	m.statusBar.SetWidth(width)
	m.help.Width = width
	m.SetReady(true)
}

func (m *WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout(msg.Width, msg.Height)
		_, cmd := m.events.Update(msg)
		cmds = append(cmds, cmd)

	case tickMsg:
		// a slow supply skips ticks rather than stacking reads
		if m.polling {
			return m, m.tick()
		}
		return m, tea.Batch(m.poll(), m.tick())

	case StatusMsg:
		m.polling = false
		if m.pollQueued {
			m.pollQueued = false
			cmds = append(cmds, m.poll())
		}

		m.Record(msg)
		if err := m.LastError(); err != nil {
			// only log the first of a run of failures
			if m.statusBar.Err() == nil {
				m.events.Add(components.EventMsg{Timestamp: msg.At, Request: "STATUS?", Err: err})
			}
			m.statusBar.SetError(err)
			break
		}
		m.readings.SetStatus(msg.Status)
		m.history.Add(components.Sample{Timestamp: msg.At, Status: msg.Status})
		m.statusBar.SetPolled(msg.At)

	case components.EventMsg:
		m.events.Add(msg)
		return m, m.poll()

	case tea.KeyMsg:
		if m.IsInInsertMode() {
			switch {
			case key.Matches(msg, m.keys.Close):
				m.SetInputMode(InputModeNormal)
				m.prompt.Blur()
				return m, nil
			case key.Matches(msg, m.keys.Submit):
				line := m.prompt.Value()
				if line == "" {
					return m, nil
				}
				m.prompt.AddToHistory(line)
				m.prompt.SetValue("")
				supply := m.supply
				return m, m.run(func() components.EventMsg { return Dispatch(supply, line) })
			case key.Matches(msg, m.keys.Previous):
				m.prompt.HistoryUp()
				return m, nil
			case key.Matches(msg, m.keys.Next):
				m.prompt.HistoryDown()
				return m, nil
			}
			var cmd tea.Cmd
			m.prompt, cmd = m.prompt.Update(msg)
			return m, cmd
		}

		supply := m.supply
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Open):
			m.SetInputMode(InputModeInsert)
			m.prompt.Focus()
		case key.Matches(msg, m.keys.Refresh):
			return m, m.poll()
		case key.Matches(msg, m.keys.ClearLog):
			m.events.Clear()
		case key.Matches(msg, m.keys.ToggleOutput):
			return m, m.run(func() components.EventMsg {
				return toggle(supply, "output", ka3005p.Flags.Output, func(s ka3005p.Switch) ka3005p.Command { return ka3005p.Power(s) })
			})
		case key.Matches(msg, m.keys.ToggleBeep):
			return m, m.run(func() components.EventMsg {
				return toggle(supply, "beep", ka3005p.Flags.Beep, func(s ka3005p.Switch) ka3005p.Command { return ka3005p.Beep(s) })
			})
		case key.Matches(msg, m.keys.EnableOVP):
			return m, m.run(func() components.EventMsg { return execute(supply, ka3005p.OverVoltageProtection(ka3005p.On)) })
		case key.Matches(msg, m.keys.DisableOVP):
			return m, m.run(func() components.EventMsg { return execute(supply, ka3005p.OverVoltageProtection(ka3005p.Off)) })
		case key.Matches(msg, m.keys.EnableOCP):
			return m, m.run(func() components.EventMsg { return execute(supply, ka3005p.OverCurrentProtection(ka3005p.On)) })
		case key.Matches(msg, m.keys.DisableOCP):
			return m, m.run(func() components.EventMsg { return execute(supply, ka3005p.OverCurrentProtection(ka3005p.Off)) })
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *WatchModel) View() string {
	if !m.IsReady() {
		return "Initializing..."
	}

	body := lipgloss.JoinVertical(
		lipgloss.Left,
		m.readings.View(),
		m.history.View(),
		styles.ContentBorderStyle.Render(m.events.View()),
		m.prompt.View(m.IsInInsertMode()),
		m.statusBar.Render(m.GetInputMode().String()),
		m.help.View(m.keys),
	)
	return body
}
