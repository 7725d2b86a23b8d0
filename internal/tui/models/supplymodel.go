package models

import (
	"sync"
	"time"

	"github.com/allbin/go-ka3005p"
)

// InputMode represents the current input mode (vim-like)
type InputMode int

const (
	InputModeNormal InputMode = iota
	InputModeInsert
)

func (m InputMode) String() string {
	switch m {
	case InputModeInsert:
		return "INSERT"
	default:
		return "NORMAL"
	}
}

// Supply is what the dashboard needs from a device. It must be safe
// for concurrent use because tea.Cmds run on their own goroutines.
type Supply interface {
	Status() (ka3005p.Status, error)
	Execute(cmd ka3005p.Command) error
	Exchange(request string) ([]byte, error)
	Toggle(read func(ka3005p.Flags) ka3005p.Switch, build func(ka3005p.Switch) ka3005p.Command) (ka3005p.Switch, error)
}

// StatusMsg carries the result of one poll
type StatusMsg struct {
	Status ka3005p.Status
	Err    error
	At     time.Time
}

// SupplyModel holds dashboard state shared by the view and its commands
type SupplyModel struct {
	ready     bool
	polls     int
	failures  int
	last      *ka3005p.Status
	lastErr   error
	inputMode InputMode

	mu sync.RWMutex
}

func NewSupplyModel() *SupplyModel {
	return &SupplyModel{inputMode: InputModeNormal}
}

func (m *SupplyModel) IsReady() bool {
	return m.ready
}

func (m *SupplyModel) SetReady(ready bool) {
	m.ready = ready
}

// Record stores a poll outcome. A failed poll keeps the last good status.
func (m *SupplyModel) Record(msg StatusMsg) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.polls++
	if msg.Err != nil {
		m.failures++
		m.lastErr = msg.Err
		return
	}
	status := msg.Status
	m.last = &status
	m.lastErr = nil
}

// LastStatus returns the most recent good status, if any
func (m *SupplyModel) LastStatus() (ka3005p.Status, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.last == nil {
		return ka3005p.Status{}, false
	}
	return *m.last, true
}

// LastError is the error of the latest poll, nil once a poll succeeds
func (m *SupplyModel) LastError() error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lastErr
}

// Counts returns the number of polls and how many failed
func (m *SupplyModel) Counts() (polls, failures int) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.polls, m.failures
}

func (m *SupplyModel) GetInputMode() InputMode {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.inputMode
}

func (m *SupplyModel) SetInputMode(mode InputMode) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inputMode = mode
}

func (m *SupplyModel) IsInInsertMode() bool {
	return m.GetInputMode() == InputModeInsert
}
