package keys

import "github.com/charmbracelet/bubbles/key"

// CommonKeys are bound on every screen
type CommonKeys struct {
	Quit key.Binding
	Help key.Binding
}

// PromptKeys open, edit and leave the command prompt
type PromptKeys struct {
	Open     key.Binding
	Close    key.Binding
	Submit   key.Binding
	Previous key.Binding
	Next     key.Binding
}

func NewCommonKeys() CommonKeys {
	return CommonKeys{
		Quit: key.NewBinding(key.WithKeys("q", "Q", "ctrl+c"), key.WithHelp("q/ctrl+c", "quit")),
		Help: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
	}
}

func NewPromptKeys() PromptKeys {
	return PromptKeys{
		Open:     key.NewBinding(key.WithKeys("i", ":"), key.WithHelp("i/:", "command prompt")),
		Close:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "leave prompt")),
		Submit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run command")),
		Previous: key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "previous command")),
		Next:     key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "next command")),
	}
}

// Bindings lists the prompt keys in help order
func (k PromptKeys) Bindings() []key.Binding {
	return []key.Binding{k.Open, k.Close, k.Submit, k.Previous, k.Next}
}
