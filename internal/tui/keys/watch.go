package keys

import "github.com/charmbracelet/bubbles/key"

// WatchKeys drive the live dashboard
type WatchKeys struct {
	CommonKeys
	PromptKeys
	ToggleOutput key.Binding
	ToggleBeep   key.Binding
	EnableOVP    key.Binding
	DisableOVP   key.Binding
	EnableOCP    key.Binding
	DisableOCP   key.Binding
	Refresh      key.Binding
	ClearLog     key.Binding
}

func NewWatchKeys() WatchKeys {
	return WatchKeys{
		CommonKeys: NewCommonKeys(),
		PromptKeys: NewPromptKeys(),
		ToggleOutput: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "toggle output"),
		),
		ToggleBeep: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "toggle beep"),
		),
		EnableOVP: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "OVP on"),
		),
		DisableOVP: key.NewBinding(
			key.WithKeys("V"),
			key.WithHelp("V", "OVP off"),
		),
		EnableOCP: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "OCP on"),
		),
		DisableOCP: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "OCP off"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh now"),
		),
		ClearLog: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "clear log"),
		),
	}
}

func (k WatchKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.ToggleOutput, k.Open, k.Quit}
}

func (k WatchKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.ToggleOutput, k.ToggleBeep, k.EnableOVP, k.DisableOVP, k.EnableOCP, k.DisableOCP},
		k.PromptKeys.Bindings(),
		{k.Refresh, k.ClearLog, k.Help, k.Quit},
	}
}
