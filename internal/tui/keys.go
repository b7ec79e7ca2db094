package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap binds the presenter's keyboard shortcuts.
type KeyMap struct {
	Next    key.Binding
	Back    key.Binding
	Retry   key.Binding
	Quit    key.Binding
	Restart key.Binding
}

// DefaultKeyMap: Enter/Space advances, b steps back.
var DefaultKeyMap = KeyMap{
	Next: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter/space", "advance"),
	),
	Back: key.NewBinding(
		key.WithKeys("b"),
		key.WithHelp("b", "back"),
	),
	Retry: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reconnect"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Restart: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("ctrl+r", "retrigger block"),
	),
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Back, k.Retry, k.Restart, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
