package selector

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// keyMap defines key bindings for the selector screen
type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Select    key.Binding
	Cancel    key.Binding
	Backspace key.Binding
	Interrupt key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Cancel}
}

// FullHelp returns keybindings for the expanded help view
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Select, k.Cancel, k.Backspace},
	}
}

// defaultKeyMap binds navigation to arrows and control chords only;
// letters are reserved for the filter.
func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓", "move down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace", "ctrl+h"),
			key.WithHelp("⌫", "delete"),
		),
		Interrupt: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
	}
}

// translate maps a bubbletea key message onto selector keys.
// Unbound keys produce no events.
func (k keyMap) translate(msg tea.KeyMsg) []Key {
	switch {
	case key.Matches(msg, k.Up):
		return []Key{Up}
	case key.Matches(msg, k.Down):
		return []Key{Down}
	case key.Matches(msg, k.Select):
		return []Key{Enter}
	case key.Matches(msg, k.Cancel):
		return []Key{Escape}
	case key.Matches(msg, k.Backspace):
		return []Key{Backspace}
	}

	switch msg.Type {
	case tea.KeySpace:
		return []Key{RuneKey(' ')}
	case tea.KeyRunes:
		keys := make([]Key, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			keys = append(keys, RuneKey(r))
		}
		return keys
	}

	return nil
}
