package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// keyMap holds the demo keybindings.
type keyMap struct {
	Info    key.Binding
	Success key.Binding
	Warning key.Binding
	Error   key.Binding
	Dismiss key.Binding
	Delete  key.Binding

	Sort    key.Binding
	Reverse key.Binding
	Up      key.Binding
	Down    key.Binding
	Prev    key.Binding
	Next    key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Info:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "info")),
		Success: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "success")),
		Warning: key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "warning")),
		Error:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "error")),
		Dismiss: key.NewBinding(key.WithKeys("x", "esc"), key.WithHelp("x", "dismiss")),
		Delete:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),

		Sort:    key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "sort")),
		Reverse: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reverse")),
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Prev:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev page")),
		Next:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next page")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Info, k.Error, k.Dismiss, k.Delete, k.Sort, k.Reverse, k.Next, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Info, k.Success, k.Warning, k.Error, k.Dismiss, k.Delete},
		{k.Sort, k.Reverse, k.Up, k.Down, k.Prev, k.Next, k.Quit},
	}
}

var _ help.KeyMap = keyMap{}
