package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	load    key.Binding
	copy    key.Binding
	info    key.Binding
	dismiss key.Binding
	quit    key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	load:    key.NewBinding(key.WithKeys("enter", "r", " "), key.WithHelp("enter/r", "load users")),
	copy:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy user")),
	info:    key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "about")),
	dismiss: key.NewBinding(key.WithKeys("enter", "esc"), key.WithHelp("enter/esc", "close")),
	quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

func helpLine(bindings ...key.Binding) string {
	var out string
	for i, b := range bindings {
		if i > 0 {
			out += "  "
		}
		h := b.Help()
		out += h.Key + ": " + h.Desc
	}
	return out
}
