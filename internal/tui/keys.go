package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Enter   key.Binding
	Back    key.Binding
	Left    key.Binding
	Right   key.Binding
	Up      key.Binding
	Down    key.Binding
	Skip    key.Binding
	Cake    key.Binding
	Restart key.Binding
	Blow    key.Binding
	Replay  key.Binding
	Hug     key.Binding
	Quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Enter:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Back:    key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "back")),
		Left:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/→", "move")),
		Right:   key.NewBinding(key.WithKeys("right", "l")),
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/↓", "scroll")),
		Down:    key.NewBinding(key.WithKeys("down", "j")),
		Skip:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "reveal")),
		Cake:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "skip to the surprise")),
		Restart: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "read again")),
		Blow:    key.NewBinding(key.WithKeys("enter", "b"), key.WithHelp("enter", "blow the candles")),
		Replay:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "replay this night")),
		Hug:     key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "send a cosmic hug")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

func withHelp(b key.Binding, keys, desc string) key.Binding {
	b.SetHelp(keys, desc)
	return b
}
