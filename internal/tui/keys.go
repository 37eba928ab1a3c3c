package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	Toggle     key.Binding
	SelectAll  key.Binding
	Packed     key.Binding
	Shipped    key.Binding
	Open       key.Binding
	StartWork  key.Binding
	SwitchPane key.Binding
	ShowMore   key.Binding
	Search     key.Binding
	Back       key.Binding
	Quit       key.Binding
}

var keys = keyMap{
	Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Toggle:     key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "select")),
	SelectAll:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "select all")),
	Packed:     key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "mark packed")),
	Shipped:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "mark shipped")),
	Open:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
	StartWork:  key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "start processing")),
	SwitchPane: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch pane")),
	ShowMore:   key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "show more")),
	Search:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	Back:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}
