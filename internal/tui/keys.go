package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all key bindings
type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Tab     key.Binding
	Enter   key.Binding
	Add     key.Binding
	Rename  key.Binding
	Advance key.Binding
	Delete  key.Binding
	Project key.Binding
	View    key.Binding
	Sort    key.Binding
	Backup  key.Binding
	Help    key.Binding
	Quit    key.Binding
	Escape  key.Binding
}

var keys = keyMap{
	Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Left:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left pane")),
	Right:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right pane")),
	Tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch pane")),
	Enter:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
	Add:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add task")),
	Rename:  key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "rename task")),
	Advance: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "advance status")),
	Delete:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	Project: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "new project")),
	View:    key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "cycle view")),
	Sort:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "cycle sort")),
	Backup:  key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "export backup")),
	Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Escape:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
}
