package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Tab      key.Binding
	Help     key.Binding
	Quit     key.Binding

	// Track list
	Sort    key.Binding
	Number  key.Binding
	Titles  key.Binding
	SendAll key.Binding
	Edit    key.Binding
	Remove  key.Binding
	Open    key.Binding
	Reset   key.Binding
	Fetch   key.Binding
	Token   key.Binding

	// File browser
	Select    key.Binding
	SelectAll key.Binding
	Enter     key.Binding
	Hidden    key.Binding

	// Album draft
	SendField key.Binding

	// Confirm modal
	Yes key.Binding
	No  key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "column"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "column"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup"),
		key.WithHelp("pgup", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown"),
		key.WithHelp("pgdn", "page down"),
	),
	Tab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "switch panel"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Sort: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "sort"),
	),
	Number: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "number"),
	),
	Titles: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "copy titles"),
	),
	SendAll: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "send album"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e", "enter"),
		key.WithHelp("e", "edit"),
	),
	Remove: key.NewBinding(
		key.WithKeys("d", "delete"),
		key.WithHelp("d", "remove"),
	),
	Open: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "add files"),
	),
	Reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset"),
	),
	Fetch: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "discogs"),
	),
	Token: key.NewBinding(
		key.WithKeys("T"),
		key.WithHelp("T", "token"),
	),
	Select: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "select"),
	),
	SelectAll: key.NewBinding(
		key.WithKeys("A"),
		key.WithHelp("A", "select all"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open/add"),
	),
	Hidden: key.NewBinding(
		key.WithKeys("."),
		key.WithHelp(".", "hidden"),
	),
	SendField: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "send field"),
	),
	Yes: key.NewBinding(
		key.WithKeys("y", "Y", "enter"),
		key.WithHelp("y", "yes"),
	),
	No: key.NewBinding(
		key.WithKeys("n", "N", "esc"),
		key.WithHelp("n", "no"),
	),
}

func hint(b key.Binding, theme *Theme) string {
	h := b.Help()
	return KeyHelp(h.Key, h.Desc, theme)
}
