package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the list view shortcuts.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	New     key.Binding
	Refresh key.Binding
	Copy    key.Binding
	Theme   key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the default list bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "Move down"),
		),
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "New variable"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Refresh"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "Copy name"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "Cycle theme"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "Quit"),
		),
	}
}

// DialogKeyMap defines the create dialog shortcuts.
type DialogKeyMap struct {
	Submit    key.Binding
	SubmitAny key.Binding
	Cancel    key.Binding
	NextField key.Binding
	PrevField key.Binding
	Preview   key.Binding
	ForceQuit key.Binding
}

// DefaultDialogKeyMap returns the default dialog bindings. Submit (enter)
// applies outside the value editor, where enter inserts a newline.
func DefaultDialogKeyMap() DialogKeyMap {
	return DialogKeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("⏎", "Create"),
		),
		SubmitAny: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("^s", "Create"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Cancel"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("⇥", "Next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("⇧⇥", "Previous field"),
		),
		Preview: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("^p", "Preview value"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("^c", "Quit"),
		),
	}
}
