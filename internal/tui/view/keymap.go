package view

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the overlay's key bindings.
type KeyMap struct {
	Press key.Binding
}

// DefaultKeyMap presses the action with enter or space.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Press: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "run action"),
		),
	}
}
