package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	Lookup     key.Binding
	Clear      key.Binding
	NextTab    key.Binding
	PrevTab    key.Binding
	Basic      key.Binding
	Details    key.Binding
	Properties key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default keybinding configuration.
// Letter and digit keys are left to the search input.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Lookup: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "lookup"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next page"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev page"),
		),
		Basic: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "basic"),
		),
		Details: key.NewBinding(
			key.WithKeys("f2"),
			key.WithHelp("f2", "details"),
		),
		Properties: key.NewBinding(
			key.WithKeys("f3"),
			key.WithHelp("f3", "properties"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("up", "pgup"),
			key.WithHelp("↑/pgup", "scroll"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("down", "pgdown"),
			key.WithHelp("↓/pgdn", "scroll"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}
