package common

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines shared key bindings across all views.
type KeyMap struct {
	Quit           key.Binding
	ForceQuit      key.Binding
	Up             key.Binding
	Down           key.Binding
	Open           key.Binding // enter — open story thread
	Back           key.Binding // esc — back to stories
	Refresh        key.Binding
	LoadMore       key.Binding // m — reveal more top-level comments
	Collapse       key.Binding // c — toggle collapse on the selected comment
	CollapseThread key.Binding // t — collapse the whole enclosing thread
	ExpandThread   key.Binding // T — expand the selected subtree
	TopLevelOnly   key.Binding // z — roots-only view
	OpenURL        key.Binding // o — open story link in browser
	ToggleHints    key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open thread"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		LoadMore: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "more comments"),
		),
		Collapse: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "collapse"),
		),
		CollapseThread: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "collapse thread"),
		),
		ExpandThread: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "expand thread"),
		),
		TopLevelOnly: key.NewBinding(
			key.WithKeys("z"),
			key.WithHelp("z", "top level only"),
		),
		OpenURL: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open link"),
		),
		ToggleHints: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}
