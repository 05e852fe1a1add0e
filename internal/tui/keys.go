package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	Next      key.Binding
	Prev      key.Binding
	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	Activate  key.Binding
	Close     key.Binding
	Search    key.Binding
	Category  key.Binding
	Raw       key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns the default keybinding configuration.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Category: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5"),
			key.WithHelp("1-5", "category"),
		),
		Raw: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "raw json"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// InputKeyMap returns the bindings active while the search field has
// focus. Printable keys belong to the field, so single-letter bindings are
// disabled.
func InputKeyMap() KeyMap {
	km := DefaultKeyMap()
	km.Left.SetEnabled(false)
	km.Right.SetEnabled(false)
	km.Up.SetEnabled(false)
	km.Down.SetEnabled(false)
	km.Search.SetEnabled(false)
	km.Category.SetEnabled(false)
	km.Raw.SetEnabled(false)
	km.Quit.SetEnabled(false)
	km.Activate.SetHelp("enter", "search")
	return km
}

// OverlayKeyMap returns the bindings active while the details overlay is
// open.
func OverlayKeyMap() KeyMap {
	km := DefaultKeyMap()
	km.Next.SetEnabled(false)
	km.Prev.SetEnabled(false)
	km.Left.SetEnabled(false)
	km.Right.SetEnabled(false)
	km.Search.SetEnabled(false)
	km.Category.SetEnabled(false)
	km.Up.SetHelp("↑/k", "scroll")
	km.Down.SetHelp("↓/j", "scroll")
	return km
}
