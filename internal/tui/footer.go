package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// Footer renders context-sensitive keybinding hints.
type Footer struct {
	Width    int
	Bindings []key.Binding
}

// View renders the footer as a single line of keybinding hints.
// In compact mode (narrow terminals), shows only key hints without descriptions.
func (f Footer) View() string {
	compact := f.Width < CompactWidth

	var parts []string
	for _, b := range f.Bindings {
		if !b.Enabled() {
			continue
		}
		help := b.Help()
		var part string
		if compact {
			part = styleFooterKey.Render(help.Key)
		} else {
			part = styleFooterKey.Render(help.Key) + styleFooterSep.Render(":") + styleFooterDesc.Render(help.Desc)
		}
		parts = append(parts, part)
	}
	sep := styleFooterSep.Render("  ")
	if compact {
		sep = styleFooterSep.Render(" ")
	}
	line := truncateToWidth(strings.Join(parts, sep), f.Width)
	return styleFooter.Width(f.Width).Render(line)
}

// BrowseFooterBindings returns footer bindings while a button has focus.
func BrowseFooterBindings(km KeyMap) []key.Binding {
	return []key.Binding{km.Next, km.Activate, km.Category, km.Search, km.Quit}
}

// InputFooterBindings returns footer bindings while the search field has
// focus.
func InputFooterBindings(km KeyMap) []key.Binding {
	return []key.Binding{km.Activate, km.Next, km.Prev, km.ForceQuit}
}

// OverlayFooterBindings returns footer bindings while the details overlay
// is open.
func OverlayFooterBindings(km KeyMap) []key.Binding {
	return []key.Binding{km.Up, km.Down, km.Raw, km.Close, km.Quit}
}
