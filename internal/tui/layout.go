package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Minimum terminal dimensions for usable rendering.
const (
	MinWidth  = 40
	MinHeight = 12
)

// Layout breakpoints for adaptive rendering.
const (
	// CompactWidth drops footer descriptions and card descriptions.
	CompactWidth = 60
	// TwoColumnWidth is the narrowest terminal that lays cards out in two
	// columns.
	TwoColumnWidth = 80
	// ThreeColumnWidth is the narrowest terminal for three card columns.
	ThreeColumnWidth = 120
)

// cardGap is the horizontal space between grid columns.
const cardGap = 1

// cardColumns returns how many cards fit side by side.
func cardColumns(width int) int {
	switch {
	case width >= ThreeColumnWidth:
		return 3
	case width >= TwoColumnWidth:
		return 2
	default:
		return 1
	}
}

// cardWidth returns the outer width of one card for the given columns.
func cardWidth(width, cols int) int {
	if cols < 1 {
		cols = 1
	}
	w := (width - cardGap*(cols-1)) / cols
	if w < 10 {
		w = 10
	}
	return w
}

// truncateToWidth cuts s to width cells, keeping ANSI sequences intact and
// appending an ellipsis when something was removed.
func truncateToWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "…")
}

// centerOverlay pads content so it sits in the middle of a width×height
// area.
func centerOverlay(content string, width, height int) string {
	contentWidth := lipgloss.Width(content)
	contentHeight := lipgloss.Height(content)

	if width <= 0 || height <= 0 {
		return content
	}

	leftPad := 0
	if contentWidth < width {
		leftPad = (width - contentWidth) / 2
	}
	topPad := 0
	if contentHeight < height {
		topPad = (height - contentHeight) / 2
	}

	return lipgloss.NewStyle().
		PaddingLeft(leftPad).
		PaddingTop(topPad).
		Render(content)
}
