package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/papapumpkin/holonet/internal/view"
)

// maxOverlayWidth caps the details overlay on wide terminals.
const maxOverlayWidth = 76

// DetailPanel is the details overlay: a bordered box whose body scrolls in
// a viewport.
type DetailPanel struct {
	viewport   viewport.Model
	overlay    view.DetailsOverlay
	width      int
	totalLines int
}

// NewDetailPanel creates a panel sized for a width×height screen.
func NewDetailPanel(width, height int) DetailPanel {
	d := DetailPanel{viewport: viewport.New(0, 0)}
	d.SetSize(width, height)
	return d
}

// SetSize fits the overlay into a width×height area.
func (d *DetailPanel) SetSize(width, height int) {
	d.width = min(width-4, maxOverlayWidth)
	if d.width < 20 {
		d.width = 20
	}
	// Border (2), padding (2), title and close row (2), scroll hints (2).
	h := height - 8
	if h < 3 {
		h = 3
	}
	d.viewport.Width = d.innerWidth()
	d.viewport.Height = h
	d.refresh(false)
}

// innerWidth is the usable width inside border and padding.
func (d DetailPanel) innerWidth() int {
	return d.width - 6
}

// SetOverlay replaces the displayed overlay. The scroll position resets when
// the phase or the raw toggle changes.
func (d *DetailPanel) SetOverlay(o view.DetailsOverlay) {
	reset := o.Phase != d.overlay.Phase || (o.Raw == nil) != (d.overlay.Raw == nil) || o.Title != d.overlay.Title
	d.overlay = o
	d.refresh(reset)
}

func (d *DetailPanel) refresh(reset bool) {
	content := d.body()
	d.totalLines = lipgloss.Height(content)
	d.viewport.SetContent(content)
	if reset {
		d.viewport.GotoTop()
	}
}

// body renders the scrollable part of the overlay.
func (d DetailPanel) body() string {
	w := d.innerWidth()
	switch d.overlay.Phase {
	case view.DetailsLoading:
		return skeleton(w)
	case view.DetailsFailed:
		return styleErrorBanner.Width(w).Render(styleErrorTitle.Render("Error") + "\n" + d.overlay.Error)
	case view.DetailsLoaded:
		if d.overlay.Raw != nil {
			return paintTextArea(*d.overlay.Raw, w)
		}
		return detailGrid(d.overlay.Rows, w)
	}
	return ""
}

// skeleton is the placeholder shown while details load.
func skeleton(width int) string {
	fractions := []float64{0.75, 1, 5.0 / 6, 4.0 / 6}
	lines := make([]string, len(fractions))
	for i, f := range fractions {
		lines[i] = styleSkeleton.Render(strings.Repeat(" ", max(1, int(float64(width)*f))))
	}
	return strings.Join(lines, "\n\n")
}

// detailGrid lays rows out as aligned label/value pairs.
func detailGrid(rows []view.DetailRow, width int) string {
	if len(rows) == 0 {
		return styleDetailLabel.Render("No properties")
	}
	labelWidth := 0
	for _, r := range rows {
		labelWidth = max(labelWidth, lipgloss.Width(r.Label))
	}
	labelWidth = min(labelWidth, width/2)

	lines := make([]string, len(rows))
	for i, r := range rows {
		label := styleDetailLabel.Width(labelWidth).Render(truncateToWidth(r.Label, labelWidth))
		value := styleDetailValue.Render(truncateToWidth(r.Value, width-labelWidth-2))
		lines[i] = label + "  " + value
	}
	return strings.Join(lines, "\n")
}

// Update handles scroll keys. Home/g and End/G jump to the ends.
func (d *DetailPanel) Update(msg tea.Msg) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "home", "g":
			d.viewport.GotoTop()
			return
		case "end", "G":
			d.viewport.GotoBottom()
			return
		}
	}
	d.viewport, _ = d.viewport.Update(msg)
}

// View renders the overlay box. closeFocused highlights the close control.
func (d DetailPanel) View(closeFocused bool) string {
	var b strings.Builder

	title := d.overlay.Title
	if title == "" {
		title = "Details"
	}
	closeBtn := paintButton(d.overlay.Close, closeFocused)
	titleWidth := d.innerWidth() - lipgloss.Width(closeBtn) - 1
	titleText := styleDetailTitle.Render(truncateToWidth(title, titleWidth))
	gap := max(1, d.innerWidth()-lipgloss.Width(titleText)-lipgloss.Width(closeBtn))
	b.WriteString(titleText + strings.Repeat(" ", gap) + closeBtn)
	b.WriteString("\n\n")

	if up := d.linesAbove(); up > 0 {
		b.WriteString(styleScrollIndicator.Render(fmt.Sprintf("↑ %d more", up)))
		b.WriteString("\n")
	}
	b.WriteString(d.viewport.View())
	if down := d.linesBelow(); down > 0 {
		b.WriteString("\n")
		b.WriteString(styleScrollIndicator.Render(fmt.Sprintf("↓ %d more", down)))
	}

	return styleOverlay.Width(d.width - 2).Render(b.String())
}

// linesAbove returns the number of content lines above the viewport.
func (d DetailPanel) linesAbove() int {
	return d.viewport.YOffset
}

// linesBelow returns the number of content lines below the viewport.
func (d DetailPanel) linesBelow() int {
	below := d.totalLines - d.viewport.YOffset - d.viewport.Height
	if below < 0 {
		return 0
	}
	return below
}
