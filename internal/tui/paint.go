package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/papapumpkin/holonet/internal/view"
)

// paintOptions carries adapter state the tree does not hold.
type paintOptions struct {
	width int
	// spinner is the current spinner frame for the loading view.
	spinner string
	// inputView replaces the painted value of the search field, so the
	// live text input (with its cursor) is shown.
	inputView string
}

// painted is the result of painting the page body.
type painted struct {
	body string
	// focusLine is the first line of the focused control, or -1.
	focusLine int
}

// painter assembles the page body block by block, tracking which line the
// focused control lands on.
type painter struct {
	opts   paintOptions
	focus  string
	blocks []string
	lines  int
	hit    int
}

// paint renders the header, category bar, search form and results panel.
// The details overlay is painted separately by DetailPanel.
func paint(tree view.Tree, focus string, opts paintOptions) painted {
	if opts.width <= 0 {
		opts.width = TwoColumnWidth
	}
	p := &painter{opts: opts, focus: focus, hit: -1}
	p.header(tree.Header)
	p.categories(tree.Categories)
	p.search(tree.Search)
	p.results(tree.Results)
	return painted{body: strings.Join(p.blocks, "\n"), focusLine: p.hit}
}

// add appends a block; when it holds the focused control its first line is
// remembered.
func (p *painter) add(block string, focused bool) {
	if focused && p.hit < 0 {
		p.hit = p.lines
	}
	p.blocks = append(p.blocks, block)
	p.lines += lipgloss.Height(block)
}

func (p *painter) header(h view.Header) {
	p.add(styleTitle.Render(h.Title), false)
	if p.opts.width >= CompactWidth {
		p.add(styleSubtitle.Render(h.Subtitle), false)
	}
	p.add("", false)
}

func (p *painter) categories(bar view.CategoryBar) {
	p.add(styleHeading.Render(bar.Heading), false)

	var rows []string
	var row []string
	rowWidth := 0
	rowFocused := false
	flush := func() {
		if len(row) == 0 {
			return
		}
		rows = append(rows, strings.Join(row, " "))
		p.add(rows[len(rows)-1], rowFocused)
		row, rowWidth, rowFocused = nil, 0, false
	}
	for _, n := range bar.Buttons {
		focused := n.ID == p.focus
		b := paintButton(n, focused)
		w := lipgloss.Width(b)
		if rowWidth > 0 && rowWidth+1+w > p.opts.width {
			flush()
		}
		row = append(row, b)
		rowWidth += w + 1
		rowFocused = rowFocused || focused
	}
	flush()
	p.add("", false)
}

func (p *painter) search(form view.SearchForm) {
	p.add(styleLabel.Render(form.Label.Text), false)

	btnFocused := form.Button.ID == p.focus
	btn := paintButton(form.Button, btnFocused)

	inputFocused := form.Input.ID == p.focus
	inputWidth := p.opts.width - lipgloss.Width(btn) - 3
	if inputWidth < 10 {
		inputWidth = 10
	}
	field := paintInput(form.Input, inputFocused, p.opts.inputView, inputWidth)

	row := lipgloss.JoinHorizontal(lipgloss.Center, field, " ", btn)
	p.add(row, inputFocused || btnFocused)
	p.add("", false)
}

func (p *painter) results(panel view.ResultsPanel) {
	p.add(styleHeading.Render(panel.Title), false)

	switch panel.View {
	case view.ResultsLoading:
		p.add(styleLoading.Render(p.opts.spinner+" Loading..."), false)
	case view.ResultsError:
		banner := styleErrorTitle.Render("Error") + "\n" + panel.Message
		p.add(styleErrorBanner.Width(min(p.opts.width-2, 72)).Render(banner), false)
	case view.ResultsWelcome:
		p.welcome(panel.Welcome)
	case view.ResultsData:
		if len(panel.Cards) == 0 {
			p.add(styleEmpty.Render(panel.Message), false)
			return
		}
		p.add(styleCount.Render(panel.Count), false)
		p.cards(panel.Cards)
	}
}

func (p *painter) welcome(w view.Welcome) {
	var b strings.Builder
	b.WriteString(styleTitle.Render(w.Heading))
	b.WriteString("\n")
	b.WriteString(styleSubtitle.Render(w.Text))
	b.WriteString("\n\n")
	b.WriteString(styleHeading.Render(w.StepsHeading))
	for i, step := range w.Steps {
		b.WriteString(fmt.Sprintf("\n%d. %s", i+1, step))
	}
	width := min(p.opts.width-2, 76)
	p.add(styleWelcomeBox.Width(width).Render(b.String()), false)
}

func (p *painter) cards(cards []view.Card) {
	cols := cardColumns(p.opts.width)
	cw := cardWidth(p.opts.width, cols)
	compact := p.opts.width < CompactWidth

	for start := 0; start < len(cards); start += cols {
		end := min(start+cols, len(cards))
		var cells []string
		rowFocused := false
		for i, c := range cards[start:end] {
			focused := c.Button.ID == p.focus
			rowFocused = rowFocused || focused
			if i > 0 {
				cells = append(cells, strings.Repeat(" ", cardGap))
			}
			cells = append(cells, paintCard(c, focused, cw, compact))
		}
		p.add(lipgloss.JoinHorizontal(lipgloss.Top, cells...), rowFocused)
	}
}

// paintCard draws one result card at the given outer width.
func paintCard(c view.Card, focused bool, width int, compact bool) string {
	inner := width - 4 // border and padding
	lines := []string{styleCardName.Render(truncateToWidth(c.Item.Name, inner))}
	if c.Item.Description != "" && !compact {
		lines = append(lines, styleCardDesc.Render(truncateToWidth(c.Item.Description, inner)))
	}
	lines = append(lines, paintButton(c.Button, focused))

	style := styleCard
	if focused {
		style = styleCardFocused
	}
	return style.Width(width - 2).Render(strings.Join(lines, "\n"))
}

// paintButton draws a button node with its focus marker.
func paintButton(n view.Node, focused bool) string {
	var style lipgloss.Style
	switch {
	case n.Disabled:
		style = styleButtonDisabled
	case n.Variant == view.VariantPrimary:
		style = styleButtonPrimary
	case n.Variant == view.VariantSecondary:
		style = styleButtonSecondary
	default:
		style = styleButtonPlain
	}
	if focused {
		style = style.Underline(true)
		return styleFocusIndicator.Render(focusIndicator) + style.Render(n.Text)
	}
	return " " + style.Render(n.Text)
}

// paintInput draws a text field. live, when set, is the rendered text
// input and takes the place of the node's value.
func paintInput(n view.Node, focused bool, live string, width int) string {
	content := live
	if content == "" {
		if n.Value != "" {
			content = n.Value
		} else {
			content = stylePlaceholder.Render(n.Placeholder)
		}
	}
	style := styleInput
	if focused {
		style = styleInputFocused
	}
	return style.Width(width - 2).Render(truncateToWidth(content, width-4))
}

// paintTextArea draws a read-only multi-line field limited to its rows.
func paintTextArea(n view.Node, width int) string {
	lines := strings.Split(n.Value, "\n")
	more := 0
	if len(lines) > n.Rows {
		more = len(lines) - n.Rows
		lines = lines[:n.Rows]
	}
	for i, l := range lines {
		lines[i] = truncateToWidth(l, width-4)
	}
	body := strings.Join(lines, "\n")
	if more > 0 {
		body += "\n" + styleScrollIndicator.Render(fmt.Sprintf("… %d more lines", more))
	}
	return styleTextArea.Width(width - 2).Render(body)
}
