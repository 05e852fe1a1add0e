package view

import (
	"fmt"
	"strings"

	"github.com/papapumpkin/holonet/internal/store"
	"github.com/papapumpkin/holonet/internal/swapi"
)

// Element IDs used for focus tracking.
const (
	IDSearchInput  = "search-input"
	IDSearchButton = "search-button"
	IDDetailsClose = "details-close"
	IDDetailsRaw   = "details-raw"
)

// CategoryButtonID returns the ID of the category bar button for c.
func CategoryButtonID(c swapi.Category) string {
	return "category-" + string(c)
}

// CardButtonID returns the ID of the details button on the i-th card.
func CardButtonID(i int) string {
	return fmt.Sprintf("view-details-%d", i)
}

// Local is adapter-owned state that is not part of the store: the live
// search draft and the details overlay.
type Local struct {
	Draft   string
	Details Details
}

// Tree is the complete view for one render pass.
type Tree struct {
	Header     Header
	Categories CategoryBar
	Search     SearchForm
	Results    ResultsPanel
	Details    DetailsOverlay
}

// Header is the page title block.
type Header struct {
	Title    string
	Subtitle string
}

// CategoryBar holds one button per category.
type CategoryBar struct {
	Heading string
	Buttons []Node
}

// SearchForm is the search field and its submit control.
type SearchForm struct {
	Label  Node
	Input  Node
	Button Node
}

// ResultsView selects which of the results panel's views is shown.
type ResultsView int

// Results panel views, in precedence order.
const (
	ResultsLoading ResultsView = iota
	ResultsError
	ResultsWelcome
	ResultsData
)

// ResultsPanel is the results region.
type ResultsPanel struct {
	Title string
	View  ResultsView
	// Message is the error text for ResultsError and the no-results text for
	// an empty ResultsData.
	Message string
	Welcome Welcome
	// Count is the "Found N results" line; empty when there are no cards.
	Count string
	Cards []Card
}

// Welcome is the empty-state message shown before any search.
type Welcome struct {
	Heading      string
	Text         string
	StepsHeading string
	Steps        []string
}

// Card is one listing entry.
type Card struct {
	Item   ResultItem
	Button Node
}

// DetailsOverlay is the details region.
type DetailsOverlay struct {
	Visible bool
	Phase   DetailsPhase
	Title   string
	Rows    []DetailRow
	Error   string
	Close   Node
	// Raw is set when the overlay shows the resource as JSON.
	Raw *Node
}

// Renderer builds view trees. BaseURL is used to synthesize detail URLs for
// entries that only carry a uid; empty selects swapi.DefaultBaseURL.
type Renderer struct {
	BaseURL string
}

// Render projects st and local onto a fresh tree. It has no side effects.
func (r Renderer) Render(st store.State, local Local) Tree {
	return Tree{
		Header: Header{
			Title:    "Star Wars API Explorer",
			Subtitle: "Search for information about the Star Wars universe",
		},
		Categories: renderCategories(st),
		Search:     renderSearch(st, local),
		Results:    r.renderResults(st),
		Details:    renderDetails(local.Details),
	}
}

func renderCategories(st store.State) CategoryBar {
	bar := CategoryBar{Heading: "Categories"}
	for _, c := range swapi.Categories() {
		p := ButtonProps{
			ID:      CategoryButtonID(c),
			Text:    c.Title(),
			OnClick: Intent{Action: ActionSelectCategory, Category: c},
			Variant: VariantSecondary,
		}
		if c == st.Category {
			p.Variant = VariantPrimary
			p.Classes = "active"
		}
		bar.Buttons = append(bar.Buttons, Button(p))
	}
	return bar
}

func renderSearch(st store.State, local Local) SearchForm {
	return SearchForm{
		Label: Label(LabelProps{
			Text: fmt.Sprintf("Search %s:", st.Category),
			For:  IDSearchInput,
		}),
		Input: Input(InputProps{
			ID:          IDSearchInput,
			Placeholder: "Enter search term...",
			Value:       local.Draft,
			OnInput:     Intent{Action: ActionEditSearch},
			OnChange:    Intent{Action: ActionSearch},
		}),
		Button: Button(ButtonProps{
			ID:      IDSearchButton,
			Text:    "Search",
			OnClick: Intent{Action: ActionSearch},
		}),
	}
}

func (r Renderer) renderResults(st store.State) ResultsPanel {
	p := ResultsPanel{Title: resultsTitle(st)}

	switch {
	case st.Loading:
		p.View = ResultsLoading
	case st.HasError():
		p.View = ResultsError
		p.Message = st.Error
	case !st.HasData():
		p.View = ResultsWelcome
		p.Welcome = Welcome{
			Heading:      "Welcome to the SWAPI Explorer",
			Text:         "Search the Star Wars API to discover characters, planets, vehicles, and more!",
			StepsHeading: "How to search:",
			Steps: []string{
				"Select a category from the buttons above",
				"Type your search term in the search box",
				"Press Enter or click the Search button",
			},
		}
	default:
		p.View = ResultsData
		items := Normalize(st.Data)
		if len(items) == 0 {
			p.Message = fmt.Sprintf(`No results found for "%s" in %s. Try a different search term.`, st.SearchTerm, st.Category)
			return p
		}
		p.Count = fmt.Sprintf("Found %d %s", len(items), plural(len(items), "result", "results"))
		for i, doc := range items {
			item := ItemOf(doc, st.Category, r.BaseURL)
			btn := ButtonProps{
				ID:      CardButtonID(i),
				Text:    "View Details",
				Variant: VariantSecondary,
			}
			if item.URL != "" {
				btn.OnClick = Intent{Action: ActionViewDetails, URL: item.URL}
			}
			p.Cards = append(p.Cards, Card{Item: item, Button: Button(btn)})
		}
	}
	return p
}

func resultsTitle(st store.State) string {
	if !st.HasData() {
		return "Star Wars Data Explorer"
	}
	if strings.TrimSpace(st.SearchTerm) != "" {
		return fmt.Sprintf(`Results for "%s" in %s`, st.SearchTerm, st.Category)
	}
	return fmt.Sprintf("All %s", st.Category)
}

func renderDetails(d Details) DetailsOverlay {
	o := DetailsOverlay{
		Visible: d.Visible(),
		Phase:   d.Phase,
		Close: Button(ButtonProps{
			ID:      IDDetailsClose,
			Text:    "×",
			Variant: "close",
			OnClick: Intent{Action: ActionCloseDetails},
		}),
	}
	switch d.Phase {
	case DetailsLoaded:
		o.Title = DetailTitle(d.Doc)
		o.Rows = DetailRows(d.Doc)
		if d.Raw {
			raw := RawJSON(d.Doc)
			n := TextArea(TextAreaProps{
				ID:       IDDetailsRaw,
				Value:    raw,
				Rows:     strings.Count(raw, "\n") + 1,
				Disabled: true,
			})
			o.Raw = &n
		}
	case DetailsFailed:
		o.Error = d.Error
	}
	return o
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
