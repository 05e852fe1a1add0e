package tui

import (
	"github.com/papapumpkin/holonet/internal/store"
	"github.com/papapumpkin/holonet/internal/swapi"
	"github.com/papapumpkin/holonet/internal/view"
)

// Screen is the committed view: the last rendered tree, the focused element
// and the adapter-owned local state. It re-renders in full on every store
// dispatch and on every local change.
type Screen struct {
	state    func() store.State
	renderer view.Renderer
	local    view.Local
	tree     view.Tree
	focus    string
	// returnFocus is where focus goes back to when the overlay closes.
	returnFocus string
	renders     int
}

// NewScreen creates a Screen reading state from the given source. The
// initial render focuses the search field.
func NewScreen(state func() store.State, baseURL string) *Screen {
	s := &Screen{
		state:    state,
		renderer: view.Renderer{BaseURL: baseURL},
		focus:    view.IDSearchInput,
	}
	s.Refresh()
	return s
}

// Listener adapts the screen to store.Subscribe.
func (s *Screen) Listener() store.Listener {
	return func(_, _ store.State, _ store.Transition) {
		s.Refresh()
	}
}

// Refresh rebuilds the tree from current state and then restores focus to
// the element that held it before, when it still exists.
func (s *Screen) Refresh() {
	previous := s.focus
	s.tree = s.renderer.Render(s.state(), s.local)
	s.renders++
	if id, ok := view.RestoreFocus(s.tree, previous); ok {
		s.focus = id
		return
	}
	s.focus = s.fallbackFocus()
}

func (s *Screen) fallbackFocus() string {
	if s.tree.Details.Visible {
		return view.IDDetailsClose
	}
	if id, ok := view.RestoreFocus(s.tree, s.returnFocus); ok {
		return id
	}
	if id, ok := view.RestoreFocus(s.tree, view.IDSearchInput); ok {
		return id
	}
	ids := s.tree.Focusables()
	if len(ids) == 0 {
		return ""
	}
	return ids[0]
}

// Tree returns the committed tree.
func (s *Screen) Tree() view.Tree {
	return s.tree
}

// Focus returns the focused element ID.
func (s *Screen) Focus() string {
	return s.focus
}

// Renders returns how many times the tree was rebuilt.
func (s *Screen) Renders() int {
	return s.renders
}

// FocusedNode returns the focused node.
func (s *Screen) FocusedNode() (view.Node, bool) {
	return s.tree.Find(s.focus)
}

// SetFocus moves focus to id when it names a focusable element.
func (s *Screen) SetFocus(id string) bool {
	if _, ok := view.RestoreFocus(s.tree, id); !ok {
		return false
	}
	s.focus = id
	return true
}

// MoveFocus steps through the tab order.
func (s *Screen) MoveFocus(delta int) {
	s.focus = view.NextFocus(s.tree, s.focus, delta)
}

// Draft returns the live search text.
func (s *Screen) Draft() string {
	return s.local.Draft
}

// SetDraft updates the search text without touching the store.
func (s *Screen) SetDraft(v string) {
	if v == s.local.Draft {
		return
	}
	s.local.Draft = v
	s.Refresh()
}

// Details returns the overlay state.
func (s *Screen) Details() view.Details {
	return s.local.Details
}

// OpenDetails shows the overlay in its loading state for url.
func (s *Screen) OpenDetails(url string) {
	if !s.local.Details.Visible() {
		s.returnFocus = s.focus
	}
	s.local.Details = view.OpenDetails(url)
	s.Refresh()
}

// ResolveDetails applies a details fetch outcome. Responses are not matched
// against the open URL; the last one to arrive wins.
func (s *Screen) ResolveDetails(doc swapi.Document, err error) {
	next := s.local.Details.Resolve(doc, err)
	if next.Phase == s.local.Details.Phase && !next.Visible() {
		return
	}
	s.local.Details = next
	s.Refresh()
}

// CloseDetails hides the overlay and returns focus to where it was.
func (s *Screen) CloseDetails() {
	if !s.local.Details.Visible() {
		return
	}
	s.local.Details = view.Details{}
	s.Refresh()
	s.returnFocus = ""
}

// ToggleRaw switches a loaded overlay between rows and raw JSON.
func (s *Screen) ToggleRaw() {
	if s.local.Details.Phase != view.DetailsLoaded {
		return
	}
	s.local.Details.Raw = !s.local.Details.Raw
	s.Refresh()
}

// SetBaseURL changes the root used to synthesize detail URLs.
func (s *Screen) SetBaseURL(u string) {
	s.renderer.BaseURL = u
	s.Refresh()
}
