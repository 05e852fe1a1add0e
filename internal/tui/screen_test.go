package tui

import (
	"errors"
	"testing"

	"github.com/papapumpkin/holonet/internal/store"
	"github.com/papapumpkin/holonet/internal/swapi"
	"github.com/papapumpkin/holonet/internal/view"
)

func newTestScreen() (*store.Store, *Screen) {
	s := store.New()
	sc := NewScreen(s.State, swapi.DefaultBaseURL)
	s.Subscribe(sc.Listener())
	return s, sc
}

func TestScreenRerendersOnEveryDispatch(t *testing.T) {
	t.Parallel()
	s, sc := newTestScreen()
	before := sc.Renders()

	s.Dispatch(store.BeginFetch())
	s.Dispatch(store.FetchSucceeded(peopleDoc))

	if got := sc.Renders() - before; got != 2 {
		t.Errorf("renders = %d, want 2", got)
	}
	if len(sc.Tree().Results.Cards) != 2 {
		t.Errorf("cards = %d, want 2", len(sc.Tree().Results.Cards))
	}
}

func TestScreenRestoresFocus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		focus string
		after []store.Transition
		want  string
	}{
		{
			name:  "search input survives loading",
			focus: view.IDSearchInput,
			after: []store.Transition{store.BeginFetch()},
			want:  view.IDSearchInput,
		},
		{
			name:  "category button survives category change",
			focus: view.CategoryButtonID(swapi.Starships),
			after: []store.Transition{store.CategoryChanged(swapi.Starships)},
			want:  view.CategoryButtonID(swapi.Starships),
		},
		{
			name:  "card button that disappears falls back to search input",
			focus: view.CardButtonID(1),
			after: []store.Transition{store.BeginFetch()},
			want:  view.IDSearchInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s, sc := newTestScreen()
			s.Dispatch(store.FetchSucceeded(peopleDoc))
			if !sc.SetFocus(tt.focus) {
				t.Fatalf("SetFocus(%q) failed", tt.focus)
			}
			for _, tr := range tt.after {
				s.Dispatch(tr)
			}
			if got := sc.Focus(); got != tt.want {
				t.Errorf("focus = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestScreenSetFocusRejectsUnknown(t *testing.T) {
	t.Parallel()
	_, sc := newTestScreen()
	if sc.SetFocus("nope") {
		t.Error("SetFocus accepted an unknown ID")
	}
	if sc.Focus() != view.IDSearchInput {
		t.Errorf("focus changed to %q", sc.Focus())
	}
}

func TestScreenMoveFocusWraps(t *testing.T) {
	t.Parallel()
	_, sc := newTestScreen()

	sc.MoveFocus(1)
	if sc.Focus() != view.IDSearchButton {
		t.Errorf("after +1: %q", sc.Focus())
	}
	sc.MoveFocus(1)
	if sc.Focus() != view.CategoryButtonID(swapi.People) {
		t.Errorf("after wrap: %q", sc.Focus())
	}
	sc.MoveFocus(-1)
	if sc.Focus() != view.IDSearchButton {
		t.Errorf("after -1: %q", sc.Focus())
	}
}

func TestScreenDraftIsLocal(t *testing.T) {
	t.Parallel()
	s, sc := newTestScreen()
	seq := s.Seq()

	sc.SetDraft("yoda")

	if s.Seq() != seq {
		t.Error("editing the draft dispatched a transition")
	}
	if got := sc.Tree().Search.Input.Value; got != "yoda" {
		t.Errorf("input value = %q", got)
	}
	renders := sc.Renders()
	sc.SetDraft("yoda")
	if sc.Renders() != renders {
		t.Error("unchanged draft re-rendered")
	}
}

func TestScreenDetailsLifecycle(t *testing.T) {
	t.Parallel()
	s, sc := newTestScreen()
	s.Dispatch(store.FetchSucceeded(peopleDoc))
	sc.SetFocus(view.CardButtonID(1))

	sc.OpenDetails("https://swapi.tech/api/people/4")
	if sc.Focus() != view.IDDetailsClose {
		t.Fatalf("focus = %q, want close", sc.Focus())
	}
	if ids := sc.Tree().Focusables(); len(ids) != 1 {
		t.Errorf("focusables while open = %v", ids)
	}

	sc.ToggleRaw()
	if sc.Details().Raw {
		t.Error("raw toggled while loading")
	}

	sc.ResolveDetails(nil, errors.New("boom"))
	if sc.Details().Phase != view.DetailsFailed {
		t.Fatalf("phase = %v", sc.Details().Phase)
	}

	// Last response wins: a success arriving after a failure replaces it.
	sc.ResolveDetails(lukeDoc, nil)
	if sc.Details().Phase != view.DetailsLoaded {
		t.Fatalf("phase = %v", sc.Details().Phase)
	}
	sc.ToggleRaw()
	if sc.Tree().Details.Raw == nil {
		t.Error("raw not shown")
	}

	sc.CloseDetails()
	if sc.Details().Visible() {
		t.Fatal("overlay still visible")
	}
	if sc.Focus() != view.CardButtonID(1) {
		t.Errorf("focus after close = %q", sc.Focus())
	}
}

func TestScreenSetBaseURL(t *testing.T) {
	t.Parallel()
	s, sc := newTestScreen()
	s.Dispatch(store.FetchSucceeded(peopleDoc))

	sc.SetBaseURL("http://mirror.local/api")

	if got := sc.Tree().Results.Cards[1].Item.URL; got != "http://mirror.local/api/people/4" {
		t.Errorf("URL = %q", got)
	}
}
