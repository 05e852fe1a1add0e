package tui

import (
	"context"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/papapumpkin/holonet/internal/app"
	"github.com/papapumpkin/holonet/internal/store"
	"github.com/papapumpkin/holonet/internal/swapi"
)

// stubGateway records calls and returns canned documents.
type stubGateway struct {
	mu          sync.Mutex
	base        string
	categoryDoc swapi.Document
	categoryErr error
	resourceDoc swapi.Document
	resourceErr error
	categories  []string
	resources   []string
}

func (g *stubGateway) FetchCategory(_ context.Context, c swapi.Category, term string) (swapi.Document, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.categories = append(g.categories, string(c)+":"+term)
	return g.categoryDoc, g.categoryErr
}

func (g *stubGateway) FetchResource(_ context.Context, url string) (swapi.Document, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.resources = append(g.resources, url)
	return g.resourceDoc, g.resourceErr
}

func (g *stubGateway) BaseURL() string {
	if g.base == "" {
		return swapi.DefaultBaseURL
	}
	return g.base
}

func (g *stubGateway) calls() (categories, resources []string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]string(nil), g.categories...), append([]string(nil), g.resources...)
}

var peopleDoc = swapi.Document{
	"message": "ok",
	"result": []any{
		map[string]any{
			"uid":        "1",
			"url":        "https://swapi.tech/api/people/1",
			"properties": map[string]any{"name": "Luke Skywalker"},
		},
		map[string]any{
			"uid":        "4",
			"properties": map[string]any{"name": "Darth Vader"},
		},
	},
}

var lukeDoc = swapi.Document{
	"message": "ok",
	"result": map[string]any{
		"properties": map[string]any{
			"name":       "Luke Skywalker",
			"height":     "172",
			"eye_color":  "blue",
			"homeworld":  "https://swapi.tech/api/planets/1",
			"films":      []any{"a", "b"},
			"birth_year": "19BBY",
		},
	},
}

// newTestModel builds a sized model over a fresh store.
func newTestModel(t *testing.T, gw *stubGateway) AppModel {
	t.Helper()
	return update(t, newModel(gw), tea.WindowSizeMsg{Width: 100, Height: 40})
}

// update feeds one message and discards the command.
func update(t *testing.T, m AppModel, msg tea.Msg) AppModel {
	t.Helper()
	next, _ := m.Update(msg)
	am, ok := next.(AppModel)
	if !ok {
		t.Fatalf("Update returned %T, want AppModel", next)
	}
	return am
}

// press feeds a key and returns the resulting command.
func press(t *testing.T, m AppModel, k tea.KeyMsg) (AppModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(k)
	return next.(AppModel), cmd
}

// typeText sends each rune as its own key press.
func typeText(t *testing.T, m AppModel, s string) AppModel {
	t.Helper()
	for _, r := range s {
		m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

// runCmd executes cmd and flattens batches into their messages.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func keyEnter() tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyEnter} }
func keyTab() tea.KeyMsg   { return tea.KeyMsg{Type: tea.KeyTab} }
func keyEsc() tea.KeyMsg   { return tea.KeyMsg{Type: tea.KeyEsc} }
func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// newModel builds an unsized model over a fresh store.
func newModel(gw app.Gateway) AppModel {
	return NewAppModel(context.Background(), app.NewController(store.New(), nil), gw)
}
