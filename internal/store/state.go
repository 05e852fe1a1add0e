// Package store holds the explorer's application state and advances it
// through a closed set of transitions. State is never mutated in place:
// every dispatch replaces it with the value returned by Reduce.
package store

import "github.com/papapumpkin/holonet/internal/swapi"

// State is the single source of truth for the explorer.
type State struct {
	// Category is always a member of the fixed category set.
	Category swapi.Category
	// SearchTerm is the committed search text. It survives category changes.
	SearchTerm string
	// Data is the last successful fetch result, or nil when nothing has been
	// fetched since startup or the last category change.
	Data swapi.Document
	// Loading is true while a category fetch is outstanding.
	Loading bool
	// Error holds the last fetch failure message. Empty means no error.
	Error string
}

// Initial returns the state the explorer starts with.
func Initial() State {
	return State{Category: swapi.DefaultCategory}
}

// HasData reports whether a fetch result is available for display.
func (s State) HasData() bool {
	return s.Data != nil
}

// HasError reports whether the last fetch failed.
func (s State) HasError() bool {
	return s.Error != ""
}
