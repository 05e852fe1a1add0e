package store

import "github.com/papapumpkin/holonet/internal/swapi"

// Kind identifies a transition.
type Kind string

// The closed set of transition kinds.
const (
	KindBeginFetch        Kind = "begin-fetch"
	KindFetchSucceeded    Kind = "fetch-succeeded"
	KindFetchFailed       Kind = "fetch-failed"
	KindCategoryChanged   Kind = "category-changed"
	KindSearchTermChanged Kind = "search-term-changed"
)

// Kinds returns every known transition kind.
func Kinds() []Kind {
	return []Kind{
		KindBeginFetch,
		KindFetchSucceeded,
		KindFetchFailed,
		KindCategoryChanged,
		KindSearchTermChanged,
	}
}

// Transition describes one state change. Payload depends on Kind:
// swapi.Document for fetch-succeeded, string for fetch-failed and
// search-term-changed, swapi.Category for category-changed, nil otherwise.
type Transition struct {
	Kind    Kind
	Payload any
}

// BeginFetch marks the start of a category fetch.
func BeginFetch() Transition {
	return Transition{Kind: KindBeginFetch}
}

// FetchSucceeded carries a successfully decoded response body.
func FetchSucceeded(doc swapi.Document) Transition {
	return Transition{Kind: KindFetchSucceeded, Payload: doc}
}

// FetchFailed carries the message to show for a failed fetch.
func FetchFailed(message string) Transition {
	return Transition{Kind: KindFetchFailed, Payload: message}
}

// CategoryChanged selects a new category.
func CategoryChanged(c swapi.Category) Transition {
	return Transition{Kind: KindCategoryChanged, Payload: c}
}

// SearchTermChanged commits a new search term.
func SearchTermChanged(term string) Transition {
	return Transition{Kind: KindSearchTermChanged, Payload: term}
}
