package store

import "github.com/papapumpkin/holonet/internal/swapi"

// Reduce returns the state that results from applying t to s. It is pure
// and total: unknown kinds, and payloads of the wrong type, leave s
// unchanged.
func Reduce(s State, t Transition) State {
	switch t.Kind {
	case KindBeginFetch:
		s.Loading = true
		s.Error = ""
	case KindFetchSucceeded:
		doc, ok := t.Payload.(swapi.Document)
		if !ok && t.Payload != nil {
			return s
		}
		s.Loading = false
		s.Data = doc
	case KindFetchFailed:
		msg, ok := t.Payload.(string)
		if !ok {
			return s
		}
		s.Loading = false
		s.Error = msg
	case KindCategoryChanged:
		c, ok := t.Payload.(swapi.Category)
		if !ok || !c.Valid() {
			return s
		}
		s.Category = c
		s.Data = nil
	case KindSearchTermChanged:
		term, ok := t.Payload.(string)
		if !ok {
			return s
		}
		s.SearchTerm = term
	}
	return s
}
