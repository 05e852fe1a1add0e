// Package view projects explorer state onto a declarative tree. Render is a
// pure function of (store.State, Local); a platform adapter paints the tree
// and routes user input back through the Intents attached to its nodes.
package view

import (
	"slices"

	"github.com/papapumpkin/holonet/internal/swapi"
)

// NodeKind identifies an interactive element.
type NodeKind int

// Node kinds.
const (
	KindButton NodeKind = iota
	KindInput
	KindLabel
	KindTextArea
)

// Variant selects the visual weight of a button.
type Variant string

// Button variants.
const (
	VariantPrimary   Variant = "primary"
	VariantSecondary Variant = "secondary"
)

// Event names an interaction a node can react to.
type Event string

// Events wired by the presentation primitives.
const (
	EventClick  Event = "click"
	EventInput  Event = "input"
	EventChange Event = "change"
)

// Action is what the adapter should do when an event fires.
type Action string

// Actions understood by the adapter.
const (
	ActionSelectCategory Action = "select-category"
	ActionSearch         Action = "search"
	ActionEditSearch     Action = "edit-search"
	ActionViewDetails    Action = "view-details"
	ActionCloseDetails   Action = "close-details"
)

// Intent is a callback expressed as data: the action plus its argument.
type Intent struct {
	Action   Action
	Category swapi.Category
	URL      string
}

// IsZero reports whether i carries no action.
func (i Intent) IsZero() bool {
	return i.Action == ""
}

// Node is one interactive element of the view tree.
type Node struct {
	Kind        NodeKind
	ID          string
	Text        string
	Type        string
	Placeholder string
	Value       string
	For         string
	Rows        int
	Variant     Variant
	Classes     []string
	Disabled    bool
	Handlers    map[Event]Intent
}

// On returns the intent wired to e. Disabled nodes never fire.
func (n Node) On(e Event) (Intent, bool) {
	if n.Disabled {
		return Intent{}, false
	}
	in, ok := n.Handlers[e]
	return in, ok
}

// HasClass reports whether class is among the node's classes.
func (n Node) HasClass(class string) bool {
	return slices.Contains(n.Classes, class)
}

// Focusable reports whether the node can hold keyboard focus.
func (n Node) Focusable() bool {
	if n.ID == "" || n.Disabled {
		return false
	}
	return n.Kind == KindButton || n.Kind == KindInput || n.Kind == KindTextArea
}
