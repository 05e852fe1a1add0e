package view

import "strings"

// ButtonProps describes a button.
type ButtonProps struct {
	Text     string
	ID       string
	OnClick  Intent
	Classes  string
	Type     string
	Disabled bool
	// Variant defaults to primary. Any value other than primary or
	// secondary gets the plain "btn" class.
	Variant Variant
}

// InputProps describes a single-line text field.
type InputProps struct {
	ID          string
	Type        string
	Placeholder string
	Value       string
	Classes     string
	OnInput     Intent
	OnChange    Intent
	Disabled    bool
}

// LabelProps describes a label, optionally bound to a field by ID.
type LabelProps struct {
	Text    string
	For     string
	Classes string
}

// TextAreaProps describes a multi-line text field.
type TextAreaProps struct {
	ID          string
	Placeholder string
	Value       string
	Classes     string
	Rows        int
	OnInput     Intent
	Disabled    bool
}

// Button builds a button node.
func Button(p ButtonProps) Node {
	n := Node{
		Kind:     KindButton,
		ID:       p.ID,
		Text:     p.Text,
		Type:     p.Type,
		Variant:  p.Variant,
		Disabled: p.Disabled,
	}
	if n.Type == "" {
		n.Type = "button"
	}
	if n.Variant == "" {
		n.Variant = VariantPrimary
	}
	switch n.Variant {
	case VariantPrimary:
		n.Classes = append(n.Classes, "btn-primary")
	case VariantSecondary:
		n.Classes = append(n.Classes, "btn-secondary")
	default:
		n.Classes = append(n.Classes, "btn")
	}
	n.Classes = append(n.Classes, splitClasses(p.Classes)...)
	if p.Disabled {
		n.Classes = append(n.Classes, "disabled")
	}
	n.Handlers = wire(map[Event]Intent{EventClick: p.OnClick})
	return n
}

// Input builds a text field node.
func Input(p InputProps) Node {
	n := Node{
		Kind:        KindInput,
		ID:          p.ID,
		Type:        p.Type,
		Placeholder: p.Placeholder,
		Value:       p.Value,
		Disabled:    p.Disabled,
		Classes:     []string{"input"},
	}
	if n.Type == "" {
		n.Type = "text"
	}
	if p.Disabled {
		n.Classes = append(n.Classes, "disabled")
	}
	n.Classes = append(n.Classes, splitClasses(p.Classes)...)
	n.Handlers = wire(map[Event]Intent{EventInput: p.OnInput, EventChange: p.OnChange})
	return n
}

// Label builds a label node.
func Label(p LabelProps) Node {
	n := Node{
		Kind:    KindLabel,
		Text:    p.Text,
		For:     p.For,
		Classes: []string{"label"},
	}
	n.Classes = append(n.Classes, splitClasses(p.Classes)...)
	return n
}

// TextArea builds a multi-line text node. Rows defaults to 4.
func TextArea(p TextAreaProps) Node {
	n := Node{
		Kind:        KindTextArea,
		ID:          p.ID,
		Placeholder: p.Placeholder,
		Value:       p.Value,
		Rows:        p.Rows,
		Disabled:    p.Disabled,
		Classes:     []string{"textarea"},
	}
	if n.Rows <= 0 {
		n.Rows = 4
	}
	if p.Disabled {
		n.Classes = append(n.Classes, "disabled")
	}
	n.Classes = append(n.Classes, splitClasses(p.Classes)...)
	n.Handlers = wire(map[Event]Intent{EventInput: p.OnInput})
	return n
}

func splitClasses(s string) []string {
	return strings.Fields(s)
}

// wire drops events with no intent attached.
func wire(in map[Event]Intent) map[Event]Intent {
	out := make(map[Event]Intent, len(in))
	for e, intent := range in {
		if !intent.IsZero() {
			out[e] = intent
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
