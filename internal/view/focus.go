package view

// Focusables lists the IDs that can hold focus, in tab order. While the
// details overlay is open only its controls are reachable.
func (t Tree) Focusables() []string {
	if t.Details.Visible {
		return []string{t.Details.Close.ID}
	}
	var ids []string
	add := func(n Node) {
		if n.Focusable() {
			ids = append(ids, n.ID)
		}
	}
	for _, b := range t.Categories.Buttons {
		add(b)
	}
	add(t.Search.Input)
	add(t.Search.Button)
	for _, c := range t.Results.Cards {
		add(c.Button)
	}
	return ids
}

// Find returns the node with the given ID.
func (t Tree) Find(id string) (Node, bool) {
	if id == "" {
		return Node{}, false
	}
	nodes := make([]Node, 0, len(t.Categories.Buttons)+len(t.Results.Cards)+4)
	nodes = append(nodes, t.Categories.Buttons...)
	nodes = append(nodes, t.Search.Label, t.Search.Input, t.Search.Button)
	for _, c := range t.Results.Cards {
		nodes = append(nodes, c.Button)
	}
	if t.Details.Visible {
		nodes = append(nodes, t.Details.Close)
		if t.Details.Raw != nil {
			nodes = append(nodes, *t.Details.Raw)
		}
	}
	for _, n := range nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}

// RestoreFocus is the post-render focus step. It returns previous when the
// new tree still has a focusable element with that ID.
func RestoreFocus(t Tree, previous string) (string, bool) {
	if previous == "" {
		return "", false
	}
	for _, id := range t.Focusables() {
		if id == previous {
			return id, true
		}
	}
	return "", false
}

// NextFocus moves delta steps through the tab order from current, wrapping
// at both ends. An unknown current starts from the first element.
func NextFocus(t Tree, current string, delta int) string {
	ids := t.Focusables()
	if len(ids) == 0 {
		return ""
	}
	idx := -1
	for i, id := range ids {
		if id == current {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ids[0]
	}
	n := len(ids)
	return ids[((idx+delta)%n+n)%n]
}
