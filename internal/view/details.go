package view

import (
	"encoding/json"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/papapumpkin/holonet/internal/swapi"
)

// DetailsPhase is the lifecycle of the details overlay.
type DetailsPhase int

// Details overlay phases.
const (
	DetailsHidden DetailsPhase = iota
	DetailsLoading
	DetailsLoaded
	DetailsFailed
)

// Details is the adapter-owned state of the details overlay. It lives
// outside the store: opening or closing the overlay is not a transition.
type Details struct {
	Phase DetailsPhase
	URL   string
	Doc   swapi.Document
	Error string
	// Raw shows the resource as indented JSON instead of property rows.
	Raw bool
}

// OpenDetails returns the overlay state while url is being fetched.
func OpenDetails(url string) Details {
	return Details{Phase: DetailsLoading, URL: url}
}

// Resolve applies a fetch outcome. A hidden overlay stays hidden.
func (d Details) Resolve(doc swapi.Document, err error) Details {
	if d.Phase == DetailsHidden {
		return d
	}
	if err != nil {
		return Details{Phase: DetailsFailed, URL: d.URL, Error: swapi.Describe(err)}
	}
	return Details{Phase: DetailsLoaded, URL: d.URL, Doc: doc, Raw: d.Raw}
}

// Visible reports whether the overlay is shown.
func (d Details) Visible() bool {
	return d.Phase != DetailsHidden
}

// DetailRow is one labeled property of a resource.
type DetailRow struct {
	Label string
	Value string
}

// properties locates the property map of a detail response: result (or
// the document itself), then its properties (or itself).
func properties(doc swapi.Document) map[string]any {
	var result map[string]any = doc
	if r, ok := doc["result"].(map[string]any); ok {
		result = r
	}
	if p, ok := result["properties"].(map[string]any); ok {
		return p
	}
	return result
}

// DetailTitle returns the resource name, or "Details" when it has none.
func DetailTitle(doc swapi.Document) string {
	if name := stringField(properties(doc), "name"); name != "" {
		return name
	}
	return "Details"
}

// DetailRows lists every truthy scalar property except name, sorted by key,
// with keys humanized.
func DetailRows(doc swapi.Document) []DetailRow {
	props := properties(doc)
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	rows := make([]DetailRow, 0, len(keys))
	for _, k := range keys {
		if k == "name" {
			continue
		}
		v := scalarText(props[k])
		if v == "" {
			continue
		}
		rows = append(rows, DetailRow{Label: Humanize(k), Value: v})
	}
	return rows
}

// Humanize turns a property key into a label: underscores become spaces
// and every word starts with a capital letter.
func Humanize(key string) string {
	spaced := strings.ReplaceAll(key, "_", " ")
	return cases.Title(language.Und, cases.NoLower).String(spaced)
}

// RawJSON renders doc as indented JSON.
func RawJSON(doc swapi.Document) string {
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return ""
	}
	return string(b)
}
