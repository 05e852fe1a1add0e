package view

import (
	"fmt"
	"strconv"

	"github.com/papapumpkin/holonet/internal/swapi"
)

// Normalize converts the API's listing shapes into one list of items.
//
// The rule, in order: result when it is a list, results when it is a list,
// result wrapped in a one-element list when message is "ok" and result is
// an object. Any other shape yields an empty list; an unrecognized shape is
// shown as "no results" rather than reported as an error.
func Normalize(doc swapi.Document) []swapi.Document {
	if doc == nil {
		return []swapi.Document{}
	}
	if list, ok := doc["result"].([]any); ok {
		return objects(list)
	}
	if list, ok := doc["results"].([]any); ok {
		return objects(list)
	}
	if msg, _ := doc["message"].(string); msg == "ok" {
		if obj, ok := doc["result"].(map[string]any); ok {
			return []swapi.Document{obj}
		}
	}
	return []swapi.Document{}
}

// objects keeps the object entries of a decoded JSON list.
func objects(list []any) []swapi.Document {
	out := make([]swapi.Document, 0, len(list))
	for _, v := range list {
		if obj, ok := v.(map[string]any); ok {
			out = append(out, obj)
		}
	}
	return out
}

// ResultItem is the display projection of one listing entry.
type ResultItem struct {
	Name        string
	Description string
	// URL locates the item's detail resource. Empty when the entry carries
	// neither a url nor a uid.
	URL string
}

// ItemOf projects doc into a ResultItem. The name falls back from name to
// properties.name to "Unknown"; the locator from url to a URL synthesized
// from uid within category.
func ItemOf(doc swapi.Document, category swapi.Category, baseURL string) ResultItem {
	item := ResultItem{Name: "Unknown"}
	if name := stringField(doc, "name"); name != "" {
		item.Name = name
	} else if props, ok := doc["properties"].(map[string]any); ok {
		if name := stringField(props, "name"); name != "" {
			item.Name = name
		}
	}
	item.Description = stringField(doc, "description")

	if u := stringField(doc, "url"); u != "" {
		item.URL = u
	} else if uid := scalarText(doc["uid"]); uid != "" {
		if baseURL == "" {
			baseURL = swapi.DefaultBaseURL
		}
		item.URL = swapi.ResourceURL(baseURL, category, uid)
	}
	return item
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

// scalarText formats a truthy JSON scalar. Falsy values (empty string,
// zero, false, null) and containers yield "".
func scalarText(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		if x == 0 {
			return ""
		}
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		if !x {
			return ""
		}
		return "true"
	case nil, map[string]any, []any:
		return ""
	default:
		return fmt.Sprint(x)
	}
}
