package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by --format.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
	formatTOML = "toml"
)

// errUnknownFormat is wrapped when --format names an unsupported format.
var errUnknownFormat = errors.New("unknown format")

// checkFormat validates a --format value.
func checkFormat(format string) (string, error) {
	f := strings.ToLower(strings.TrimSpace(format))
	switch f {
	case formatText, formatJSON, formatYAML, formatTOML:
		return f, nil
	}
	return "", fmt.Errorf("%w %q (want text, json, yaml or toml)", errUnknownFormat, format)
}

// encode renders v in a structured format.
func encode(format string, v any) (string, error) {
	var (
		b   []byte
		err error
	)
	switch format {
	case formatJSON:
		b, err = json.MarshalIndent(v, "", "  ")
		b = append(b, '\n')
	case formatYAML:
		b, err = yaml.Marshal(v)
	case formatTOML:
		b, err = toml.Marshal(dropNulls(v))
	default:
		return "", fmt.Errorf("%w %q", errUnknownFormat, format)
	}
	if err != nil {
		return "", fmt.Errorf("encode %s: %w", format, err)
	}
	return string(b), nil
}

// writeEncoded encodes v and writes it to w, syntax highlighted when color
// is set.
func writeEncoded(w io.Writer, format string, v any, color bool) error {
	s, err := encode(format, v)
	if err != nil {
		return err
	}
	if color {
		return quick.Highlight(w, s, format, "terminal256", "monokai")
	}
	_, err = io.WriteString(w, s)
	return err
}

// dropNulls removes nil values from decoded JSON, which TOML cannot
// represent. Other values are returned unchanged.
func dropNulls(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			if e == nil {
				continue
			}
			out[k] = dropNulls(e)
		}
		return out
	case []any:
		out := make([]any, 0, len(t))
		for _, e := range t {
			if e == nil {
				continue
			}
			out = append(out, dropNulls(e))
		}
		return out
	}
	return v
}
