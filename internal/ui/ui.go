// Package ui writes the explorer's plain-text output: results panels and
// detail rows for the headless commands, and journal events for
// `holonet journal`.
package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/papapumpkin/holonet/internal/ansi"
	"github.com/papapumpkin/holonet/internal/journal"
	"github.com/papapumpkin/holonet/internal/view"
)

// Printer writes formatted output to a writer. Colors are emitted only
// when enabled, so output piped to a file stays plain.
type Printer struct {
	w     io.Writer
	color bool
}

// New creates a Printer writing to w.
func New(w io.Writer, color bool) *Printer {
	return &Printer{w: w, color: color}
}

func (p *Printer) paint(s string, codes ...string) string {
	if !p.color {
		return s
	}
	return ansi.Wrap(s, codes...)
}

// Results prints a results panel: the error banner, the welcome text, the
// no-results message or one block per card.
func (p *Printer) Results(panel view.ResultsPanel) {
	fmt.Fprintln(p.w, p.paint(panel.Title, ansi.Bold, ansi.Yellow))

	switch panel.View {
	case view.ResultsLoading:
		fmt.Fprintln(p.w, p.paint("Loading...", ansi.Dim))
	case view.ResultsError:
		p.Error(panel.Message)
	case view.ResultsWelcome:
		w := panel.Welcome
		fmt.Fprintln(p.w, w.Heading)
		fmt.Fprintln(p.w, p.paint(w.Text, ansi.Dim))
	case view.ResultsData:
		if len(panel.Cards) == 0 {
			fmt.Fprintln(p.w, p.paint(panel.Message, ansi.Dim))
			return
		}
		fmt.Fprintln(p.w, p.paint(panel.Count, ansi.Dim))
		for _, c := range panel.Cards {
			fmt.Fprintln(p.w)
			fmt.Fprintln(p.w, p.paint("◆ "+c.Item.Name, ansi.Bold, ansi.Blue))
			if c.Item.Description != "" {
				fmt.Fprintln(p.w, "  "+c.Item.Description)
			}
			if c.Item.URL != "" {
				fmt.Fprintln(p.w, "  "+p.paint(c.Item.URL, ansi.Dim))
			}
		}
	}
}

// Details prints a resource title followed by its rows as aligned
// label/value pairs.
func (p *Printer) Details(title string, rows []view.DetailRow) {
	fmt.Fprintln(p.w, p.paint(title, ansi.Bold, ansi.Cyan))
	width := 0
	for _, r := range rows {
		width = max(width, len(r.Label))
	}
	for _, r := range rows {
		label := fmt.Sprintf("%-*s", width, r.Label)
		fmt.Fprintf(p.w, "  %s  %s\n", p.paint(label, ansi.Dim), r.Value)
	}
}

// Error prints msg as an error line.
func (p *Printer) Error(msg string) {
	fmt.Fprintf(p.w, "%s%s\n", p.paint("error: ", ansi.Red, ansi.Bold), msg)
}

// Info prints a de-emphasized line.
func (p *Printer) Info(msg string) {
	fmt.Fprintln(p.w, p.paint(msg, ansi.Dim))
}

// EventLine decodes a JSONL journal line and prints a human-readable
// representation. Lines that are not events are echoed with a marker.
func (p *Printer) EventLine(line string) {
	var evt journal.Event
	if err := json.Unmarshal([]byte(line), &evt); err != nil {
		fmt.Fprintf(p.w, "??? %s\n", line)
		return
	}
	p.Event(evt)
}

// Event prints a journal event on one line: time, kind, session and the
// data as sorted key=value pairs.
func (p *Printer) Event(evt journal.Event) {
	parts := []string{
		p.paint(fmt.Sprintf("[%s]", evt.Timestamp.Format(time.TimeOnly)), ansi.Dim),
		p.paint(evt.Kind, kindColor(evt.Kind)),
	}
	if evt.Session != "" {
		parts = append(parts, fmt.Sprintf("session=%s", shortSession(evt.Session)))
	}
	if evt.Data != nil {
		if m, ok := evt.Data.(map[string]any); ok {
			parts = append(parts, formatDataMap(m))
		} else {
			data, _ := json.Marshal(evt.Data)
			parts = append(parts, string(data))
		}
	}
	fmt.Fprintln(p.w, strings.Join(parts, " "))
}

func kindColor(kind string) string {
	switch kind {
	case journal.KindSessionStart, journal.KindSessionEnd:
		return ansi.Cyan
	default:
		return ansi.Green
	}
}

// shortSession keeps the first block of a UUID session id.
func shortSession(s string) string {
	if i := strings.IndexByte(s, '-'); i > 0 {
		return s[:i]
	}
	return s
}

// formatDataMap formats a data map as key=value pairs sorted by key.
// Empty values are skipped.
func formatDataMap(m map[string]any) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		v := m[k]
		if v == nil || v == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s=%v", k, v)
	}
	return b.String()
}
