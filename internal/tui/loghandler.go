package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
)

// LogHandler is a slog.Handler that routes records into a running program
// as MsgLog messages for the status bar. Records below the configured level
// are dropped, as are records arriving before SetProgram is called.
//
// Handlers derived via WithAttrs/WithGroup share the program pointer, so a
// single SetProgram call reaches all of them.
type LogHandler struct {
	level   slog.Level
	program *atomic.Pointer[tea.Program]
	attrs   []slog.Attr
	group   string
}

// NewLogHandler creates a handler for records at or above level.
func NewLogHandler(level slog.Level) *LogHandler {
	return &LogHandler{
		level:   level,
		program: &atomic.Pointer[tea.Program]{},
	}
}

// SetProgram sets the program that receives log messages. Safe to call
// from any goroutine.
func (h *LogHandler) SetProgram(p *tea.Program) {
	h.program.Store(p)
}

// Enabled reports whether the handler is interested in records at level.
func (h *LogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

// Handle formats the record as a one-line summary and sends it. Delivery
// happens on its own goroutine: records are often logged from inside
// Update, and Program.Send blocks until the event loop receives.
func (h *LogHandler) Handle(_ context.Context, r slog.Record) error {
	p := h.program.Load()
	if p == nil {
		return nil
	}
	msg := MsgLog{Summary: Summarize(r, h.attrs, h.group), Level: r.Level}
	go p.Send(msg)
	return nil
}

// WithAttrs returns a handler that adds attrs to every summary.
func (h *LogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.attrs = append(append([]slog.Attr(nil), h.attrs...), h.qualify(attrs)...)
	return &next
}

// WithGroup returns a handler that prefixes later attribute keys with name.
func (h *LogHandler) WithGroup(name string) slog.Handler {
	next := *h
	if h.group != "" {
		name = h.group + "." + name
	}
	next.group = name
	return &next
}

func (h *LogHandler) qualify(attrs []slog.Attr) []slog.Attr {
	if h.group == "" {
		return attrs
	}
	out := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		out[i] = slog.Attr{Key: h.group + "." + a.Key, Value: a.Value}
	}
	return out
}

// Summarize renders "message (key=value, ...)" from a record and the
// attributes accumulated on the handler.
func Summarize(r slog.Record, attrs []slog.Attr, group string) string {
	var parts []string
	for _, a := range attrs {
		parts = append(parts, fmt.Sprintf("%s=%s", a.Key, a.Value))
	}
	r.Attrs(func(a slog.Attr) bool {
		k := a.Key
		if group != "" {
			k = group + "." + k
		}
		parts = append(parts, fmt.Sprintf("%s=%s", k, a.Value))
		return true
	})
	if len(parts) == 0 {
		return r.Message
	}
	return r.Message + " (" + strings.Join(parts, ", ") + ")"
}
