// Package logging builds the structured logger. Records go to a rotated
// JSON log file; a terminal UI never writes log output to the screen it
// is drawing on.
package logging

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures New.
type Options struct {
	// Path is the log file. Empty discards file output.
	Path  string
	Level slog.Level
	// Extra handlers receive every record the file handler accepts, plus
	// whatever their own level admits.
	Extra []slog.Handler
}

// New returns a logger writing JSON records to a size-rotated file, and a
// Closer for the file.
func New(opts Options) (*slog.Logger, io.Closer) {
	var w io.Writer = io.Discard
	var closer io.Closer = nopCloser{}
	if opts.Path != "" {
		lj := &lumberjack.Logger{
			Filename:   opts.Path,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
		w = lj
		closer = lj
	}

	handlers := []slog.Handler{slog.NewJSONHandler(w, &slog.HandlerOptions{Level: opts.Level})}
	handlers = append(handlers, opts.Extra...)
	if len(handlers) == 1 {
		return slog.New(handlers[0]), closer
	}
	return slog.New(Fanout(handlers...)), closer
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// FanoutHandler delivers each record to every child handler that is
// enabled for its level.
type FanoutHandler struct {
	handlers []slog.Handler
}

// Fanout combines handlers into one.
func Fanout(handlers ...slog.Handler) *FanoutHandler {
	return &FanoutHandler{handlers: handlers}
}

// Enabled reports whether any child handler accepts level.
func (f *FanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range f.handlers {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

// Handle passes r to each enabled child and joins their errors.
func (f *FanoutHandler) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, h := range f.handlers {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// WithAttrs returns a fanout whose children all carry attrs.
func (f *FanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := make([]slog.Handler, len(f.handlers))
	for i, h := range f.handlers {
		next[i] = h.WithAttrs(attrs)
	}
	return &FanoutHandler{handlers: next}
}

// WithGroup returns a fanout whose children all open group name.
func (f *FanoutHandler) WithGroup(name string) slog.Handler {
	next := make([]slog.Handler, len(f.handlers))
	for i, h := range f.handlers {
		next[i] = h.WithGroup(name)
	}
	return &FanoutHandler{handlers: next}
}
