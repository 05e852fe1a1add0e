// Package journal records the explorer's state transitions as a JSONL
// stream. Each applied transition becomes one event carrying the kind, a
// summary of its payload and the resulting state, so a session can be
// replayed or inspected with `holonet journal`.
package journal

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/papapumpkin/holonet/internal/store"
	"github.com/papapumpkin/holonet/internal/swapi"
)

// Event kinds written to the journal.
const (
	KindSessionStart = "session_start"
	KindSessionEnd   = "session_end"
	KindTransition   = "transition"
)

// Event is a single journal record.
type Event struct {
	Timestamp time.Time `json:"ts"`
	Kind      string    `json:"kind"`
	Session   string    `json:"session,omitempty"`
	Data      any       `json:"data,omitempty"`
}

// TransitionData is the payload of a transition event.
type TransitionData struct {
	Transition string   `json:"transition"`
	Category   string   `json:"category"`
	SearchTerm string   `json:"search_term,omitempty"`
	Loading    bool     `json:"loading"`
	Error      string   `json:"error,omitempty"`
	HasData    bool     `json:"has_data"`
	Payload    string   `json:"payload,omitempty"`
	Keys       []string `json:"payload_keys,omitempty"`
}

// Emitter writes events to a JSONL file. It is safe for concurrent use.
// A nil *Emitter is a valid no-op emitter.
type Emitter struct {
	file    *os.File
	enc     *json.Encoder
	session string
	now     func() time.Time
	logger  *slog.Logger
	failed  atomic.Bool
	mu      sync.Mutex
}

// Option configures an Emitter.
type Option func(*Emitter)

// WithLogger sets where the first failed Record write is reported.
func WithLogger(l *slog.Logger) Option {
	return func(e *Emitter) {
		if l != nil {
			e.logger = l
		}
	}
}

var _ store.Recorder = (*Emitter)(nil)

// Open creates or appends to the journal at path, creating parent
// directories as needed. session tags every event.
func Open(path, session string, opts ...Option) (*Emitter, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("journal: create %s: %w", dir, err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("journal: open %s: %w", path, err)
	}
	e := &Emitter{
		file:    f,
		enc:     json.NewEncoder(f),
		session: session,
		now:     time.Now,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Emit writes a single event. The timestamp and session are filled in when
// unset. Calling Emit on a nil Emitter is a no-op.
func (e *Emitter) Emit(evt Event) error {
	if e == nil {
		return nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if evt.Timestamp.IsZero() {
		evt.Timestamp = e.now().UTC()
	}
	if evt.Session == "" {
		evt.Session = e.session
	}
	if err := e.enc.Encode(evt); err != nil {
		return fmt.Errorf("journal: encode event: %w", err)
	}
	return nil
}

// Record implements store.Recorder. A write failure never reaches the
// dispatch; the first one is logged and later ones are dropped.
func (e *Emitter) Record(t store.Transition, next store.State) {
	if e == nil {
		return
	}
	err := e.Emit(Event{Kind: KindTransition, Data: Summarize(t, next)})
	if err != nil && e.failed.CompareAndSwap(false, true) {
		e.logger.Error("journal write failed; further failures are not reported",
			"path", e.file.Name(), "error", err)
	}
}

// Close closes the underlying file. Calling Close on a nil Emitter is a
// no-op.
func (e *Emitter) Close() error {
	if e == nil {
		return nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.file.Close(); err != nil {
		return fmt.Errorf("journal: close: %w", err)
	}
	return nil
}

// Summarize builds the journal payload for a transition. Fetched documents
// are reduced to their top-level keys.
func Summarize(t store.Transition, next store.State) TransitionData {
	d := TransitionData{
		Transition: string(t.Kind),
		Category:   string(next.Category),
		SearchTerm: next.SearchTerm,
		Loading:    next.Loading,
		Error:      next.Error,
		HasData:    next.HasData(),
	}
	switch p := t.Payload.(type) {
	case string:
		d.Payload = p
	case swapi.Category:
		d.Payload = string(p)
	case swapi.Document:
		for k := range p {
			d.Keys = append(d.Keys, k)
		}
		sort.Strings(d.Keys)
	}
	return d
}
