// Package app wires the store to the gateway. A Controller owns the single
// Store and turns user intents into transitions; both the terminal client
// and the headless commands drive the explorer through it.
package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/papapumpkin/holonet/internal/store"
	"github.com/papapumpkin/holonet/internal/swapi"
)

// Gateway is the remote data source the controller fetches from.
type Gateway interface {
	FetchCategory(ctx context.Context, category swapi.Category, term string) (swapi.Document, error)
	FetchResource(ctx context.Context, url string) (swapi.Document, error)
	BaseURL() string
}

var _ Gateway = (*swapi.Client)(nil)

// Request identifies one category fetch.
type Request struct {
	Category swapi.Category
	Term     string
	// Seq is the store sequence number when the request was issued. It is
	// informational only: responses are applied in arrival order.
	Seq uint64
}

// Controller owns the Store and applies the explorer's interaction policy.
//
// Selecting a category only records it; nothing is fetched until the user
// searches. No fetch happens at startup either.
type Controller struct {
	store  *store.Store
	logger *slog.Logger
}

// NewController wraps s. A nil logger discards output.
func NewController(s *store.Store, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Controller{store: s, logger: logger}
}

// Store returns the owned store.
func (c *Controller) Store() *store.Store {
	return c.store
}

// State returns the current state snapshot.
func (c *Controller) State() store.State {
	return c.store.State()
}

// SelectCategory switches category without fetching.
func (c *Controller) SelectCategory(category swapi.Category) {
	if category == c.store.State().Category {
		return
	}
	c.logger.Debug("category selected", "category", category)
	c.store.Dispatch(store.CategoryChanged(category))
}

// StartSearch commits term and enters the loading state. The caller
// performs the fetch described by the returned Request and reports the
// outcome with Finish.
func (c *Controller) StartSearch(term string) Request {
	c.store.Dispatch(store.SearchTermChanged(term))
	c.store.Dispatch(store.BeginFetch())
	st := c.store.State()
	c.logger.Debug("search started", "category", st.Category, "term", term)
	return Request{Category: st.Category, Term: st.SearchTerm, Seq: c.store.Seq()}
}

// Finish applies the outcome of a category fetch. Errors never escape: they
// become a fetch-failed transition.
func (c *Controller) Finish(req Request, doc swapi.Document, err error) {
	if err != nil {
		c.logger.Warn("search failed", "category", req.Category, "term", req.Term, "error", err)
		c.store.Dispatch(store.FetchFailed(swapi.Describe(err)))
		return
	}
	c.store.Dispatch(store.FetchSucceeded(doc))
}

// Search runs a whole search synchronously against gw.
func (c *Controller) Search(ctx context.Context, gw Gateway, term string) {
	req := c.StartSearch(term)
	doc, err := gw.FetchCategory(ctx, req.Category, req.Term)
	c.Finish(req, doc, err)
}
