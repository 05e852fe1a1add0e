package app

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/papapumpkin/holonet/internal/store"
	"github.com/papapumpkin/holonet/internal/swapi"
)

type fakeGateway struct {
	mu       sync.Mutex
	doc      swapi.Document
	err      error
	category swapi.Category
	term     string
}

func (f *fakeGateway) FetchCategory(_ context.Context, c swapi.Category, term string) (swapi.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.category = c
	f.term = term
	return f.doc, f.err
}

func (f *fakeGateway) FetchResource(context.Context, string) (swapi.Document, error) {
	return f.doc, f.err
}

func (f *fakeGateway) BaseURL() string { return swapi.DefaultBaseURL }

func TestSelectCategory_DoesNotFetch(t *testing.T) {
	t.Parallel()
	s := store.New()
	c := NewController(s, nil)

	s.Dispatch(store.FetchSucceeded(swapi.Document{"result": []any{}}))
	c.SelectCategory(swapi.Planets)

	st := c.State()
	assert.Equal(t, swapi.Planets, st.Category)
	assert.Nil(t, st.Data)
	assert.False(t, st.Loading)
}

func TestSelectCategory_SameCategoryKeepsData(t *testing.T) {
	t.Parallel()
	s := store.New()
	c := NewController(s, nil)
	s.Dispatch(store.FetchSucceeded(swapi.Document{"result": []any{}}))
	seq := s.Seq()

	c.SelectCategory(swapi.People)

	assert.Equal(t, seq, s.Seq())
	assert.NotNil(t, c.State().Data)
}

func TestStartSearch(t *testing.T) {
	t.Parallel()
	s := store.New()
	c := NewController(s, nil)

	var kinds []store.Kind
	s.Subscribe(func(_, _ store.State, tr store.Transition) { kinds = append(kinds, tr.Kind) })

	req := c.StartSearch("luke")

	assert.Equal(t, []store.Kind{store.KindSearchTermChanged, store.KindBeginFetch}, kinds)
	assert.Equal(t, Request{Category: swapi.People, Term: "luke", Seq: 2}, req)
	assert.True(t, c.State().Loading)
}

func TestSearch_Success(t *testing.T) {
	t.Parallel()
	doc := swapi.Document{"result": []any{map[string]any{"name": "Luke Skywalker"}}}
	gw := &fakeGateway{doc: doc}
	c := NewController(store.New(), nil)

	c.Search(context.Background(), gw, "luke")

	st := c.State()
	assert.Equal(t, swapi.People, gw.category)
	assert.Equal(t, "luke", gw.term)
	assert.False(t, st.Loading)
	assert.Empty(t, st.Error)
	assert.Equal(t, doc, st.Data)
}

func TestSearch_RequestFailed(t *testing.T) {
	t.Parallel()
	gw := &fakeGateway{err: &swapi.RequestError{Message: swapi.MsgCategoryFailed, Status: 500}}
	c := NewController(store.New(), nil)

	c.Search(context.Background(), gw, "")

	st := c.State()
	assert.False(t, st.Loading)
	assert.Equal(t, "Failed to fetch data from SWAPI", st.Error)
	assert.Nil(t, st.Data)
}

func TestFinish_TransportError(t *testing.T) {
	t.Parallel()
	c := NewController(store.New(), nil)
	req := c.StartSearch("x")

	c.Finish(req, nil, fmt.Errorf("swapi: get x: %w: %w", swapi.ErrUnreachable, errors.New("dial tcp: connection refused")))

	require.True(t, c.State().HasError())
	assert.Equal(t, swapi.MsgUnreachable, c.State().Error)
}

func TestFinish_StaleResponseStillApplies(t *testing.T) {
	t.Parallel()
	c := NewController(store.New(), nil)
	first := c.StartSearch("a")
	second := c.StartSearch("b")

	newer := swapi.Document{"result": []any{"b"}}
	older := swapi.Document{"result": []any{"a"}}
	c.Finish(second, newer, nil)
	c.Finish(first, older, nil)

	assert.Equal(t, older, c.State().Data, "responses are applied in arrival order")
}
