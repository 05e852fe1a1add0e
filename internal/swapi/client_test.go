package swapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Options{BaseURL: srv.URL + "/api", UserAgent: "holonet-test"})
}

func TestCategoryURL(t *testing.T) {
	t.Parallel()
	c := NewClient(Options{BaseURL: "https://swapi.tech/api/"})

	tests := []struct {
		name     string
		category Category
		term     string
		want     string
	}{
		{"no term", People, "", "https://swapi.tech/api/people"},
		{"blank term", Planets, "   ", "https://swapi.tech/api/planets"},
		{"simple term", People, "luke", "https://swapi.tech/api/people/?name=luke"},
		{"trimmed term", People, "  luke ", "https://swapi.tech/api/people/?name=luke"},
		{"space encoded", Starships, "star destroyer", "https://swapi.tech/api/starships/?name=star%20destroyer"},
		{"reserved chars", Vehicles, "a&b=c+d", "https://swapi.tech/api/vehicles/?name=a%26b%3Dc%2Bd"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, c.CategoryURL(tt.category, tt.term))
		})
	}
}

func TestDetailURL(t *testing.T) {
	t.Parallel()
	c := NewClient(Options{})
	assert.Equal(t, "https://swapi.tech/api/planets/1", c.DetailURL(Planets, "1"))
	assert.Equal(t, DefaultBaseURL, c.BaseURL())
}

func TestFetchCategory_Success(t *testing.T) {
	t.Parallel()
	seen := make(chan *http.Request, 1)
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		seen <- r
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"ok","result":[{"name":"Luke Skywalker","url":"https://swapi.tech/api/people/1/"}]}`))
	})

	doc, err := c.FetchCategory(context.Background(), People, "luke")
	require.NoError(t, err)

	r := <-seen
	assert.Equal(t, "/api/people/", r.URL.Path)
	assert.Equal(t, "luke", r.URL.Query().Get("name"))
	assert.Equal(t, "holonet-test", r.Header.Get("User-Agent"))
	assert.Equal(t, "ok", doc["message"])
	list, ok := doc["result"].([]any)
	require.True(t, ok, "result should stay a raw list")
	assert.Len(t, list, 1)
}

func TestFetchCategory_NonSuccessStatus(t *testing.T) {
	t.Parallel()
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	doc, err := c.FetchCategory(context.Background(), People, "")
	require.Error(t, err)
	assert.Nil(t, doc)
	assert.Equal(t, "Failed to fetch data from SWAPI", err.Error())
	assert.True(t, errors.Is(err, ErrRequestFailed))

	var reqErr *RequestError
	require.True(t, errors.As(err, &reqErr))
	assert.Equal(t, http.StatusInternalServerError, reqErr.Status)
}

func TestFetchCategory_UnknownCategory(t *testing.T) {
	t.Parallel()
	c := NewClient(Options{})
	_, err := c.FetchCategory(context.Background(), Category("films"), "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownCategory))
}

func TestFetchCategory_MalformedJSON(t *testing.T) {
	t.Parallel()
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"result": [`))
	})

	_, err := c.FetchCategory(context.Background(), Species, "")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrRequestFailed))
	assert.Contains(t, err.Error(), "swapi: decode")
	assert.True(t, errors.Is(err, ErrMalformed))
	assert.Equal(t, MsgMalformed, Describe(err))
}

func TestFetchCategory_NullBody(t *testing.T) {
	t.Parallel()
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`null`))
	})

	doc, err := c.FetchCategory(context.Background(), Species, "")
	require.NoError(t, err)
	assert.NotNil(t, doc)
	assert.Empty(t, doc)
}

func TestFetchResource(t *testing.T) {
	t.Parallel()
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if strings.HasSuffix(r.URL.Path, "/missing") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(`{"message":"ok","result":{"properties":{"name":"Tatooine"}}}`))
	}))
	t.Cleanup(srv.Close)
	c := NewClient(Options{BaseURL: srv.URL})

	doc, err := c.FetchResource(context.Background(), srv.URL+"/planets/1")
	require.NoError(t, err)
	result, ok := doc["result"].(map[string]any)
	require.True(t, ok)
	props, ok := result["properties"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Tatooine", props["name"])

	_, err = c.FetchResource(context.Background(), srv.URL+"/planets/missing")
	require.Error(t, err)
	assert.Equal(t, "Failed to fetch details", err.Error())
	assert.Equal(t, int32(2), hits.Load())
}

func TestFetchResource_TransportError(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	target := srv.URL + "/people/1"
	srv.Close()

	c := NewClient(Options{})
	_, err := c.FetchResource(context.Background(), target)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrRequestFailed))
	assert.Contains(t, err.Error(), "swapi: get")
	assert.True(t, errors.Is(err, ErrUnreachable))
	assert.Equal(t, MsgUnreachable, Describe(err))
}

func TestFetchResource_CanceledContext(t *testing.T) {
	t.Parallel()
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.FetchResource(ctx, c.DetailURL(People, "1"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.True(t, errors.Is(err, ErrUnreachable))
}

func TestDescribe(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "", Describe(nil))
	wrapped := fmt.Errorf("outer: %w", &RequestError{Message: MsgResourceFailed, Status: 404})
	assert.Equal(t, MsgResourceFailed, Describe(wrapped))
	assert.Equal(t, MsgUnreachable, Describe(fmt.Errorf("swapi: get x: %w: %w", ErrUnreachable, errors.New("dial tcp: connection refused"))))
	assert.Equal(t, MsgMalformed, Describe(fmt.Errorf("swapi: decode x: %w: %w", ErrMalformed, errors.New("unexpected EOF"))))
	assert.Equal(t, "stub failure", Describe(errors.New("stub failure")))
}
