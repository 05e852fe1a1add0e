// Package swapi is the gateway to the Star Wars reference API. It issues
// GET requests for category listings and single resources and hands back
// the decoded JSON body untouched; response shapes are interpreted by the
// view layer.
package swapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultBaseURL is the public API root.
const DefaultBaseURL = "https://swapi.tech/api"

// Failure messages surfaced to the user.
const (
	MsgCategoryFailed = "Failed to fetch data from SWAPI"
	MsgResourceFailed = "Failed to fetch details"
	MsgUnreachable    = "Failed to fetch"
	MsgMalformed      = "Malformed response from SWAPI"
)

// ErrRequestFailed matches every RequestError via errors.Is.
var ErrRequestFailed = errors.New("swapi: request failed")

// ErrUnreachable marks failures to build or send a request.
var ErrUnreachable = errors.New("swapi: unreachable")

// ErrMalformed marks response bodies that are not valid JSON.
var ErrMalformed = errors.New("swapi: malformed response")

// Document is a decoded JSON object as returned by the API.
type Document map[string]any

// RequestError reports a response with a non-success HTTP status. Its
// Error text is the fixed user-facing message.
type RequestError struct {
	Message string
	Status  int
	URL     string
}

// Error returns the user-facing message.
func (e *RequestError) Error() string {
	return e.Message
}

// Is reports whether target is ErrRequestFailed.
func (e *RequestError) Is(target error) bool {
	return target == ErrRequestFailed
}

// Options configures a Client. Zero values select the defaults.
type Options struct {
	BaseURL    string
	HTTPClient *http.Client
	UserAgent  string
	Logger     *slog.Logger
}

// Client performs requests against the API. It keeps no state between
// calls and is safe for concurrent use.
type Client struct {
	base      string
	http      *http.Client
	userAgent string
	logger    *slog.Logger
}

// NewClient creates a Client from opts.
func NewClient(opts Options) *Client {
	base := strings.TrimRight(opts.BaseURL, "/")
	if base == "" {
		base = DefaultBaseURL
	}
	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Client{
		base:      base,
		http:      hc,
		userAgent: opts.UserAgent,
		logger:    logger,
	}
}

// BaseURL returns the API root without a trailing slash.
func (c *Client) BaseURL() string {
	return c.base
}

// CategoryURL builds the listing URL for category. A non-blank term adds a
// name query parameter.
func (c *Client) CategoryURL(category Category, term string) string {
	u := c.base + "/" + string(category)
	term = strings.TrimSpace(term)
	if term == "" {
		return u
	}
	return u + "/?name=" + encodeComponent(term)
}

// DetailURL builds the single-resource URL for a uid within category.
func (c *Client) DetailURL(category Category, uid string) string {
	return ResourceURL(c.base, category, uid)
}

// ResourceURL builds base/category/uid.
func ResourceURL(base string, category Category, uid string) string {
	return strings.TrimRight(base, "/") + "/" + string(category) + "/" + url.PathEscape(uid)
}

// FetchCategory lists category, filtered by name when term is non-blank.
func (c *Client) FetchCategory(ctx context.Context, category Category, term string) (Document, error) {
	if !category.Valid() {
		return nil, fmt.Errorf("swapi: fetch category: %w: %q", ErrUnknownCategory, category)
	}
	return c.get(ctx, c.CategoryURL(category, term), MsgCategoryFailed)
}

// FetchResource retrieves a single resource by its absolute URL.
func (c *Client) FetchResource(ctx context.Context, resourceURL string) (Document, error) {
	return c.get(ctx, resourceURL, MsgResourceFailed)
}

func (c *Client) get(ctx context.Context, target, failure string) (Document, error) {
	log := c.logger.With("request_id", uuid.NewString(), "url", target)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("swapi: build request: %w: %w", ErrUnreachable, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn("request failed", "error", err)
		return nil, fmt.Errorf("swapi: get %s: %w: %w", target, ErrUnreachable, err)
	}
	defer resp.Body.Close()

	log.Debug("response received", "status", resp.StatusCode, "duration", time.Since(start))

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, resp.Body)
		log.Warn("unexpected status", "status", resp.StatusCode)
		return nil, &RequestError{Message: failure, Status: resp.StatusCode, URL: target}
	}

	var doc Document
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		log.Warn("decode failed", "error", err)
		return nil, fmt.Errorf("swapi: decode %s: %w: %w", target, ErrMalformed, err)
	}
	if doc == nil {
		// A literal null body.
		doc = Document{}
	}
	return doc, nil
}

// encodeComponent escapes s for use in a query value, encoding spaces as
// %20 rather than '+'.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// Describe converts a fetch error into the short message shown to the
// user. Transport and decode failures collapse to fixed messages; the full
// error is left for the log. Errors from other sources keep their text.
func Describe(err error) string {
	var reqErr *RequestError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &reqErr):
		return reqErr.Message
	case errors.Is(err, ErrMalformed):
		return MsgMalformed
	case errors.Is(err, ErrUnreachable):
		return MsgUnreachable
	default:
		return err.Error()
	}
}
