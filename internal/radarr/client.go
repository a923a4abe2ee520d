// ABOUTME: Typed HTTP client for the Radarr v3 REST API.
// ABOUTME: Owns request construction, API key injection, and error mapping.

package radarr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultTimeout bounds every remote call. A call that exceeds it surfaces as
// a transport error, never a hang.
const DefaultTimeout = 30 * time.Second

// maxResponseBody caps how much of a response we read (8MB). Radarr library
// listings are large but nowhere near this.
const maxResponseBody = 8 << 20

// Client wraps the Radarr v3 API. It holds the resolved settings for the
// process lifetime and is safe for unsynchronized concurrent use: all fields
// are read-only after construction.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// Option customizes a Client at construction.
type Option func(*Client)

// WithTimeout overrides the per-call timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// WithHTTPClient replaces the underlying HTTP client. Used by tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// NewClient creates a client for the Radarr instance at baseURL. Both
// arguments must be non-empty; the config resolver guarantees that before a
// client is ever constructed.
func NewClient(baseURL, apiKey string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("radarr: base URL is required")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("radarr: API key is required")
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the configured Radarr base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// do issues a request against /api/v3/{endpoint} and decodes the response
// into out when out is non-nil. Every failure returns a *Error; raw transport
// errors never cross this boundary.
func (c *Client) do(ctx context.Context, method, endpoint string, query url.Values, body, out any) error {
	endpointURL := c.baseURL + "/api/v3/" + endpoint
	if len(query) > 0 {
		endpointURL += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &Error{Kind: KindTransport, Message: "encoding request body", Err: err}
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpointURL, reqBody)
	if err != nil {
		return &Error{Kind: KindTransport, Message: "building request", Err: err}
	}
	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		// Prefer the context's verdict so timeouts report consistently.
		if ctxErr := ctx.Err(); ctxErr != nil {
			return transportError(ctxErr)
		}
		return transportError(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return transportError(err)
	}

	if resp.StatusCode >= 400 {
		return statusError(resp.StatusCode, data)
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return &Error{Kind: KindTransport, Message: "decoding response body", Err: err}
		}
	}
	return nil
}

func (c *Client) get(ctx context.Context, endpoint string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, endpoint, query, nil, out)
}

// absolutizeURL prefixes Radarr-relative media paths (like /MediaCover/...)
// with the instance base URL so agent clients can fetch them directly.
func (c *Client) absolutizeURL(raw string) string {
	if raw == "" || strings.Contains(raw, "://") {
		return raw
	}
	if !strings.HasPrefix(raw, "/") {
		return raw
	}
	return c.baseURL + raw
}

// absolutizeImages rewrites relative image URLs in place.
func (c *Client) absolutizeImages(images []Image) {
	for i := range images {
		images[i].URL = c.absolutizeURL(images[i].URL)
	}
}
