// Package api is the HTTP gateway to the board service: it builds
// authenticated JSON requests, normalizes the error shape and exposes typed
// clients per resource family.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"
)

// TokenGetter supplies the bearer credential at dispatch time. The token is
// read once per request; clearing it mid-flight does not retro-invalidate a
// request already sent.
type TokenGetter interface {
	Get() (string, bool)
}

// Client is the API gateway shared by all resource clients.
type Client struct {
	baseURL string
	httpc   *http.Client
	tokens  TokenGetter
	log     *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the transport, mainly for tests.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpc = h }
}

// WithLogger attaches a logger for request-level debug output.
func WithLogger(log *zap.Logger) Option {
	return func(c *Client) { c.log = log }
}

// NewClient creates a gateway for the given base URL. tokens may be nil for
// a client that only hits unauthenticated endpoints.
func NewClient(baseURL string, tokens TokenGetter, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   http.DefaultClient,
		tokens:  tokens,
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the configured API origin.
func (c *Client) BaseURL() string { return c.baseURL }

// Request performs one API call. body, when non-nil, is JSON-encoded. When
// auth is true and a token is present it is attached as a bearer
// credential; a missing token is not validated here — the request goes out
// bare and the server's 401 surfaces as an HTTPError like any other
// rejection. A 2xx response parses as JSON; an empty or non-JSON success
// body yields nil rather than an error.
func (c *Client) Request(ctx context.Context, method, path string, body any, auth bool) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if auth && c.tokens != nil {
		if token, ok := c.tokens.Get(); ok {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	res, err := c.httpc.Do(req)
	if err != nil {
		c.log.Debug("transport failure", zap.String("method", method), zap.String("path", path), zap.Error(err))
		return nil, &NetworkError{Err: err}
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}

	c.log.Debug("api response",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", res.StatusCode),
	)

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, &HTTPError{
			Status:  res.StatusCode,
			Body:    data,
			Message: extractMessage(data),
		}
	}

	if !json.Valid(data) || len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	return json.RawMessage(data), nil
}

// Get is shorthand for an authenticated GET with query parameters.
func (c *Client) Get(ctx context.Context, path string, query url.Values, auth bool) (json.RawMessage, error) {
	if len(query) > 0 {
		path += "?" + query.Encode()
	}
	return c.Request(ctx, http.MethodGet, path, nil, auth)
}

// extractMessage pulls the optional human-readable message out of an error
// body.
func extractMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return payload.Message
}
