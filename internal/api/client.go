package api

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

// Client is a thin wrapper over the todo-list backend. It attaches the bearer
// token, unwraps the `{message, data}` envelope, and classifies failures into
// the AuthError/ValidationError/UnexpectedError union. No call is retried.
type Client struct {
	baseURL string
	httpc   *http.Client

	// tokenSource returns the current access token ("" when logged out).
	// Reading through a func keeps the client usable across login/logout
	// without rebuilding it.
	tokenSource func() string
}

type Option func(*Client)

// WithHTTPClient overrides the underlying http.Client (tests use this with
// httptest servers).
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpc = h }
}

// WithTokenSource sets where the bearer token is read from on each request.
func WithTokenSource(fn func() string) Option {
	return func(c *Client) { c.tokenSource = fn }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		httpc:   &http.Client{Timeout: 30 * time.Second},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *Client) BaseURL() string { return c.baseURL }

// envelope is the common response wrapper.
type envelope struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  []FieldError    `json:"errors"`
}

// do issues one request and decodes the envelope's data into out (when out is
// non-nil). query may be nil. body (when non-nil) is JSON-encoded.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return &UnexpectedError{Message: GenericFailureMessage, Err: err}
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, rdr)
	if err != nil {
		return &UnexpectedError{Message: GenericFailureMessage, Err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokenSource != nil {
		if tok := strings.TrimSpace(c.tokenSource()); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return &UnexpectedError{Message: GenericFailureMessage, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &UnexpectedError{Message: GenericFailureMessage, Err: err}
	}

	var env envelope
	// Tolerate empty or non-JSON bodies; classification below only needs the
	// status code in that case.
	_ = json.Unmarshal(raw, &env)

	if err := classify(resp.StatusCode, env); err != nil {
		return err
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return &UnexpectedError{Message: GenericFailureMessage, Err: err}
		}
	}
	return nil
}

// classify is the single place HTTP statuses become the error union.
// 401 always means the session is dead, regardless of what the body says.
func classify(status int, env envelope) error {
	switch {
	case status >= 200 && status < 300:
		return nil
	case status == http.StatusUnauthorized:
		return &AuthError{Message: env.Message}
	case len(env.Errors) > 0:
		return &ValidationError{Message: env.Message, Fields: env.Errors}
	case strings.TrimSpace(env.Message) != "":
		return &UnexpectedError{Message: env.Message}
	default:
		return &UnexpectedError{Message: GenericFailureMessage, Err: fmt.Errorf("http %d", status)}
	}
}
