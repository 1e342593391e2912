package integrations

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// UpstreamError is returned whenever an upstream API responds with a
// non-success HTTP status. It carries the numeric status code and the raw
// response body so callers can render a meaningful message.
type UpstreamError struct {
	StatusCode int    // HTTP status code returned by the upstream
	Body       string // raw response body text
}

// Error implements the error interface.
func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream request failed: status %d: %s", e.StatusCode, e.Body)
}

// Client provides shared HTTP functionality for all upstream API clients.
// It performs plain GET requests and decodes JSON responses; it never
// retries and never caches.
type Client struct {
	http    *http.Client
	headers map[string]string
}

// NewClient creates a Client with the given timeout and default headers.
// A zero timeout falls back to the package default. Pass nil for headers
// if no default headers are needed.
func NewClient(timeout time.Duration, headers map[string]string) *Client {
	return &Client{
		http:    NewHTTPClient(timeout),
		headers: headers,
	}
}

// Get performs an HTTP GET request and JSON-decodes the response into v.
func (c *Client) Get(ctx context.Context, url string, v any) error {
	body, err := c.doRequest(ctx, url)
	if err != nil {
		return err
	}
	defer body.Close()
	return json.NewDecoder(body).Decode(v)
}

func (c *Client) doRequest(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		data, _ := io.ReadAll(resp.Body)
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Body: string(data)}
	}
	return resp.Body, nil
}
