// Package lenta is the HTTP client for the Lenta mobile API: catalog listing,
// per-item detail and pickup-store search.
package lenta

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/EVA666999/lenta-parser/internal/obs"
)

// Options carries transport configuration. Token values come from the
// environment; the client never fabricates them.
type Options struct {
	BaseURL      string
	Timeout      time.Duration
	UserAgent    string
	SessionToken string
	AuthToken    string
	DeviceID     string
}

// Client issues requests with a fixed header set. Headers are built once in
// NewClient and never mutated afterwards, so the client is safe for
// concurrent use without locking.
type Client struct {
	base    string
	http    *http.Client
	headers http.Header
}

func NewClient(opts Options) *Client {
	h := http.Header{}
	h.Set("Accept", "application/json")
	h.Set("Accept-Language", "ru-RU;q=1.0")
	h.Set("Content-Type", "application/json")
	h.Set("User-Agent", opts.UserAgent)
	h.Set("X-Platform", "omniapp")
	h.Set("X-Retail-Brand", "lo")
	h.Set("X-Delivery-Mode", "pickup")
	if opts.DeviceID != "" {
		h.Set("DeviceId", opts.DeviceID)
		h.Set("X-Device-id", opts.DeviceID)
	}
	if opts.SessionToken != "" {
		h.Set("SessionToken", opts.SessionToken)
	}
	if opts.AuthToken != "" {
		h.Set("AuthToken", opts.AuthToken)
	}

	return &Client{
		base:    opts.BaseURL,
		http:    &http.Client{Timeout: opts.Timeout},
		headers: h,
	}
}

// TransportError reports a network failure or a non-2xx response on one
// request. It is recoverable: callers abort the current target or drop the
// current item, never the whole run.
type TransportError struct {
	Endpoint string
	Status   int
	Err      error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Endpoint, e.Err)
	}
	return fmt.Sprintf("%s: status %d", e.Endpoint, e.Status)
}

func (e *TransportError) Unwrap() error { return e.Err }

// doJSON performs one request and decodes the JSON response into out.
// A nil body means GET, otherwise the body is POSTed as JSON.
func (c *Client) doJSON(ctx context.Context, method, endpoint, path string, body, out any) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal %s request: %w", endpoint, err)
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, rd)
	if err != nil {
		return fmt.Errorf("build %s request: %w", endpoint, err)
	}
	for k, vs := range c.headers {
		req.Header[k] = vs
	}

	obs.RequestsTotal.WithLabelValues(endpoint).Inc()
	resp, err := c.http.Do(req)
	if err != nil {
		obs.RequestErrorsTotal.WithLabelValues(endpoint).Inc()
		return &TransportError{Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		obs.RequestErrorsTotal.WithLabelValues(endpoint).Inc()
		return &TransportError{Endpoint: endpoint, Status: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", endpoint, err)
	}
	return nil
}
