// Package backend is the shared HTTP client for the event REST backend.
//
// It owns the base URL, default headers and timeout, and performs exactly one
// request per call. Failures are classified into *errs.NetworkError (no HTTP
// response) and *errs.ServerError (unusable response). There is no retry and
// no caching; callers decide what to do with a failure.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/deppfellow/promo-event/internal/config"
	"github.com/deppfellow/promo-event/internal/errs"
)

// RequestIDHeader carries the gateway's request id to the backend.
const RequestIDHeader = "X-Request-ID"

type requestIDKey struct{}

// WithRequestID returns a copy of ctx whose backend calls send id as
// X-Request-ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// maxErrorBody bounds how much of a failed response body is kept on a
// ServerError.
const maxErrorBody = 512

// Client talks to the event backend.
type Client struct {
	baseURL    *url.URL
	headers    http.Header
	httpClient *http.Client
	healthPath string
	slow       time.Duration
	logger     *zerolog.Logger
	observer   Observer
}

// Observer is told about every finished call, successful or not.
type Observer interface {
	ObserveBackend(op string, d time.Duration, err error)
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client. Its transport is
// still wrapped for New Relic outbound tracing.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithSlowThreshold logs calls that take longer than d at warn level.
func WithSlowThreshold(d time.Duration) Option {
	return func(c *Client) {
		c.slow = d
	}
}

// WithObserver reports every call to o, e.g. a Prometheus recorder.
func WithObserver(o Observer) Option {
	return func(c *Client) {
		c.observer = o
	}
}

// New builds a Client from cfg.
func New(cfg config.BackendConfig, logger *zerolog.Logger, opts ...Option) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, errors.Wrapf(err, "parse backend base url %q", cfg.BaseURL)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, errors.Errorf("backend base url %q must be absolute", cfg.BaseURL)
	}

	headers := make(http.Header, len(cfg.Headers)+1)
	headers.Set("Accept", "application/json")
	for k, v := range cfg.Headers {
		headers.Set(headerName(k), v)
	}

	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}

	c := &Client{
		baseURL:    base,
		headers:    headers,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		healthPath: cfg.HealthPath,
		logger:     logger,
	}
	for _, opt := range opts {
		opt(c)
	}

	// Outbound segments are only recorded when the request context carries
	// a New Relic transaction.
	transport := c.httpClient.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	wrapped := *c.httpClient
	wrapped.Transport = newrelic.NewRoundTripper(transport)
	c.httpClient = &wrapped

	return c, nil
}

// BaseURL returns the configured backend root.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

func (c *Client) resolve(path string) string {
	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + "/" + strings.TrimLeft(path, "/")
	return u.String()
}

// Do sends one request. When in is non-nil it is JSON-encoded as the body.
// When out is non-nil a 2xx body is decoded into it. op names the calling
// operation in errors, logs and metrics.
func (c *Client) Do(ctx context.Context, op, method, path string, in, out any) (err error) {
	if c.observer != nil {
		start := time.Now()
		defer func() {
			c.observer.ObserveBackend(op, time.Since(start), err)
		}()
	}
	return c.do(ctx, op, method, path, in, out)
}

func (c *Client) do(ctx context.Context, op, method, path string, in, out any) error {
	target := c.resolve(path)

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return errors.Wrapf(err, "%s: marshal request", op)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return errors.Wrapf(err, "%s: create request", op)
	}
	for k, v := range c.headers {
		req.Header[k] = v
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if id, ok := ctx.Value(requestIDKey{}).(string); ok && id != "" {
		req.Header.Set(RequestIDHeader, id)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	elapsed := time.Since(start)
	if err != nil {
		c.logger.Error().
			Err(err).
			Str("op", op).
			Str("method", method).
			Str("url", target).
			Dur("duration", elapsed).
			Msg("backend request failed")
		return &errs.NetworkError{Op: op, Method: method, URL: target, Err: err}
	}
	defer resp.Body.Close()

	event := c.logger.Debug()
	if c.slow > 0 && elapsed > c.slow {
		event = c.logger.Warn().Bool("slow", true)
	}
	event.
		Str("op", op).
		Str("method", method).
		Str("url", target).
		Int("status", resp.StatusCode).
		Dur("duration", elapsed).
		Msg("backend request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &errs.ServerError{
			Op:         op,
			Method:     method,
			URL:        target,
			StatusCode: resp.StatusCode,
			Body:       string(snippet),
		}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &errs.ServerError{
			Op:         op,
			Method:     method,
			URL:        target,
			StatusCode: resp.StatusCode,
			Err:        errors.Wrap(err, "decode response"),
		}
	}

	return nil
}

// Ping requests the configured health path and discards the body.
func (c *Client) Ping(ctx context.Context) error {
	return c.Do(ctx, "ping", http.MethodGet, c.healthPath, nil, nil)
}

// headerName turns a config key such as x_api_key into X-Api-Key.
func headerName(key string) string {
	return http.CanonicalHeaderKey(strings.ReplaceAll(key, "_", "-"))
}
