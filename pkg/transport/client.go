// Package transport fetches raw JSON documents from a Datatracker instance.
//
// The only operation is Fetch: GET a relative API path, classify the outcome,
// and hand back the body for the caller to decode. Retryable failures
// (network errors, HTTP 429 and 5xx) are retried with exponential backoff
// until the configured budget runs out; HTTP 404 and other client errors are
// returned immediately. Every failure carries a category so callers can
// pattern-match on what went wrong without string inspection.
//
// A Client is safe for concurrent use.
package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"

	"github.com/csperkins/ietfdata-go/pkg/dterror"
)

// Version of this client library, sent in the default User-Agent.
const Version = "0.9.0"

// Client fetches documents from one Datatracker instance.
type Client struct {
	config  Config
	http    *http.Client
	log     hclog.Logger
	metrics *Metrics
}

// Option configures a Client beyond its Config.
type Option func(*Client)

// WithLogger attaches a structured logger. The default discards everything.
func WithLogger(log hclog.Logger) Option {
	return func(c *Client) {
		c.log = log.Named("transport")
	}
}

// WithHTTPClient substitutes the underlying HTTP client, replacing the one
// built from Config.Timeout.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.http = h
	}
}

// WithMetrics attaches request metrics. The default records nothing.
func WithMetrics(m *Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// New creates a transport for the instance named by cfg. Zero Config fields
// take their defaults, so transport.New(transport.Config{}) talks to the
// production Datatracker.
func New(cfg Config, opts ...Option) (*Client, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid transport config: %w", err)
	}

	c := &Client{
		config: cfg,
		log:    hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http == nil {
		c.http = cfg.newHTTPClient()
	}
	return c, nil
}

// BaseURL returns the configured instance root.
func (c *Client) BaseURL() string {
	return c.config.BaseURL
}

// Fetch GETs the document at a relative API path and returns the raw body.
// HTTP 404 maps to a not_found failure; any other failure, after retries,
// maps to fetch. The body is returned undecoded so the caller decodes it
// exactly once against the type it expects.
func (c *Client) Fetch(ctx context.Context, path string) (json.RawMessage, error) {
	if path == "" || !strings.HasPrefix(path, "/") {
		return nil, dterror.Validation("transport.Fetch", path, "path must be relative with a leading slash")
	}

	endpoint := strings.TrimSuffix(c.config.BaseURL, "/") + path
	rid := uuid.NewString()
	log := c.log.With("request_id", rid, "path", path)

	start := time.Now()
	body, err := backoff.RetryNotifyWithData(
		func() (json.RawMessage, error) { return c.doFetch(ctx, endpoint, path, rid) },
		c.newBackOff(ctx),
		func(err error, wait time.Duration) {
			c.metrics.IncrementRetry()
			log.Debug("retrying fetch", "wait", wait.String(), "error", err)
		},
	)
	elapsed := time.Since(start)

	if err != nil {
		if dterror.CategoryOf(err) == "" {
			// Cancellation and budget expiry surface as bare errors.
			err = dterror.Fetch("transport.Fetch", path, err)
		}
		c.metrics.ObserveRequest(string(dterror.CategoryOf(err)), elapsed)
		log.Debug("fetch failed", "elapsed", elapsed.String(), "error", err)
		return nil, err
	}

	c.metrics.ObserveRequest("ok", elapsed)
	log.Debug("fetched", "elapsed", elapsed.String(), "bytes", len(body))
	return body, nil
}

// doFetch performs one attempt. Errors are retryable unless marked permanent.
func (c *Client) doFetch(ctx context.Context, endpoint, path, rid string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, backoff.Permanent(dterror.Fetch("transport.Fetch", path, err))
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.config.UserAgent)
	req.Header.Set("X-Request-Id", rid)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, dterror.Fetch("transport.Fetch", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, dterror.Fetch("transport.Fetch", path, fmt.Errorf("reading response: %w", err))
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, backoff.Permanent(dterror.NotFound("transport.Fetch", path))
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return nil, dterror.Fetch("transport.Fetch", path,
			fmt.Errorf("status %d: %s", resp.StatusCode, snippet(body)))
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, backoff.Permanent(dterror.Fetch("transport.Fetch", path,
			fmt.Errorf("status %d: %s", resp.StatusCode, snippet(body))))
	}
	return json.RawMessage(body), nil
}

// newBackOff builds the retry schedule for one fetch. A zero RetryMaxElapsed
// means a single attempt.
func (c *Client) newBackOff(ctx context.Context) backoff.BackOffContext {
	if c.config.RetryMaxElapsed == 0 {
		return backoff.WithContext(&backoff.StopBackOff{}, ctx)
	}
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.config.RetryInitialDelay
	b.MaxElapsedTime = c.config.RetryMaxElapsed
	return backoff.WithContext(b, ctx)
}

// snippet trims an error response body down to something loggable. Error
// pages from the Datatracker are full HTML documents.
func snippet(body []byte) string {
	const max = 200
	s := strings.TrimSpace(string(body))
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}
