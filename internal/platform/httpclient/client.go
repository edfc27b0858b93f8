// Package httpclient is the outbound HTTP client for the items API. Each
// call passes, in order, through a circuit breaker, an optional rate
// limiter, request ID and trace header injection, and a client span.
//
// A call is a single attempt. Retrying a failed load is decided per screen
// by the item service composition, not here.
package httpclient

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/go-item-loader/internal/platform/config"
	"github.com/jsamuelsen11/go-item-loader/internal/platform/telemetry"
)

// ErrServerStatus accompanies a 5xx or 429 response. Those answers count
// against the breaker; every other status is a successful exchange.
var ErrServerStatus = errors.New("downstream server error")

// Client sends requests to one downstream service.
type Client struct {
	http    *http.Client
	baseURL string
	name    string
	breaker *gobreaker.CircuitBreaker[*http.Response]
	limiter *rate.Limiter
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// New returns a Client for the service called name. A nil metrics skips
// metric recording; a zero RequestsPerSecond disables rate limiting.
func New(cfg *config.ClientConfig, name string, metrics *telemetry.Metrics, logger *slog.Logger) *Client {
	c := &Client{
		http:    &http.Client{Timeout: cfg.Timeout},
		baseURL: cfg.BaseURL,
		name:    name,
		metrics: metrics,
		logger:  logger,
	}
	c.breaker = newBreaker[*http.Response](name, cfg.CircuitBreaker, logger)
	if rl := cfg.RateLimit; rl.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(rl.RequestsPerSecond), rl.BurstSize)
	}
	return c
}

// Name identifies the downstream service in spans, metrics and health
// output.
func (c *Client) Name() string { return c.name }

// BaseURL is the URL that request paths are resolved against.
func (c *Client) BaseURL() string { return c.baseURL }

// Get sends a JSON GET for path, relative to BaseURL.
func (c *Client) Get(ctx context.Context, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("building GET %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")
	return c.Do(ctx, req)
}

// Do sends req once. A 5xx or 429 answer returns the open response along
// with an error wrapping ErrServerStatus, and the caller closes the body
// either way. A breaker rejection or transport failure returns no
// response.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	start := time.Now()

	resp, err := c.breaker.Execute(func() (*http.Response, error) {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}
		if id := RequestIDFromContext(ctx); id != "" {
			req.Header.Set(requestIDHeader, id)
		}
		return c.traced(ctx, req)
	})

	c.record(ctx, req.Method, start, resp, err)
	return resp, err
}

// send performs the exchange and classifies the status.
func (c *Client) send(req *http.Request) (*http.Response, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError {
		return resp, fmt.Errorf("%s answered %d: %w", c.name, resp.StatusCode, ErrServerStatus)
	}
	return resp, nil
}
