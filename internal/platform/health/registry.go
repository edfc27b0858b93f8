// Package health runs readiness checks against the service's dependencies.
package health

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jsamuelsen11/go-item-loader/internal/ports"
)

// DefaultCheckTimeout bounds a single check.
const DefaultCheckTimeout = 2 * time.Second

var _ ports.HealthRegistry = (*Registry)(nil)

// Registry holds the checkers registered at startup. It is safe for
// concurrent use.
type Registry struct {
	mu       sync.RWMutex
	checkers []ports.HealthChecker
	timeout  time.Duration
	now      func() time.Time
}

// Option configures a Registry.
type Option func(*Registry)

// WithCheckTimeout overrides DefaultCheckTimeout. Non-positive values are
// ignored.
func WithCheckTimeout(d time.Duration) Option {
	return func(r *Registry) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// New returns an empty Registry.
func New(opts ...Option) *Registry {
	r := &Registry{timeout: DefaultCheckTimeout, now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register appends checker. A nil checker is ignored.
func (r *Registry) Register(checker ports.HealthChecker) {
	if checker == nil {
		return
	}
	r.mu.Lock()
	r.checkers = append(r.checkers, checker)
	r.mu.Unlock()
}

// CheckAll runs the checkers concurrently, each under its own timeout, and
// returns their results in registration order.
func (r *Registry) CheckAll(ctx context.Context) []ports.CheckResult {
	r.mu.RLock()
	checkers := append([]ports.HealthChecker(nil), r.checkers...)
	r.mu.RUnlock()

	results := make([]ports.CheckResult, len(checkers))
	var g errgroup.Group
	for i, c := range checkers {
		g.Go(func() error {
			results[i] = r.run(ctx, c)
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func (r *Registry) run(ctx context.Context, c ports.HealthChecker) ports.CheckResult {
	checkCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	start := r.now()
	err := c.HealthCheck(checkCtx)
	return ports.CheckResult{Name: c.Name(), Err: err, Latency: r.now().Sub(start)}
}
