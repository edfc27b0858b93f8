package ports

import (
	"context"
	"time"
)

// HealthChecker is a dependency the readiness probe can ping, such as the
// items API or the Redis friends cache.
type HealthChecker interface {
	// Name identifies the dependency in readiness output ("items-api").
	Name() string
	// HealthCheck returns nil when the dependency answers within ctx.
	HealthCheck(ctx context.Context) error
}

// CheckResult is the outcome of one HealthChecker run.
type CheckResult struct {
	Name    string
	Err     error
	Latency time.Duration
}

// Healthy reports whether the check passed.
func (c CheckResult) Healthy() bool { return c.Err == nil }

// HealthRegistry runs every registered checker for the readiness probe.
type HealthRegistry interface {
	Register(checker HealthChecker)
	// CheckAll returns one result per checker in registration order.
	CheckAll(ctx context.Context) []CheckResult
}
