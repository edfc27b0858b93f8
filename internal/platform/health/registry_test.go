package health_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/go-item-loader/internal/platform/health"
	"github.com/jsamuelsen11/go-item-loader/mocks"
)

func checker(t *testing.T, name string, err error) *mocks.MockHealthChecker {
	t.Helper()
	c := mocks.NewMockHealthChecker(t)
	c.EXPECT().Name().Return(name)
	c.EXPECT().HealthCheck(mock.Anything).Return(err)
	return c
}

func TestCheckAll_NoCheckers(t *testing.T) {
	t.Parallel()

	if got := health.New().CheckAll(context.Background()); len(got) != 0 {
		t.Errorf("CheckAll() = %v, want no results", got)
	}
}

func TestCheckAll_RegistrationOrder(t *testing.T) {
	t.Parallel()

	refused := errors.New("connection refused")

	r := health.New()
	r.Register(checker(t, "items-api", nil))
	r.Register(checker(t, "friends-cache", refused))
	r.Register(nil)

	got := r.CheckAll(context.Background())

	if len(got) != 2 {
		t.Fatalf("len(CheckAll()) = %d, want 2", len(got))
	}
	if got[0].Name != "items-api" || !got[0].Healthy() {
		t.Errorf("results[0] = %+v, want healthy items-api", got[0])
	}
	if got[1].Name != "friends-cache" || !errors.Is(got[1].Err, refused) {
		t.Errorf("results[1] = %+v, want friends-cache failing with %v", got[1], refused)
	}
}

func TestCheckAll_SameNameKeepsBoth(t *testing.T) {
	t.Parallel()

	r := health.New()
	r.Register(checker(t, "items-api", nil))
	r.Register(checker(t, "items-api", errors.New("503")))

	got := r.CheckAll(context.Background())

	if len(got) != 2 || got[0].Healthy() == got[1].Healthy() {
		t.Errorf("CheckAll() = %+v, want one healthy and one failing items-api", got)
	}
}

func TestCheckAll_CanceledCallerContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := mocks.NewMockHealthChecker(t)
	c.EXPECT().Name().Return("friends-cache")
	c.EXPECT().HealthCheck(mock.MatchedBy(func(ctx context.Context) bool {
		return ctx.Err() != nil
	})).Return(context.Canceled)

	r := health.New()
	r.Register(c)

	got := r.CheckAll(ctx)
	if len(got) != 1 || !errors.Is(got[0].Err, context.Canceled) {
		t.Errorf("CheckAll() = %+v, want context.Canceled", got)
	}
}

// stallingChecker answers only when its context ends.
type stallingChecker struct{ name string }

func (s stallingChecker) Name() string { return s.name }

func (s stallingChecker) HealthCheck(ctx context.Context) error {
	<-ctx.Done()
	return ctx.Err()
}

func TestCheckAll_StalledDependencyTimesOutAlone(t *testing.T) {
	t.Parallel()

	r := health.New(health.WithCheckTimeout(20 * time.Millisecond))
	r.Register(stallingChecker{name: "friends-cache"})
	r.Register(checker(t, "items-api", nil))

	start := time.Now()
	got := r.CheckAll(context.Background())

	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("CheckAll took %v, want it bounded by the check timeout", elapsed)
	}
	if !errors.Is(got[0].Err, context.DeadlineExceeded) {
		t.Errorf("friends-cache = %v, want context.DeadlineExceeded", got[0].Err)
	}
	if got[0].Latency < 20*time.Millisecond {
		t.Errorf("friends-cache latency = %v, want at least the timeout", got[0].Latency)
	}
	if !got[1].Healthy() {
		t.Errorf("items-api = %v, want healthy", got[1].Err)
	}
}

func TestCheckAll_ConcurrentRegister(t *testing.T) {
	t.Parallel()

	r := health.New()

	var wg sync.WaitGroup
	for i := range 40 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				r.Register(stallingChecker{name: "never-run"})
				return
			}
			ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond)
			defer cancel()
			r.CheckAll(ctx)
		}()
	}
	wg.Wait()
}
