// Package fanout runs one blocking call per key on a bounded number of
// goroutines and collects the outcomes in key order.
package fanout

import (
	"context"
	"sync"

	"github.com/jsamuelsen11/go-item-loader/internal/domain"
)

// Map calls fn once per key with at most limit calls in flight and returns
// the outcomes in the order of keys. A limit below 1 runs every key at once.
//
// A key still waiting for a slot when ctx is done is not started; its
// outcome is a Failure holding ctx.Err(). Calls already started run to
// completion. Map returns once every key has an outcome.
func Map[K, V any](ctx context.Context, limit int, keys []K, fn func(context.Context, K) (V, error)) []domain.Result[V] {
	out := make([]domain.Result[V], len(keys))
	if len(keys) == 0 {
		return out
	}
	if limit < 1 || limit > len(keys) {
		limit = len(keys)
	}

	slots := make(chan struct{}, limit)
	var wg sync.WaitGroup

	for i, key := range keys {
		wg.Add(1)
		go func() {
			defer wg.Done()

			select {
			case slots <- struct{}{}:
				defer func() { <-slots }()
			case <-ctx.Done():
				out[i] = domain.Failure[V](ctx.Err())
				return
			}

			v, err := fn(ctx, key)
			if err != nil {
				out[i] = domain.Failure[V](err)
				return
			}
			out[i] = domain.Success(v)
		}()
	}

	wg.Wait()
	return out
}
