package fanout_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jsamuelsen11/go-item-loader/internal/app/fanout"
)

func TestMap_NoKeys(t *testing.T) {
	t.Parallel()

	out := fanout.Map(context.Background(), 4, []string{}, func(context.Context, string) (int, error) {
		t.Fatal("fn called without keys")
		return 0, nil
	})

	if out == nil || len(out) != 0 {
		t.Fatalf("Map() = %v, want empty non-nil slice", out)
	}
}

func TestMap_KeepsKeyOrder(t *testing.T) {
	t.Parallel()

	errCards := errors.New("cards down")
	keys := []string{"friends", "cards", "sent", "received"}
	delays := map[string]time.Duration{
		"friends":  30 * time.Millisecond,
		"cards":    5 * time.Millisecond,
		"sent":     20 * time.Millisecond,
		"received": 0,
	}

	out := fanout.Map(context.Background(), 0, keys, func(_ context.Context, key string) (string, error) {
		time.Sleep(delays[key])
		if key == "cards" {
			return "", errCards
		}
		return key + "!", nil
	})

	if len(out) != len(keys) {
		t.Fatalf("len(out) = %d, want %d", len(out), len(keys))
	}
	for i, key := range keys {
		if key == "cards" {
			if !errors.Is(out[i].Err(), errCards) {
				t.Errorf("out[%d].Err() = %v, want %v", i, out[i].Err(), errCards)
			}
			continue
		}
		if out[i].Value() != key+"!" {
			t.Errorf("out[%d].Value() = %q, want %q", i, out[i].Value(), key+"!")
		}
	}
}

func TestMap_RespectsLimit(t *testing.T) {
	t.Parallel()

	const limit = 2

	var active, peak atomic.Int32
	keys := make([]int, 10)

	fanout.Map(context.Background(), limit, keys, func(context.Context, int) (struct{}, error) {
		cur := active.Add(1)
		defer active.Add(-1)
		for {
			p := peak.Load()
			if cur <= p || peak.CompareAndSwap(p, cur) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		return struct{}{}, nil
	})

	if p := peak.Load(); p > limit {
		t.Errorf("peak in-flight calls = %d, want <= %d", p, limit)
	}
}

func TestMap_CanceledContextSkipsWaitingKeys(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	out := fanout.Map(ctx, 1, []int{1, 2, 3}, func(context.Context, int) (int, error) {
		calls.Add(1)
		cancel()
		time.Sleep(20 * time.Millisecond)
		return 1, nil
	})

	var canceled int
	for _, r := range out {
		if errors.Is(r.Err(), context.Canceled) {
			canceled++
		}
	}
	if canceled == 0 {
		t.Error("no outcome reports context.Canceled")
	}
	if int(calls.Load())+canceled != 3 {
		t.Errorf("calls (%d) + canceled (%d) != 3", calls.Load(), canceled)
	}
}
