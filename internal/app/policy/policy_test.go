package policy_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/go-item-loader/internal/app/policy"
	"github.com/jsamuelsen11/go-item-loader/internal/domain"
	"github.com/jsamuelsen11/go-item-loader/internal/domain/item"
	"github.com/jsamuelsen11/go-item-loader/internal/ports"
	"github.com/jsamuelsen11/go-item-loader/mocks"
)

var errRemote = errors.New("remote failure")

// countingAPI answers every call with its fixed results, counting calls.
type countingAPI struct {
	calls     atomic.Int32
	friends   domain.Result[[]item.Friend]
	cards     domain.Result[[]item.Card]
	transfers domain.Result[[]item.Transfer]
}

func (a *countingAPI) LoadFriends(_ context.Context, completion func(domain.Result[[]item.Friend])) {
	a.calls.Add(1)
	go completion(a.friends)
}

func (a *countingAPI) LoadCards(_ context.Context, completion func(domain.Result[[]item.Card])) {
	a.calls.Add(1)
	go completion(a.cards)
}

func (a *countingAPI) LoadTransfers(_ context.Context, completion func(domain.Result[[]item.Transfer])) {
	a.calls.Add(1)
	go completion(a.transfers)
}

func load(t *testing.T, svc ports.ItemService) domain.Result[[]item.DisplayItem] {
	t.Helper()

	var (
		once sync.Once
		n    atomic.Int32
	)
	done := make(chan domain.Result[[]item.DisplayItem], 1)
	svc.LoadItems(context.Background(), func(r domain.Result[[]item.DisplayItem]) {
		n.Add(1)
		once.Do(func() { done <- r })
	})

	select {
	case r := <-done:
		time.Sleep(10 * time.Millisecond)
		if got := n.Load(); got != 1 {
			t.Fatalf("completion invoked %d times, want 1", got)
		}
		return r
	case <-time.After(2 * time.Second):
		t.Fatal("completion was never invoked")
		return domain.Result[[]item.DisplayItem]{}
	}
}

func TestFriends_PremiumFallsBackToCacheAfterRetries(t *testing.T) {
	t.Parallel()

	api := &countingAPI{friends: domain.Failure[[]item.Friend](errRemote)}
	cache := mocks.NewMockFriendsCache(t)
	cache.EXPECT().
		LoadFriends(mock.Anything, mock.Anything).
		Run(func(_ context.Context, completion func(domain.Result[[]item.Friend])) {
			completion(domain.Success([]item.Friend{{Name: "Cached", Phone: "1"}}))
		}).
		Return().
		Once()

	opts := policy.DefaultOptions()
	opts.Premium = true

	got := load(t, policy.Friends(policy.Backends{Friends: api, Cache: cache}, opts, nil, nil))

	if !got.IsSuccess() {
		t.Fatalf("error = %v, want cached success", got.Err())
	}
	if got.Value()[0].Title != "Cached" {
		t.Errorf("title = %q, want Cached", got.Value()[0].Title)
	}
	if api.calls.Load() != 3 {
		t.Errorf("remote calls = %d, want 3", api.calls.Load())
	}
}

func TestFriends_PremiumWritesThrough(t *testing.T) {
	t.Parallel()

	friends := []item.Friend{{Name: "Ann", Phone: "555"}}
	api := &countingAPI{friends: domain.Success(friends)}
	cache := mocks.NewMockFriendsCache(t)
	cache.EXPECT().SaveFriends(mock.Anything, friends).Return().Times(1)

	opts := policy.DefaultOptions()
	opts.Premium = true

	got := load(t, policy.Friends(policy.Backends{Friends: api, Cache: cache}, opts, nil, nil))

	if !got.IsSuccess() {
		t.Fatalf("error = %v", got.Err())
	}
}

func TestFriends_NonPremiumNeverTouchesCache(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		result    domain.Result[[]item.Friend]
		wantCalls int32
	}{
		{name: "success", result: domain.Success([]item.Friend{{Name: "Ann"}}), wantCalls: 1},
		{name: "failure", result: domain.Failure[[]item.Friend](errRemote), wantCalls: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			api := &countingAPI{friends: tt.result}
			// No expectations: any call on the cache fails the test.
			cache := mocks.NewMockFriendsCache(t)

			got := load(t, policy.Friends(policy.Backends{Friends: api, Cache: cache}, policy.DefaultOptions(), nil, nil))

			if got.IsSuccess() != tt.result.IsSuccess() {
				t.Errorf("IsSuccess() = %v, want %v", got.IsSuccess(), tt.result.IsSuccess())
			}
			if tt.result.Err() != nil && got.Err() != errRemote {
				t.Errorf("error = %v, want %v", got.Err(), errRemote)
			}
			if api.calls.Load() != tt.wantCalls {
				t.Errorf("remote calls = %d, want %d", api.calls.Load(), tt.wantCalls)
			}
		})
	}
}

func TestFriends_PremiumWithoutCacheBehavesAsNonPremium(t *testing.T) {
	t.Parallel()

	api := &countingAPI{friends: domain.Failure[[]item.Friend](errRemote)}
	opts := policy.DefaultOptions()
	opts.Premium = true

	got := load(t, policy.Friends(policy.Backends{Friends: api}, opts, nil, nil))

	if got.Err() != errRemote {
		t.Errorf("error = %v, want %v", got.Err(), errRemote)
	}
}

func TestCards_NoRetry(t *testing.T) {
	t.Parallel()

	api := &countingAPI{cards: domain.Failure[[]item.Card](errRemote)}

	got := load(t, policy.Cards(policy.Backends{Cards: api}, policy.DefaultOptions(), nil, nil))

	if got.Err() != errRemote {
		t.Errorf("error = %v, want %v", got.Err(), errRemote)
	}
	if api.calls.Load() != 1 {
		t.Errorf("calls = %d, want 1", api.calls.Load())
	}
}

func TestTransfers_RetryOnceAndPartition(t *testing.T) {
	t.Parallel()

	transfers := []item.Transfer{
		{Amount: decimal.NewFromInt(5), CurrencyCode: "EUR", Description: "out", Counterparty: "Ann", Outgoing: true},
		{Amount: decimal.NewFromInt(7), CurrencyCode: "EUR", Description: "in", Counterparty: "Bob"},
	}

	t.Run("failure", func(t *testing.T) {
		t.Parallel()

		api := &countingAPI{transfers: domain.Failure[[]item.Transfer](errRemote)}
		got := load(t, policy.SentTransfers(policy.Backends{Transfers: api}, policy.DefaultOptions(), nil, nil))

		if got.Err() != errRemote {
			t.Errorf("error = %v, want %v", got.Err(), errRemote)
		}
		if api.calls.Load() != 2 {
			t.Errorf("calls = %d, want 2", api.calls.Load())
		}
	})

	t.Run("sent", func(t *testing.T) {
		t.Parallel()

		api := &countingAPI{transfers: domain.Success(transfers)}
		got := load(t, policy.SentTransfers(policy.Backends{Transfers: api}, policy.DefaultOptions(), nil, nil))

		if items := got.Value(); len(items) != 1 || items[0].Title != "EUR 5.00 • out" {
			t.Errorf("items = %+v, want the outgoing transfer", items)
		}
	})

	t.Run("received", func(t *testing.T) {
		t.Parallel()

		api := &countingAPI{transfers: domain.Success(transfers)}
		got := load(t, policy.ReceivedTransfers(policy.Backends{Transfers: api}, policy.DefaultOptions(), nil, nil))

		if items := got.Value(); len(items) != 1 || items[0].Title != "EUR 7.00 • in" {
			t.Errorf("items = %+v, want the incoming transfer", items)
		}
	})
}

func TestOptions_Validate(t *testing.T) {
	t.Parallel()

	if err := policy.DefaultOptions().Validate(); err != nil {
		t.Errorf("DefaultOptions().Validate() = %v, want nil", err)
	}

	opts := policy.Options{FriendsRetries: -1, CardsRetries: -2}
	err := opts.Validate()
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("Validate() = %v, want ErrValidation", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(*ValidationError) = false, got %T", err)
	}
	for _, field := range []string{"friends_retries", "cards_retries"} {
		if _, ok := verr.Fields[field]; !ok {
			t.Errorf("Fields missing %q, got %v", field, verr.Fields)
		}
	}
}
