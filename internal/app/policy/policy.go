// Package policy assembles the per-screen item services. Each function wires
// source adapters together with the Fallback and Retry operators according
// to the business rule for its screen; the operators and adapters never
// branch on user state themselves.
//
//	Friends, premium      remote.Retry(2).Fallback(cache), with write-through
//	Friends, non-premium  remote.Retry(2)
//	Cards                 remote
//	Sent / Received       remote.Retry(1), partitioned by direction
package policy

import (
	"fmt"

	"github.com/jsamuelsen11/go-item-loader/internal/app/delivery"
	"github.com/jsamuelsen11/go-item-loader/internal/app/itemservice"
	"github.com/jsamuelsen11/go-item-loader/internal/domain"
	"github.com/jsamuelsen11/go-item-loader/internal/domain/item"
	"github.com/jsamuelsen11/go-item-loader/internal/ports"
)

// Default retry counts per screen.
const (
	DefaultFriendsRetries   = 2
	DefaultTransfersRetries = 1
	DefaultCardsRetries     = 0
)

// Options carries the construction-time inputs of the policy.
type Options struct {
	// Premium enables the friends cache: successful remote loads are saved
	// and the cache answers when the remote is exhausted.
	Premium bool

	FriendsRetries   int
	TransfersRetries int
	CardsRetries     int
}

// DefaultOptions returns the retry counts of the standard policy for a
// non-premium user.
func DefaultOptions() Options {
	return Options{
		FriendsRetries:   DefaultFriendsRetries,
		TransfersRetries: DefaultTransfersRetries,
		CardsRetries:     DefaultCardsRetries,
	}
}

// Validate checks that no retry count is negative.
func (o Options) Validate() error {
	fields := make(map[string]string)
	for field, v := range map[string]int{
		"friends_retries":   o.FriendsRetries,
		"transfers_retries": o.TransfersRetries,
		"cards_retries":     o.CardsRetries,
	} {
		if v < 0 {
			fields[field] = fmt.Sprintf("must be non-negative, got %d", v)
		}
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Backends holds the collaborators the screens load from. Cache may be nil
// when no cache is configured; it is only consulted for premium users.
type Backends struct {
	Friends   ports.FriendsAPI
	Cards     ports.CardsAPI
	Transfers ports.TransfersAPI
	Cache     ports.FriendsCache
}

// cache returns the cache to wire for opts: the configured one for premium
// users, the null cache otherwise.
func (b Backends) cache(opts Options) (ports.FriendsCache, bool) {
	if !opts.Premium || b.Cache == nil {
		return itemservice.NullCache{}, false
	}
	return b.Cache, true
}

// Friends assembles the friends screen service.
func Friends(b Backends, opts Options, onSelect func(item.Friend), exec delivery.Executor) ports.ItemService {
	cache, cached := b.cache(opts)

	svc := itemservice.
		Compose(itemservice.NewFriendsAPIService(b.Friends, cache, onSelect, exec)).
		Retry(opts.FriendsRetries)
	if cached {
		svc = svc.Fallback(itemservice.NewFriendsCacheService(cache, onSelect, exec))
	}
	return svc
}

// Cards assembles the cards screen service.
func Cards(b Backends, opts Options, onSelect func(item.Card), exec delivery.Executor) ports.ItemService {
	return itemservice.Retry(itemservice.NewCardsAPIService(b.Cards, onSelect, exec), opts.CardsRetries)
}

// SentTransfers assembles the sent transfers screen service.
func SentTransfers(b Backends, opts Options, onSelect func(item.Transfer), exec delivery.Executor) ports.ItemService {
	return itemservice.Retry(itemservice.NewSentTransfersService(b.Transfers, onSelect, exec), opts.TransfersRetries)
}

// ReceivedTransfers assembles the received transfers screen service.
func ReceivedTransfers(b Backends, opts Options, onSelect func(item.Transfer), exec delivery.Executor) ports.ItemService {
	return itemservice.Retry(itemservice.NewReceivedTransfersService(b.Transfers, onSelect, exec), opts.TransfersRetries)
}
