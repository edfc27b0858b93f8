package itemservice

import (
	"context"

	"github.com/jsamuelsen11/go-item-loader/internal/domain"
	"github.com/jsamuelsen11/go-item-loader/internal/domain/item"
	"github.com/jsamuelsen11/go-item-loader/internal/ports"
)

var _ ports.FriendsCache = NullCache{}

// NullCache is a FriendsCache that holds nothing: saves are discarded and
// every load fails with domain.ErrNoData. Wiring it in place of a real cache
// disables caching without changing any call site.
type NullCache struct{}

// LoadFriends always completes with domain.ErrNoData.
func (NullCache) LoadFriends(_ context.Context, completion func(domain.Result[[]item.Friend])) {
	completion(domain.Failure[[]item.Friend](domain.ErrNoData))
}

// SaveFriends discards friends.
func (NullCache) SaveFriends(context.Context, []item.Friend) {}
