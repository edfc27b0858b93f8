package itemservice

import (
	"context"

	"github.com/jsamuelsen11/go-item-loader/internal/app/delivery"
	"github.com/jsamuelsen11/go-item-loader/internal/app/display"
	"github.com/jsamuelsen11/go-item-loader/internal/domain/item"
	"github.com/jsamuelsen11/go-item-loader/internal/ports"
)

// NewFriendsAPIService adapts the remote friends API. Every successful batch
// is written through to cache before mapping; pass a null cache to disable
// the write-through.
func NewFriendsAPIService(
	api ports.FriendsAPI,
	cache ports.FriendsCache,
	onSelect func(item.Friend),
	exec delivery.Executor,
) *Source[item.Friend] {
	return NewSource("friends-api", api.LoadFriends, display.Friend, onSelect, exec,
		WithBeforeMap(func(ctx context.Context, friends []item.Friend) {
			cache.SaveFriends(ctx, friends)
		}),
	)
}

// NewFriendsCacheService adapts the read path of the local friends cache.
func NewFriendsCacheService(
	cache ports.FriendsCache,
	onSelect func(item.Friend),
	exec delivery.Executor,
) *Source[item.Friend] {
	return NewSource("friends-cache", cache.LoadFriends, display.Friend, onSelect, exec)
}

// NewCardsAPIService adapts the remote cards API.
func NewCardsAPIService(
	api ports.CardsAPI,
	onSelect func(item.Card),
	exec delivery.Executor,
) *Source[item.Card] {
	return NewSource("cards-api", api.LoadCards, display.Card, onSelect, exec)
}

// NewSentTransfersService adapts the remote transfers API to the outgoing
// transfers, rendered with long dates.
func NewSentTransfersService(
	api ports.TransfersAPI,
	onSelect func(item.Transfer),
	exec delivery.Executor,
) *Source[item.Transfer] {
	return newTransfersService("sent-transfers-api", api, item.DirectionSent, display.DateLong, onSelect, exec)
}

// NewReceivedTransfersService adapts the remote transfers API to the
// incoming transfers, rendered with short dates.
func NewReceivedTransfersService(
	api ports.TransfersAPI,
	onSelect func(item.Transfer),
	exec delivery.Executor,
) *Source[item.Transfer] {
	return newTransfersService("received-transfers-api", api, item.DirectionReceived, display.DateShort, onSelect, exec)
}

func newTransfersService(
	name string,
	api ports.TransfersAPI,
	dir item.Direction,
	style display.DateStyle,
	onSelect func(item.Transfer),
	exec delivery.Executor,
) *Source[item.Transfer] {
	present := func(t item.Transfer, sel func()) item.DisplayItem {
		return display.Transfer(t, style, sel)
	}
	return NewSource(name, api.LoadTransfers, present, onSelect, exec,
		WithFilter(dir.Matches),
	)
}
