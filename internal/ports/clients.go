package ports

import (
	"context"

	"github.com/jsamuelsen11/go-item-loader/internal/domain"
	"github.com/jsamuelsen11/go-item-loader/internal/domain/item"
)

// FriendsAPI is the remote backend for the user's friends.
// Implemented by the ACL adapter; consumed by the friends item services.
type FriendsAPI interface {
	// LoadFriends starts an asynchronous load and returns immediately.
	// completion is invoked at most once, on a goroutine owned by the
	// implementation.
	LoadFriends(ctx context.Context, completion func(domain.Result[[]item.Friend]))
}

// CardsAPI is the remote backend for the user's payment cards.
type CardsAPI interface {
	// LoadCards starts an asynchronous load and returns immediately.
	// completion is invoked at most once.
	LoadCards(ctx context.Context, completion func(domain.Result[[]item.Card]))
}

// TransfersAPI is the remote backend for the user's transfers in both
// directions. Callers filter by direction.
type TransfersAPI interface {
	// LoadTransfers starts an asynchronous load and returns immediately.
	// completion is invoked at most once.
	LoadTransfers(ctx context.Context, completion func(domain.Result[[]item.Transfer]))
}

// FriendsCache is the local store of the last successfully loaded friends.
// Implementations must be safe for concurrent use; callers add no locking.
type FriendsCache interface {
	// LoadFriends reads the cached friends asynchronously. An empty cache
	// completes with a failure wrapping domain.ErrNoData.
	LoadFriends(ctx context.Context, completion func(domain.Result[[]item.Friend]))

	// SaveFriends replaces the cached friends. It is fire-and-forget: write
	// errors are logged by the implementation, never returned.
	SaveFriends(ctx context.Context, friends []item.Friend)
}
