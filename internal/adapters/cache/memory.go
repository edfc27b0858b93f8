package cache

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/jsamuelsen11/go-item-loader/internal/domain"
	"github.com/jsamuelsen11/go-item-loader/internal/domain/item"
	"github.com/jsamuelsen11/go-item-loader/internal/ports"
)

var _ ports.FriendsCache = (*Memory)(nil)

// Memory keeps the last saved friends in process memory.
type Memory struct {
	mu      sync.RWMutex
	friends []item.Friend
	saved   bool
}

// NewMemory returns an empty Memory cache.
func NewMemory() *Memory {
	return &Memory{}
}

// LoadFriends completes with a copy of the saved friends, or ErrNoData if
// nothing was saved yet.
func (m *Memory) LoadFriends(_ context.Context, completion func(domain.Result[[]item.Friend])) {
	m.mu.RLock()
	friends, saved := slices.Clone(m.friends), m.saved
	m.mu.RUnlock()

	go func() {
		if !saved {
			completion(domain.Failure[[]item.Friend](fmt.Errorf("memory friends cache: %w", domain.ErrNoData)))
			return
		}
		completion(domain.Success(friends))
	}()
}

// SaveFriends replaces the saved friends with a copy of friends.
func (m *Memory) SaveFriends(_ context.Context, friends []item.Friend) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.friends = slices.Clone(friends)
	m.saved = true
}
