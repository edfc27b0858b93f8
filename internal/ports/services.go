package ports

import (
	"context"

	"github.com/jsamuelsen11/go-item-loader/internal/domain"
	"github.com/jsamuelsen11/go-item-loader/internal/domain/item"
)

// ItemService loads a collection of display items from one or more
// backends. Implementations compose freely: a fallback or retry of an
// ItemService is itself an ItemService.
type ItemService interface {
	// LoadItems starts a load and returns without blocking. completion is
	// invoked exactly once per call, on the delivery executor the service
	// was built with.
	LoadItems(ctx context.Context, completion func(domain.Result[[]item.DisplayItem]))
}

// Screen names one of the item lists the service exposes.
type Screen string

const (
	ScreenFriends  Screen = "friends"
	ScreenCards    Screen = "cards"
	ScreenSent     Screen = "sent"
	ScreenReceived Screen = "received"
)

// String implements fmt.Stringer.
func (s Screen) String() string {
	return string(s)
}

// SelectionKind tells which entity a Selection carries.
type SelectionKind string

const (
	SelectionFriend   SelectionKind = "friend"
	SelectionCard     SelectionKind = "card"
	SelectionTransfer SelectionKind = "transfer"
)

// Selection is the detail routed to when a display item is selected.
// Exactly one of Friend, Card, and Transfer is set, matching Kind.
type Selection struct {
	Screen   Screen
	Kind     SelectionKind
	Friend   *item.Friend
	Card     *item.Card
	Transfer *item.Transfer
}

// ScreenOutcome records the result of loading one screen during LoadAll.
type ScreenOutcome struct {
	Screen Screen
	Items  []item.DisplayItem
	Err    error
}

// ListService defines the service port for the headless item lists.
// Implemented by the application layer; called by inbound adapters (HTTP
// handlers, CLI commands).
type ListService interface {
	// Screens returns the configured screens in display order.
	Screens() []Screen

	// Load runs one top-level load for the screen and returns the delivered
	// items. The backend error is returned verbatim on failure.
	// Returns domain.ErrNotFound if the screen does not exist.
	Load(ctx context.Context, screen Screen) ([]item.DisplayItem, error)

	// LoadAll loads every screen concurrently. Per-screen failures are
	// reported in the outcomes, never as a call-level error.
	LoadAll(ctx context.Context) []ScreenOutcome

	// Select triggers the selection action of the item at index in the
	// screen's last delivered list and returns the routed detail.
	// Returns domain.ErrNotFound if the screen or index does not exist.
	Select(ctx context.Context, screen Screen, index int) (*Selection, error)

	// Selection returns the last routed detail for the screen.
	// Returns domain.ErrNotFound if nothing has been selected yet.
	Selection(screen Screen) (*Selection, error)
}
