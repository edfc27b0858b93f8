package acl

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/go-item-loader/internal/adapters/clients/acl/card"
	"github.com/jsamuelsen11/go-item-loader/internal/adapters/clients/acl/friend"
	"github.com/jsamuelsen11/go-item-loader/internal/adapters/clients/acl/transfer"
	"github.com/jsamuelsen11/go-item-loader/internal/domain"
	"github.com/jsamuelsen11/go-item-loader/internal/domain/item"
	"github.com/jsamuelsen11/go-item-loader/internal/platform/httpclient"
	"github.com/jsamuelsen11/go-item-loader/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.FriendsAPI    = (*ItemsClient)(nil)
	_ ports.CardsAPI      = (*ItemsClient)(nil)
	_ ports.TransfersAPI  = (*ItemsClient)(nil)
	_ ports.HealthChecker = (*ItemsClient)(nil)
)

// Downstream resource paths.
const (
	friendsPath   = "/api/v1/friends"
	cardsPath     = "/api/v1/cards"
	transfersPath = "/api/v1/transfers"
)

// ItemsClient is the outbound adapter for the downstream items API. One
// client serves all three backends: friends, cards, and transfers.
//
// Each load runs on its own goroutine and invokes completion exactly once
// from there. Payloads are validated against the DTO schemas and translated
// by the [friend], [card], and [transfer] sub-packages. Failures always wrap
// a domain sentinel (ErrUnavailable, ErrMalformed, ErrNotFound, ...), or a
// context error when the caller gave up.
type ItemsClient struct {
	req    *Requester
	client *httpclient.Client
	logger *slog.Logger
}

// NewItemsClient creates an ItemsClient sending requests through client,
// whose BaseURL points at the downstream API root.
func NewItemsClient(client *httpclient.Client, logger *slog.Logger) *ItemsClient {
	return &ItemsClient{
		req:    NewRequester(client, logger),
		client: client,
		logger: logger,
	}
}

// LoadFriends fetches GET /api/v1/friends.
func (c *ItemsClient) LoadFriends(ctx context.Context, completion func(domain.Result[[]item.Friend])) {
	go func() {
		var dto friend.FriendListResponseDTO
		if err := c.fetch(ctx, friendsPath, &dto); err != nil {
			completion(domain.Failure[[]item.Friend](err))
			return
		}
		completion(domain.Success(friend.ToDomainFriends(dto)))
	}()
}

// LoadCards fetches GET /api/v1/cards.
func (c *ItemsClient) LoadCards(ctx context.Context, completion func(domain.Result[[]item.Card])) {
	go func() {
		var dto card.CardListResponseDTO
		if err := c.fetch(ctx, cardsPath, &dto); err != nil {
			completion(domain.Failure[[]item.Card](err))
			return
		}
		completion(domain.Success(card.ToDomainCards(dto)))
	}()
}

// LoadTransfers fetches GET /api/v1/transfers. Both directions come back
// in one list; callers partition by item.Direction.
func (c *ItemsClient) LoadTransfers(ctx context.Context, completion func(domain.Result[[]item.Transfer])) {
	go func() {
		var dto transfer.TransferListResponseDTO
		if err := c.fetch(ctx, transfersPath, &dto); err != nil {
			completion(domain.Failure[[]item.Transfer](err))
			return
		}
		transfers, err := transfer.ToDomainTransfers(dto)
		if err != nil {
			c.logger.ErrorContext(ctx, "untranslatable transfer",
				slog.String("operation", "ItemsClient.LoadTransfers"),
				slog.Any("error", err),
			)
			completion(domain.Failure[[]item.Transfer](err))
			return
		}
		completion(domain.Success(transfers))
	}()
}

// Name returns "items-api" or whatever service name the underlying
// httpclient was built with.
func (c *ItemsClient) Name() string {
	return c.client.Name()
}

// HealthCheck reports the circuit breaker state of the underlying client.
func (c *ItemsClient) HealthCheck(ctx context.Context) error {
	return c.client.HealthCheck(ctx)
}

// fetch GETs path into dto and validates the decoded payload.
func (c *ItemsClient) fetch(ctx context.Context, path string, dto any) error {
	if err := c.req.Get(ctx, path, dto); err != nil {
		return err
	}
	if err := validateDTO(dto); err != nil {
		c.logger.ErrorContext(ctx, "downstream payload failed validation",
			slog.String("path", path),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}
