package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jsamuelsen11/go-item-loader/internal/domain"
	"github.com/jsamuelsen11/go-item-loader/internal/domain/item"
	"github.com/jsamuelsen11/go-item-loader/internal/ports"
)

// Defaults for RedisOptions fields left zero.
const (
	DefaultRedisKey       = "items:friends"
	DefaultRedisOpTimeout = 2 * time.Second
)

var (
	_ ports.FriendsCache  = (*Redis)(nil)
	_ ports.HealthChecker = (*Redis)(nil)
)

// RedisOptions configures a Redis cache.
type RedisOptions struct {
	// Key holds the JSON-encoded friends list.
	Key string
	// TTL expires the saved list; zero keeps it until overwritten.
	TTL time.Duration
	// OpTimeout bounds every Redis round trip.
	OpTimeout time.Duration
}

// friendRecord is the stored form of one friend.
type friendRecord struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// Redis stores the friends list as one JSON value under a single key.
type Redis struct {
	client *redis.Client
	opts   RedisOptions
	logger *slog.Logger
}

// NewRedis creates a Redis cache over client.
func NewRedis(client *redis.Client, opts RedisOptions, logger *slog.Logger) *Redis {
	if opts.Key == "" {
		opts.Key = DefaultRedisKey
	}
	if opts.OpTimeout <= 0 {
		opts.OpTimeout = DefaultRedisOpTimeout
	}
	return &Redis{
		client: client,
		opts:   opts,
		logger: logger.With(slog.String("component", "friends-cache")),
	}
}

// LoadFriends reads the saved list on a new goroutine. A missing key
// completes with ErrNoData and an undecodable value with ErrMalformed.
func (r *Redis) LoadFriends(ctx context.Context, completion func(domain.Result[[]item.Friend])) {
	ctx = context.WithoutCancel(ctx)
	go func() {
		completion(r.load(ctx))
	}()
}

func (r *Redis) load(ctx context.Context) domain.Result[[]item.Friend] {
	ctx, cancel := context.WithTimeout(ctx, r.opts.OpTimeout)
	defer cancel()

	data, err := r.client.Get(ctx, r.opts.Key).Bytes()
	if errors.Is(err, redis.Nil) {
		r.logger.DebugContext(ctx, "cache miss", slog.String("key", r.opts.Key))
		return domain.Failure[[]item.Friend](fmt.Errorf("redis friends cache %q: %w", r.opts.Key, domain.ErrNoData))
	}
	if err != nil {
		r.logger.ErrorContext(ctx, "cache error",
			slog.String("operation", "LoadFriends"),
			slog.String("key", r.opts.Key),
			slog.Any("error", err),
		)
		return domain.Failure[[]item.Friend](fmt.Errorf("reading friends cache: %w", err))
	}

	var records []friendRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return domain.Failure[[]item.Friend](fmt.Errorf("decoding friends cache: %w: %w", domain.ErrMalformed, err))
	}

	friends := make([]item.Friend, len(records))
	for i, rec := range records {
		friends[i] = item.Friend{Name: rec.Name, Phone: rec.Phone}
	}
	r.logger.DebugContext(ctx, "cache hit", slog.Int("count", len(friends)))
	return domain.Success(friends)
}

// SaveFriends overwrites the saved list. It blocks for at most OpTimeout;
// failures are logged and dropped.
func (r *Redis) SaveFriends(ctx context.Context, friends []item.Friend) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.opts.OpTimeout)
	defer cancel()

	records := make([]friendRecord, len(friends))
	for i, f := range friends {
		records[i] = friendRecord{Name: f.Name, Phone: f.Phone}
	}

	data, err := json.Marshal(records)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to encode friends",
			slog.String("operation", "SaveFriends"),
			slog.Any("error", err),
		)
		return
	}

	if err := r.client.Set(ctx, r.opts.Key, data, r.opts.TTL).Err(); err != nil {
		r.logger.ErrorContext(ctx, "cache error",
			slog.String("operation", "SaveFriends"),
			slog.String("key", r.opts.Key),
			slog.Any("error", err),
		)
	}
}

// Name implements ports.HealthChecker.
func (r *Redis) Name() string {
	return "friends-cache"
}

// HealthCheck pings the Redis server.
func (r *Redis) HealthCheck(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}
