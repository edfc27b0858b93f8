// Package di registers the service's dependency graph with a samber/do
// injector. The HTTP server and the itemsctl CLI share the same graph and
// differ only in the inbound adapter they resolve.
package di

import (
	"context"
	"fmt"
	"log/slog"
	nethttp "net/http"

	"github.com/redis/go-redis/v9"
	"github.com/samber/do/v2"

	"github.com/jsamuelsen11/go-item-loader/internal/adapters/cache"
	"github.com/jsamuelsen11/go-item-loader/internal/adapters/clients/acl"
	adapthttp "github.com/jsamuelsen11/go-item-loader/internal/adapters/http"
	"github.com/jsamuelsen11/go-item-loader/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/go-item-loader/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/go-item-loader/internal/app/delivery"
	"github.com/jsamuelsen11/go-item-loader/internal/app/itemservice"
	"github.com/jsamuelsen11/go-item-loader/internal/app/listing"
	"github.com/jsamuelsen11/go-item-loader/internal/app/policy"
	"github.com/jsamuelsen11/go-item-loader/internal/platform/config"
	"github.com/jsamuelsen11/go-item-loader/internal/platform/health"
	"github.com/jsamuelsen11/go-item-loader/internal/platform/httpclient"
	"github.com/jsamuelsen11/go-item-loader/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-item-loader/internal/ports"
)

// ItemsAPIName identifies the downstream items API in traces, metrics, and
// health results.
const ItemsAPIName = "items-api"

// Register provides every component of the graph. Nothing is constructed
// until first resolved. metrics may be nil when telemetry is disabled.
func Register(injector do.Injector, cfg *config.Config, logger *slog.Logger, metrics *telemetry.Metrics) {
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, metrics)

	do.Provide(injector, func(_ do.Injector) (*delivery.Loop, error) {
		return delivery.NewLoop(cfg.Delivery.QueueSize, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
		m := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Client, ItemsAPIName, m, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*acl.ItemsClient, error) {
		client := do.MustInvoke[*httpclient.Client](i)
		return acl.NewItemsClient(client, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (*redis.Client, error) {
		if cfg.Cache.Driver != config.CacheDriverRedis {
			return nil, fmt.Errorf("redis client requested with cache driver %q", cfg.Cache.Driver)
		}
		return redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.Redis.Addr,
			Password: cfg.Cache.Redis.Password,
			DB:       cfg.Cache.Redis.DB,
		}), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.FriendsCache, error) {
		return newFriendsCache(i, cfg, logger)
	})

	do.Provide(injector, func(i do.Injector) (*listing.Service, error) {
		friendsCache, err := do.Invoke[ports.FriendsCache](i)
		if err != nil {
			return nil, err
		}
		client := do.MustInvoke[*acl.ItemsClient](i)
		loop := do.MustInvoke[*delivery.Loop](i)

		backends := policy.Backends{
			Friends:   client,
			Cards:     client,
			Transfers: client,
			Cache:     friendsCache,
		}
		return listing.New(backends, PolicyOptions(cfg), loop, logger)
	})

	do.Provide(injector, func(i do.Injector) (ports.ListService, error) {
		svc, err := do.Invoke[*listing.Service](i)
		if err != nil {
			return nil, err
		}
		return svc, nil
	})

	do.Provide(injector, func(i do.Injector) (ports.HealthRegistry, error) {
		registry := health.New()
		registry.Register(do.MustInvoke[*acl.ItemsClient](i))
		if checker, ok := do.MustInvoke[ports.FriendsCache](i).(ports.HealthChecker); ok {
			registry.Register(checker)
		}
		return registry, nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.ListHandler, error) {
		svc := do.MustInvoke[ports.ListService](i)
		return handlers.NewListHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		listH := do.MustInvoke[*handlers.ListHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		m := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(listH, healthH,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.OpenTelemetry(m),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.WriteTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}

// PolicyOptions maps the user and policy config sections onto load policy
// options.
func PolicyOptions(cfg *config.Config) policy.Options {
	return policy.Options{
		Premium:          cfg.User.Premium,
		FriendsRetries:   cfg.Policy.FriendsRetries,
		TransfersRetries: cfg.Policy.TransfersRetries,
		CardsRetries:     cfg.Policy.CardsRetries,
	}
}

// newFriendsCache builds the friends cache selected by cache.driver.
func newFriendsCache(i do.Injector, cfg *config.Config, logger *slog.Logger) (ports.FriendsCache, error) {
	switch cfg.Cache.Driver {
	case config.CacheDriverMemory:
		return cache.NewMemory(), nil
	case config.CacheDriverRedis:
		client, err := do.Invoke[*redis.Client](i)
		if err != nil {
			return nil, err
		}
		return cache.NewRedis(client, cache.RedisOptions{
			Key:       cfg.Cache.Redis.Key,
			TTL:       cfg.Cache.Redis.TTL,
			OpTimeout: cfg.Cache.Redis.OpTimeout,
		}, logger), nil
	case config.CacheDriverNone:
		return itemservice.NullCache{}, nil
	default:
		return nil, fmt.Errorf("unknown cache driver %q", cfg.Cache.Driver)
	}
}

// Close releases connections opened by the graph. Only the redis client
// holds any.
func Close(ctx context.Context, injector do.Injector, cfg *config.Config, logger *slog.Logger) {
	if cfg.Cache.Driver != config.CacheDriverRedis {
		return
	}
	client, err := do.Invoke[*redis.Client](injector)
	if err != nil {
		return
	}
	if err := client.Close(); err != nil {
		logger.ErrorContext(ctx, "closing redis client", slog.Any("error", err))
	}
}
