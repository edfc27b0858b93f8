package di_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/go-item-loader/internal/adapters/http"
	"github.com/jsamuelsen11/go-item-loader/internal/app/delivery"
	"github.com/jsamuelsen11/go-item-loader/internal/platform/config"
	"github.com/jsamuelsen11/go-item-loader/internal/platform/di"
	"github.com/jsamuelsen11/go-item-loader/internal/ports"
)

func testConfig(baseURL, driver string) *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Host: "127.0.0.1", Port: 0, WriteTimeout: 5 * time.Second},
		Log:    config.LogConfig{Level: "info", Format: "json"},
		Client: config.ClientConfig{
			BaseURL: baseURL,
			Timeout: 2 * time.Second,
			CircuitBreaker: config.CircuitBreakerConfig{
				MaxFailures:   10,
				Timeout:       30 * time.Second,
				HalfOpenLimit: 1,
			},
		},
		Cache:    config.CacheConfig{Driver: driver},
		User:     config.UserConfig{Premium: true},
		Policy:   config.PolicyConfig{FriendsRetries: 2, TransfersRetries: 1},
		Delivery: config.DeliveryConfig{QueueSize: 16},
	}
}

// newInjector wires the graph and runs the delivery loop for the test.
func newInjector(t *testing.T, cfg *config.Config) do.Injector {
	t.Helper()

	injector := do.New()
	di.Register(injector, cfg, slog.New(slog.DiscardHandler), nil)

	loop := do.MustInvoke[*delivery.Loop](injector)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		_ = loop.Run(ctx)
		close(done)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	return injector
}

func TestRegister_ResolvesServerGraph(t *testing.T) {
	t.Parallel()

	injector := newInjector(t, testConfig("http://127.0.0.1:1", config.CacheDriverMemory))

	if _, err := do.Invoke[*adapthttp.Server](injector); err != nil {
		t.Fatalf("Invoke[*Server]() error = %v", err)
	}

	registry := do.MustInvoke[ports.HealthRegistry](injector)
	results := registry.CheckAll(context.Background())
	if len(results) == 0 || results[0].Name != di.ItemsAPIName {
		t.Errorf("health results = %+v, want %q first", results, di.ItemsAPIName)
	}
}

func TestRegister_UnknownCacheDriver(t *testing.T) {
	t.Parallel()

	injector := newInjector(t, testConfig("http://127.0.0.1:1", "disk"))

	if _, err := do.Invoke[ports.ListService](injector); err == nil {
		t.Fatal("Invoke[ListService]() error = nil, want unknown driver error")
	}
}

func TestRegister_PremiumFriendsFallBackToCache(t *testing.T) {
	t.Parallel()

	var down atomic.Bool
	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/friends" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		calls.Add(1)
		if down.Load() {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"friends": []map[string]string{{"name": "Ann", "phone": "+1 555 0100"}},
		})
	}))
	t.Cleanup(ts.Close)

	injector := newInjector(t, testConfig(ts.URL, config.CacheDriverMemory))
	svc := do.MustInvoke[ports.ListService](injector)

	items, err := svc.Load(context.Background(), ports.ScreenFriends)
	if err != nil {
		t.Fatalf("first Load() error = %v", err)
	}
	if len(items) != 1 || items[0].Title != "Ann" {
		t.Fatalf("first Load() = %+v, want Ann", items)
	}

	down.Store(true)
	calls.Store(0)

	items, err = svc.Load(context.Background(), ports.ScreenFriends)
	if err != nil {
		t.Fatalf("second Load() error = %v, want cached friends", err)
	}
	if len(items) != 1 || items[0].Subtitle != "+1 555 0100" {
		t.Errorf("second Load() = %+v, want cached Ann", items)
	}
	if got := calls.Load(); got != 3 {
		t.Errorf("downstream calls = %d, want 3 (one attempt plus two retries)", got)
	}
}

func TestPolicyOptions(t *testing.T) {
	t.Parallel()

	cfg := testConfig("", config.CacheDriverNone)
	cfg.User.Premium = false
	cfg.Policy.CardsRetries = 4

	got := di.PolicyOptions(cfg)
	if got.Premium || got.FriendsRetries != 2 || got.TransfersRetries != 1 || got.CardsRetries != 4 {
		t.Errorf("PolicyOptions() = %+v", got)
	}
}
