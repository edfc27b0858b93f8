// Package main is the entry point for the item-loader service. It wires the
// graph with samber/do, then runs the delivery loop and the HTTP server
// until SIGINT or SIGTERM.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/go-item-loader/internal/adapters/http"
	"github.com/jsamuelsen11/go-item-loader/internal/app/delivery"
	"github.com/jsamuelsen11/go-item-loader/internal/platform/config"
	"github.com/jsamuelsen11/go-item-loader/internal/platform/di"
	"github.com/jsamuelsen11/go-item-loader/internal/platform/logging"
	"github.com/jsamuelsen11/go-item-loader/internal/platform/telemetry"
)

const teardownTimeout = 5 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	envFile := flag.String("env-file", ".env", "optional dotenv file with APP_ overrides")
	configDir := flag.String("config-dir", "configs", "directory holding base.yaml and <profile>.yaml")
	flag.Parse()

	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, prod)")
	}

	cfg, err := config.Load(profile,
		config.WithConfigDir(*configDir),
		config.WithEnvFile(*envFile),
	)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	providers, err := telemetry.Setup(ctx, &cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	injector := do.New()
	di.Register(injector, cfg, logger, providers.Metrics())

	// Resolving the server wires the full graph up front.
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}
	loop := do.MustInvoke[*delivery.Loop](injector)

	logger.InfoContext(ctx, "starting item-loader",
		slog.String("profile", profile),
		slog.Bool("premium", cfg.User.Premium),
		slog.String("cache_driver", cfg.Cache.Driver),
	)

	// The loop outlives the server so that deliveries for requests still
	// draining have somewhere to run.
	loopCtx, stopLoop := context.WithCancel(context.WithoutCancel(ctx))
	defer stopLoop()

	loopDone := make(chan error, 1)
	go func() {
		loopDone <- loop.Run(loopCtx)
	}()

	serveErr := server.Run(ctx)

	logger.Info("http server stopped; stopping delivery loop")
	stopLoop()
	select {
	case err := <-loopDone:
		if err != nil {
			logger.Error("delivery loop error", slog.Any("error", err))
		}
	case <-time.After(teardownTimeout):
		logger.Warn("delivery loop did not stop in time")
	}

	teardownCtx, cancel := context.WithTimeout(context.Background(), teardownTimeout)
	defer cancel()

	di.Close(teardownCtx, injector, cfg, logger)
	if err := providers.Shutdown(teardownCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	if serveErr != nil {
		return serveErr
	}
	logger.Info("shutdown complete")
	return nil
}
