package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/samber/do/v2"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/go-item-loader/internal/app/delivery"
	"github.com/jsamuelsen11/go-item-loader/internal/platform/config"
	"github.com/jsamuelsen11/go-item-loader/internal/platform/di"
	"github.com/jsamuelsen11/go-item-loader/internal/platform/logging"
	"github.com/jsamuelsen11/go-item-loader/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-item-loader/internal/ports"
)

// Output formats.
const (
	outputText = "text"
	outputJSON = "json"
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	profile   string
	configDir string
	envFile   string
	output    string
	verbose   bool
}

// Execute runs the itemsctl root command against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the itemsctl command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "itemsctl",
		Short:         "Load and select friends, cards, and transfers",
		SilenceUsage:  true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if opts.output != outputText && opts.output != outputJSON {
				return fmt.Errorf("--output must be %q or %q", outputText, outputJSON)
			}
			return nil
		},
	}

	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		profile = "local"
	}

	root.PersistentFlags().StringVar(&opts.profile, "profile", profile, "config profile (default $APP_PROFILE or local)")
	root.PersistentFlags().StringVar(&opts.configDir, "config-dir", "configs", "directory holding base.yaml and <profile>.yaml")
	root.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "optional dotenv file with APP_ overrides")
	root.PersistentFlags().StringVarP(&opts.output, "output", "o", outputText, "output format: text or json")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log at debug level")

	root.AddCommand(screensCmd(opts), listCmd(opts), selectCmd(opts), refreshCmd(opts), healthCmd(opts))
	return root
}

// session is one wired graph with its delivery loop running.
type session struct {
	injector  do.Injector
	cfg       *config.Config
	logger    *slog.Logger
	providers *telemetry.Providers
	list      ports.ListService
	stop      context.CancelFunc
	done      chan error
}

// withSession wires the graph, runs fn, and tears the graph down even when
// fn fails.
func withSession(cmd *cobra.Command, opts *rootOptions, fn func(context.Context, *session) error) error {
	cfg, err := config.Load(opts.profile,
		config.WithConfigDir(opts.configDir),
		config.WithEnvFile(opts.envFile),
	)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	level := "warn"
	if opts.verbose {
		level = "debug"
	}
	logger := logging.New(level, cfg.Log.Format, cmd.ErrOrStderr())

	ctx := logging.WithLogger(cmd.Context(), logger)

	providers, err := telemetry.Setup(ctx, &cfg.Telemetry, telemetry.WithWriter(cmd.ErrOrStderr()))
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	injector := do.New()
	di.Register(injector, cfg, logger, providers.Metrics())

	list, err := do.Invoke[ports.ListService](injector)
	if err != nil {
		_ = providers.Shutdown(ctx)
		return fmt.Errorf("wiring services: %w", err)
	}

	loopCtx, stop := context.WithCancel(context.WithoutCancel(ctx))
	s := &session{
		injector:  injector,
		cfg:       cfg,
		logger:    logger,
		providers: providers,
		list:      list,
		stop:      stop,
		done:      make(chan error, 1),
	}

	loop := do.MustInvoke[*delivery.Loop](injector)
	go func() {
		s.done <- loop.Run(loopCtx)
	}()
	defer s.close(ctx)

	return fn(ctx, s)
}

func (s *session) close(ctx context.Context) {
	s.stop()
	if err := <-s.done; err != nil {
		s.logger.ErrorContext(ctx, "delivery loop error", slog.Any("error", err))
	}
	di.Close(ctx, s.injector, s.cfg, s.logger)
	if err := s.providers.Shutdown(ctx); err != nil {
		s.logger.ErrorContext(ctx, "telemetry shutdown error", slog.Any("error", err))
	}
}
