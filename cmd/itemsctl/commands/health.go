package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/samber/do/v2"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/go-item-loader/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-item-loader/internal/ports"
)

// health: run the readiness checks the server's /health/ready runs.
func healthCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check the items API and friends cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(cmd, opts, func(ctx context.Context, s *session) error {
				registry, err := do.Invoke[ports.HealthRegistry](s.injector)
				if err != nil {
					return fmt.Errorf("resolving health checks: %w", err)
				}

				resp := dto.ToReadinessResponse(registry.CheckAll(ctx))
				if opts.output == outputJSON {
					if err := writeJSON(cmd.OutOrStdout(), resp); err != nil {
						return err
					}
				} else {
					for _, c := range resp.Checks {
						state := "ok"
						if !c.Healthy {
							state = "error: " + c.Error
						}
						fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%.1fms\n", c.Name, state, c.LatencyMS)
					}
				}
				if !resp.Ready {
					return errors.New("not ready")
				}
				return nil
			})
		},
	}
}
