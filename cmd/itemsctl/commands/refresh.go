package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/go-item-loader/internal/adapters/http/dto"
)

// refresh: load every screen concurrently and report each outcome. The
// command fails when any screen failed.
func refreshCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Load every screen and report per-screen outcomes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(cmd, opts, func(ctx context.Context, s *session) error {
				resp := dto.ToRefreshResponse(s.list.LoadAll(ctx))
				if opts.output == outputJSON {
					if err := writeJSON(cmd.OutOrStdout(), resp); err != nil {
						return err
					}
				} else {
					for _, o := range resp.Screens {
						if o.Error != "" {
							fmt.Fprintf(cmd.OutOrStdout(), "%s\terror: %s\n", o.Screen, o.Error)
							continue
						}
						fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d items\n", o.Screen, o.Count)
					}
				}
				if resp.Failed > 0 {
					return fmt.Errorf("%d of %d screens failed to load", resp.Failed, resp.Total)
				}
				return nil
			})
		},
	}
}
