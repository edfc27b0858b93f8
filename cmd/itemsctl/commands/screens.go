package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/go-item-loader/internal/adapters/http/dto"
)

func screensCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "screens",
		Short: "List the available screens in display order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(cmd, opts, func(_ context.Context, s *session) error {
				screens := s.list.Screens()
				if opts.output == outputJSON {
					return writeJSON(cmd.OutOrStdout(), dto.ToScreenListResponse(screens))
				}
				for _, sc := range screens {
					fmt.Fprintln(cmd.OutOrStdout(), sc)
				}
				return nil
			})
		},
	}
}
