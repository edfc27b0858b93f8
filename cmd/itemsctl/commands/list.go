package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/go-item-loader/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-item-loader/internal/ports"
)

// list: load one screen and print its items with their indexes.
func listCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list <screen>",
		Short: "Load a screen and print its items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			screen := ports.Screen(args[0])
			return withSession(cmd, opts, func(ctx context.Context, s *session) error {
				items, err := s.list.Load(ctx, screen)
				if err != nil {
					return err
				}
				resp := dto.ToItemListResponse(screen, items)
				if opts.output == outputJSON {
					return writeJSON(cmd.OutOrStdout(), resp)
				}
				for _, it := range resp.Items {
					fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\n", it.Index, it.Title, it.Subtitle)
				}
				return nil
			})
		},
	}
}
