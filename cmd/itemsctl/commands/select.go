package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/go-item-loader/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-item-loader/internal/ports"
)

// select: load a screen, select one item, and print the routed detail.
// State does not outlive the process, so the load always runs first.
func selectCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "select <screen> <index>",
		Short: "Select an item and print its detail",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			screen := ports.Screen(args[0])
			index, err := strconv.Atoi(args[1])
			if err != nil || index < 0 {
				return fmt.Errorf("index %q must be a non-negative integer", args[1])
			}

			return withSession(cmd, opts, func(ctx context.Context, s *session) error {
				if _, err := s.list.Load(ctx, screen); err != nil {
					return err
				}
				sel, err := s.list.Select(ctx, screen, index)
				if err != nil {
					return err
				}
				resp := dto.ToSelectionResponse(sel)
				if opts.output == outputJSON {
					return writeJSON(cmd.OutOrStdout(), resp)
				}
				fmt.Fprintln(cmd.OutOrStdout(), describeSelection(resp))
				return nil
			})
		},
	}
}

func describeSelection(sel dto.SelectionResponse) string {
	switch {
	case sel.Friend != nil:
		return fmt.Sprintf("friend %s, phone %s", sel.Friend.Name, sel.Friend.Phone)
	case sel.Card != nil:
		return fmt.Sprintf("card %s, holder %s", sel.Card.Number, sel.Card.Holder)
	case sel.Transfer != nil:
		t := sel.Transfer
		dir := "from"
		if t.Outgoing {
			dir = "to"
		}
		return fmt.Sprintf("transfer %s %s %s %s on %s: %s", t.CurrencyCode, t.Amount, dir, t.Counterparty, t.Date, t.Description)
	default:
		return sel.Kind
	}
}
