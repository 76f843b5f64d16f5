package root

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"taskquest/internal/ui"
)

func newRemoveRewardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove-reward <id|name>",
		Short: "Remove a custom reward from the shop",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("reward id or name is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			r, err := svc.RemoveReward(ctx, strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s #%d %s\n", ui.Warn.Render("Removed"), r.ID, r.Name)
			return nil
		},
	}

	return cmd
}
