package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"taskquest/internal/ui"
)

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show your six stats",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			c, err := svc.Character(ctx)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), ui.Stats(c))
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Set stat1/stat2 on a task to train stats when you complete it."))
			return nil
		},
	}

	return cmd
}
