package root

import (
	"context"

	"github.com/spf13/cobra"

	"taskquest/internal/tui"
)

func newBoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the character sheet TUI",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if _, err := svc.Character(ctx); err != nil {
				return err
			}
			return tui.RunSheet(ctx, svc, cmd.OutOrStdout())
		},
	}

	return cmd
}
