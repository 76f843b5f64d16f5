package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"taskquest/internal/ui"
)

func newHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recently completed quests",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			list, err := svc.History(ctx, limit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconScroll, "Quest Log"))
			if len(list) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(no completed quests yet)"))
				return nil
			}
			for _, c := range list {
				fmt.Fprintln(out, ui.HistoryLine(c))
			}
			total, err := svc.HistoryTotal(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, ui.Muted.Render(fmt.Sprintf("showing %d of %d quests", len(list), total)))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Number of entries")

	return cmd
}
