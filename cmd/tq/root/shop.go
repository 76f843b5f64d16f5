package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"taskquest/internal/engine"
	"taskquest/internal/ui"
)

func newShopCmd() *cobra.Command {
	var available bool

	cmd := &cobra.Command{
		Use:   "shop",
		Short: "List rewards you can buy with gold",
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
			var rewards []engine.RewardStatus
			if available {
				rewards, err = svc.AvailableRewards(ctx)
			} else {
				rewards, err = svc.ListRewards(ctx)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconShop, "Reward Shop"))
			fmt.Fprintln(out, ui.LabelValue(ui.IconCoin+" Gold", ui.Gold.Render(fmt.Sprintf("%d", c.Gold))))
			fmt.Fprintln(out, "")
			if len(rewards) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(nothing available right now)"))
				return nil
			}
			for _, r := range rewards {
				fmt.Fprintln(out, ui.Reward(r))
			}
			fmt.Fprintln(out, "")
			fmt.Fprintln(out, ui.Muted.Render("Buy with `tq buy <id|name>`."))
			return nil
		},
	}

	cmd.Flags().BoolVar(&available, "available", false, "Hide rewards that are cooling down")

	return cmd
}
