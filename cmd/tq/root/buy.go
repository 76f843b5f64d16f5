package root

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"taskquest/internal/engine"
	"taskquest/internal/ui"
)

func newBuyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "buy <id|name>",
		Short: "Buy a reward from the shop",
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

			res, err := svc.Purchase(ctx, strings.Join(args, " "))
			var gold engine.InsufficientGoldError
			if errors.As(err, &gold) {
				return fmt.Errorf("%w (%d more needed)", err, gold.Cost-gold.Balance)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			tier := ui.RewardTierStyle(engine.RewardTier(res.Reward.Tier))
			fmt.Fprintf(out, "%s %s %s\n", ui.Good.Render(ui.IconGift+" Purchased"), tier.Render(res.Reward.Name), ui.Muted.Render(fmt.Sprintf("(-%d gold)", res.Spent)))
			fmt.Fprintln(out, ui.LabelValue(ui.IconCoin+" Gold left", res.Balance))
			for _, w := range res.Warnings {
				fmt.Fprintln(out, ui.Warn.Render(ui.IconWarn+" "+w))
			}
			fmt.Fprint(out, ui.Unlocked(res.Unlocked))
			fmt.Fprintln(out, ui.Muted.Render("Enjoy your reward!"))
			return nil
		},
	}

	return cmd
}
