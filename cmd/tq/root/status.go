package root

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"taskquest/internal/engine"
	"taskquest/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show your character",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			c, ledger, err := svc.Snapshot(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, ui.Character(c))
			fmt.Fprintln(out, "")
			fmt.Fprint(out, ui.Stats(c))
			fmt.Fprintln(out, "")

			unlocked := ledger.UnlockedAchievements()
			fmt.Fprintln(out, ui.LabelValue(ui.IconTrophy+" Achievements", fmt.Sprintf("%d/%d", len(unlocked), len(engine.Catalog()))))
			var tiers []string
			for _, tier := range engine.AllAchievementTiers {
				if n := ledger.UnlockedCountByTier(tier); n > 0 {
					tiers = append(tiers, ui.AchievementTierStyle(tier).Render(fmt.Sprintf("%d %s", n, tier)))
				}
			}
			if len(tiers) > 0 {
				fmt.Fprintln(out, "  "+strings.Join(tiers, ui.Muted.Render(" · ")))
			}
			if a, ok := ledger.RarestUnlocked(); ok {
				fmt.Fprintln(out, "  "+ui.Muted.Render("rarest:")+" "+ui.AchievementLine(a))
			}
			return nil
		},
	}

	return cmd
}
