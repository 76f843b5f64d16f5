package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"taskquest/internal/engine"
	"taskquest/internal/ui"
)

func newAchievementsCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:     "achievements",
		Aliases: []string{"ach"},
		Short:   "List achievements",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			rows, err := svc.Achievements(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			unlocked := 0
			for _, r := range rows {
				if r.Unlocked {
					unlocked++
				}
			}
			fmt.Fprintln(out, ui.Heading(ui.IconTrophy, fmt.Sprintf("Achievements %d/%d", unlocked, len(rows))))

			for _, tier := range engine.AllAchievementTiers {
				var lines []string
				for _, r := range rows {
					if r.Tier != tier {
						continue
					}
					switch {
					case r.Unlocked:
						lines = append(lines, "  "+ui.AchievementLine(r.Achievement))
					case all:
						lines = append(lines, fmt.Sprintf("  %s %s %s\n      %s",
							ui.IconLock, ui.Dim.Render(r.Title), ui.ProgressBar(r.Progress, 16), ui.Muted.Render(r.Description)))
					}
				}
				if len(lines) == 0 {
					continue
				}
				fmt.Fprintln(out, "")
				fmt.Fprintln(out, ui.AchievementTierStyle(tier).Render(tier.String()))
				for _, l := range lines {
					fmt.Fprintln(out, l)
				}
			}
			if unlocked == 0 && !all {
				fmt.Fprintln(out, ui.Muted.Render("None yet. Complete a quest, or run with --all to see what awaits."))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Include locked achievements with progress")

	return cmd
}
