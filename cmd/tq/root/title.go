package root

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"taskquest/internal/ui"
)

func newTitleCmd() *cobra.Command {
	var clearTitle bool

	cmd := &cobra.Command{
		Use:   "title [achievement title]",
		Short: "Wear the title of an unlocked achievement",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			if len(args) == 0 && !clearTitle {
				_, ledger, err := svc.Snapshot(ctx)
				if err != nil {
					return err
				}
				unlocked := ledger.UnlockedAchievements()
				if len(unlocked) == 0 {
					fmt.Fprintln(out, ui.Muted.Render("No titles yet. Unlock an achievement first."))
					return nil
				}
				fmt.Fprintln(out, ui.Heading(ui.IconScroll, "Available titles"))
				for _, a := range unlocked {
					fmt.Fprintln(out, "  "+ui.AchievementLine(a))
				}
				return nil
			}

			title := strings.Join(args, " ")
			if clearTitle {
				title = ""
			}
			c, err := svc.SetTitle(ctx, title)
			if err != nil {
				return err
			}
			if c.ActiveTitle == nil {
				fmt.Fprintln(out, ui.Good.Render(ui.IconDone+" Title cleared"))
				return nil
			}
			fmt.Fprintln(out, ui.Good.Render(fmt.Sprintf("%s %s the %s", ui.IconDone, c.Name, *c.ActiveTitle)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&clearTitle, "clear", false, "Remove the active title")

	return cmd
}
