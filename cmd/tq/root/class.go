package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"taskquest/internal/engine"
	"taskquest/internal/ui"
)

func newClassCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "class [class]",
		Short: "Show the classes or change yours",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				fmt.Fprintln(out, ui.Heading(ui.IconSword, "Classes"))
				for _, c := range engine.AllClasses {
					fmt.Fprintf(out, "- %s %s\n", ui.Key.Render(string(c)), ui.Muted.Render(c.Description()))
				}
				fmt.Fprintln(out, ui.Muted.Render("Classes are cosmetic."))
				return nil
			}

			cls, err := engine.ParseClass(args[0])
			if err != nil {
				return err
			}

			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			c, err := svc.SetClass(ctx, cls)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, ui.Good.Render(fmt.Sprintf("%s %s is now a %s", ui.IconDone, c.Name, c.Class)))
			return nil
		},
	}

	return cmd
}
