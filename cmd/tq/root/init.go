package root

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"taskquest/internal/engine"
	"taskquest/internal/taskwarrior"
	"taskquest/internal/ui"
)

func newInitCmd() *cobra.Command {
	var class string
	var force bool
	var noUDA bool

	cmd := &cobra.Command{
		Use:   "init [name]",
		Short: "Create your character and configure Taskwarrior",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			cls, err := engine.ParseClass(class)
			if err != nil {
				return err
			}
			name := strings.Join(args, " ")
			c, err := a.svc.Init(ctx, name, cls, force)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, fmt.Sprintf("Welcome, %s the %s!", c.Name, c.Class)))
			fmt.Fprintln(out, ui.LabelValue("Data", a.cfg.DataDir))

			if noUDA {
				return nil
			}
			added, err := taskwarrior.ConfigureUDAs(a.cfg.Taskrc)
			if err != nil {
				return err
			}
			if added {
				fmt.Fprintln(out, ui.Good.Render(ui.IconDone+" TaskQuest UDAs added to "+a.cfg.Taskrc))
			} else {
				fmt.Fprintln(out, ui.Muted.Render("UDAs already configured in "+a.cfg.Taskrc))
			}
			fmt.Fprintln(out, ui.Muted.Render("Install the hooks by linking `tq hook on-add`, `tq hook on-modify` and `tq hook on-exit` into ~/.task/hooks."))
			return nil
		},
	}

	cmd.Flags().StringVarP(&class, "class", "c", string(engine.ClassWarrior), "Class (Rogue|Ranger|Warrior|Paladin|Monk)")
	cmd.Flags().BoolVar(&force, "force", false, "Replace an existing character")
	cmd.Flags().BoolVar(&noUDA, "no-uda", false, "Do not touch the Taskwarrior config")

	return cmd
}
