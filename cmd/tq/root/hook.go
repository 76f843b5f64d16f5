package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"taskquest/internal/taskwarrior"
	"taskquest/internal/ui"
)

func newHookCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hook",
		Short: "Taskwarrior hook entry points",
		Long: `Taskwarrior hook entry points. Link them into ~/.task/hooks, e.g.

  #!/bin/sh
  exec tq hook on-modify

The task JSON is read from stdin and echoed on stdout; messages go to stderr.`,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "on-add",
			Short: "Give new tasks a default challenge",
			RunE: func(cmd *cobra.Command, args []string) error {
				h := &taskwarrior.Hooks{}
				return h.OnAdd(cmd.InOrStdin(), cmd.OutOrStdout())
			},
		},
		&cobra.Command{
			Use:   "on-modify",
			Short: "Award completed tasks",
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := context.Background()
				a, cleanup, err := openApp(ctx)
				if err != nil {
					// Taskwarrior still needs the task back even if the game is unavailable.
					h := &taskwarrior.Hooks{}
					_, _ = h.OnModify(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
					fmt.Fprintln(cmd.ErrOrStderr(), ui.Warn.Render(ui.IconWarn+" TaskQuest: "+err.Error()))
					return nil
				}
				defer cleanup()

				h := &taskwarrior.Hooks{Completer: a.svc, Log: a.log}
				res, err := h.OnModify(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
				if err != nil {
					return err
				}
				if res != nil {
					fmt.Fprint(cmd.ErrOrStderr(), ui.Completion(res))
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "on-exit",
			Short: "Runs after every Taskwarrior command",
			RunE: func(cmd *cobra.Command, args []string) error {
				h := &taskwarrior.Hooks{}
				return h.OnExit(cmd.InOrStdin())
			},
		},
	)

	return cmd
}
