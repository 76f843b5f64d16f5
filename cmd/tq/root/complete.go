package root

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"taskquest/internal/engine"
	"taskquest/internal/ui"
)

func newCompleteCmd() *cobra.Command {
	var challenge int
	var urgency float64
	var due string
	var project string
	var stat1 string
	var stat2 string

	cmd := &cobra.Command{
		Use:   "complete [description]",
		Short: "Record a completed quest without Taskwarrior",
		RunE: func(cmd *cobra.Command, args []string) error {
			in := engine.CompletionInput{
				Description: strings.Join(args, " "),
				Project:     project,
				Challenge:   challenge,
				Urgency:     urgency,
				Primary:     engine.ParseStatPtr(stat1),
				Secondary:   engine.ParseStatPtr(stat2),
			}
			if strings.TrimSpace(due) != "" {
				d, err := parseDue(due)
				if err != nil {
					return err
				}
				in.Due = &d
			}

			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.Complete(ctx, in)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), ui.Completion(res))
			return nil
		},
	}

	cmd.Flags().IntVarP(&challenge, "challenge", "c", engine.DefaultChallenge, "Challenge rating (1-10)")
	cmd.Flags().Float64VarP(&urgency, "urgency", "u", 0, "Urgency score")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD or RFC 3339)")
	cmd.Flags().StringVarP(&project, "project", "p", "", "Project name")
	cmd.Flags().StringVar(&stat1, "stat1", "", "Primary stat trained (STR|DEX|CON|INT|WIS|CHA)")
	cmd.Flags().StringVar(&stat2, "stat2", "", "Secondary stat trained")

	return cmd
}

// parseDue accepts RFC 3339, a local date (end of that day) or Taskwarrior's compact form.
func parseDue(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse("20060102T150405Z", s); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return t.Add(24*time.Hour - time.Second), nil
	}
	return time.Time{}, fmt.Errorf("invalid due date %q (use YYYY-MM-DD or RFC 3339)", s)
}
