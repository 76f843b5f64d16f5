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

func newAddRewardCmd() *cobra.Command {
	var cost int
	var tier string
	var description string
	var cooldown int

	cmd := &cobra.Command{
		Use:   "add-reward <name>",
		Short: "Add a custom reward to the shop",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("name is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := engine.ParseRewardTier(tier)
			if err != nil {
				return err
			}

			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			r, err := svc.AddReward(ctx, engine.RewardInput{
				Name:          strings.Join(args, " "),
				Description:   description,
				Cost:          cost,
				Tier:          t,
				CooldownHours: cooldown,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s #%d %s %s\n",
				ui.Good.Render(ui.IconDone+" Added"), r.ID, ui.RewardTierStyle(t).Render(r.Name), ui.Gold.Render(fmt.Sprintf("(%d gold)", r.Cost)))
			return nil
		},
	}

	cmd.Flags().IntVarP(&cost, "cost", "c", 100, "Price in gold")
	cmd.Flags().StringVarP(&tier, "tier", "t", string(engine.RewardNormal), "Tier ("+engine.RewardTierChoices()+")")
	cmd.Flags().StringVarP(&description, "desc", "d", "", "Description")
	cmd.Flags().IntVar(&cooldown, "cooldown", 0, "Hours before it can be bought again")

	return cmd
}
