package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"taskquest/internal/ui"
)

const Version = "0.2.0"

var rootCmd = &cobra.Command{
	Use:           "tq",
	Short:         "TaskQuest — RPG progression for Taskwarrior",
	Long:          "TaskQuest turns completed Taskwarrior tasks into XP, gold, loot, stat growth and achievements for a persistent character.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newInitCmd(),
		newStatusCmd(),
		newStatsCmd(),
		newAchievementsCmd(),
		newNameCmd(),
		newClassCmd(),
		newTitleCmd(),
		newShopCmd(),
		newBuyCmd(),
		newAddRewardCmd(),
		newRemoveRewardCmd(),
		newCompleteCmd(),
		newHistoryCmd(),
		newHookCmd(),
		newBoardCmd(),
		newVersionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
