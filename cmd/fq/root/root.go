package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/onemoresn/FightersQuest/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "fq",
	Short:         "FightersQuest — fitness RPG progression tracker",
	Long:          "FightersQuest turns workouts and exercise challenges into RPG progression: XP, levels, stats, skills, loot and monster battles.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newStatusCmd(),
		newChallengesCmd(),
		newTasksCmd(),
		newWorkoutCmd(),
		newQuestsCmd(),
		newBattleCmd(),
		newDuelCmd(),
		newSkillsCmd(),
		newInventoryCmd(),
		newAllocateCmd(),
		newResetCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
