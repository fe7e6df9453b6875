package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/onemoresn/FightersQuest/internal/engine"
	"github.com/onemoresn/FightersQuest/internal/ui"
)

// printCompletion renders the reward summary shared by challenge, task and
// workout completions.
func printCompletion(cmd *cobra.Command, res engine.CompletionResult) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s +%d XP\n", ui.IconDone, res.XP)
	for _, up := range res.LevelUps {
		fmt.Fprintf(out, "%s %s reached level %d\n", ui.IconSparkle, ui.BadgeLevelUp, up.Level)
	}
	if res.Skill != nil {
		fmt.Fprintf(out, "%s Learned skill: %s %s\n", ui.IconScroll, ui.Gold.Render(res.Skill.Name), ui.RarityText(res.Skill.Rarity))
	}
	if res.Loot != nil {
		fmt.Fprintf(out, "%s Loot: %s %s\n", ui.IconBox, res.Loot.Name, ui.RarityText(res.Loot.Rarity))
	}
	for _, note := range res.Upgrades {
		fmt.Fprintf(out, "%s %s\n", ui.IconTrophy, ui.Gold.Render(note))
	}
}
