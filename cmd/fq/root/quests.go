package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/onemoresn/FightersQuest/internal/ui"
)

func newQuestsCmd() *cobra.Command {
	var limit int
	var dungeons bool

	cmd := &cobra.Command{
		Use:   "quests",
		Short: "List monsters to fight",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			cat := svc.Catalog()
			out := cmd.OutOrStdout()

			if dungeons {
				fmt.Fprintln(out, ui.Heading(ui.IconSword, "Dungeons"))
				for _, d := range cat.Dungeons {
					fmt.Fprintf(out, "%s %s %s\n", ui.Key.Render(d.ID), d.Name, ui.Muted.Render(fmt.Sprintf("(difficulty %d, %d monsters)", d.Difficulty, len(d.Monsters))))
				}
				return nil
			}

			fmt.Fprintln(out, ui.Heading(ui.IconSword, "Quests"))
			quests := cat.Quests
			if limit > 0 && len(quests) > limit {
				quests = quests[:limit]
			}
			for _, q := range quests {
				fmt.Fprintf(out, "%s %s — Lv. %d %s\n", ui.Key.Render(q.ID), q.Name, q.Level, ui.Muted.Render(fmt.Sprintf("(reward %d AP)", q.Reward)))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "max quests to show")
	cmd.Flags().BoolVar(&dungeons, "dungeons", false, "list dungeons instead")
	return cmd
}
