package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/onemoresn/FightersQuest/internal/ui"
)

func newChallengesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "challenges",
		Short: "List exercise challenges by category",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			st := svc.State()
			cat := svc.Catalog()
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, ui.Heading(ui.IconFlex, "Challenges"))
			for _, category := range cat.Categories() {
				locked := !st.UnlockedCategories[category] && categoryGated(category, st.UnlockedCategories)
				heading := category
				if locked {
					heading += " 🔒"
				}
				fmt.Fprintln(out, ui.H2.Render(heading))
				for _, ch := range cat.Challenges {
					if ch.Category != category {
						continue
					}
					mark := "[ ]"
					if st.Challenges[ch.ID] {
						mark = ui.Good.Render("[x]")
					}
					tag := ""
					if cat.DailySet[ch.ID] {
						tag = ui.Muted.Render(" (daily)")
					} else if cat.WeeklySet[ch.ID] {
						tag = ui.Muted.Render(" (weekly)")
					}
					fmt.Fprintf(out, "%s %s %s — %d%s %s\n", mark, ui.Key.Render(ch.ID), ch.Label, ch.Amount, tag, ui.Muted.Render(fmt.Sprintf("+%d XP", ch.XP)))
				}
				fmt.Fprintln(out, "")
			}
			return nil
		},
	}

	cmd.AddCommand(newChallengesDoCmd())
	return cmd
}

// categoryGated reports whether a category appears in the unlock ledger at
// all; categories never tracked there are always open.
func categoryGated(category string, unlocked map[string]bool) bool {
	_, tracked := unlocked[category]
	return tracked
}

func newChallengesDoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "do <id>",
		Short: "Complete a challenge",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("challenge id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.CompleteChallenge(ctx, args[0])
			if err != nil {
				return err
			}
			printCompletion(cmd, res)
			return nil
		},
	}
}
