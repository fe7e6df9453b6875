package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/onemoresn/FightersQuest/internal/ui"
)

func newDuelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "duel <quest-id>",
		Short: "Resolve a fight in a single power contest",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("quest id is required (see 'fq quests')")
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

			res, err := svc.Duel(ctx, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, line := range res.Log {
				fmt.Fprintln(out, line)
			}
			if res.Won {
				fmt.Fprintln(out, ui.BadgeVictory)
			} else {
				fmt.Fprintln(out, ui.BadgeDefeat)
			}
			return nil
		},
	}
}
