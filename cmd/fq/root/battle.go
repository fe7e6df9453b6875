package root

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/onemoresn/FightersQuest/internal/tui"
)

func newBattleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "battle <quest-id>",
		Short: "Fight a monster turn by turn",
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

			if _, err := svc.StartBattle(args[0]); err != nil {
				return err
			}
			return tui.RunBattle(ctx, svc, cmd.OutOrStdout())
		},
	}
}
