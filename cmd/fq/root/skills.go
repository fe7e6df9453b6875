package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/onemoresn/FightersQuest/internal/ui"
)

func newSkillsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "skills",
		Short: "List learned skills",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			skills := svc.State().Skills
			if len(skills) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("No skills learned yet. Complete tasks and challenges for a chance to learn one."))
				return nil
			}
			fmt.Fprintln(out, ui.Heading(ui.IconScroll, "Skills"))
			for _, sk := range skills {
				fmt.Fprintf(out, "%s %s (%d MP) %s\n  %s\n", ui.Key.Render(sk.ID), sk.Name, sk.MPCost, ui.RarityText(sk.Rarity), ui.Muted.Render(sk.Desc))
			}
			return nil
		},
	}

	cmd.AddCommand(newSkillsUseCmd())
	return cmd
}

func newSkillsUseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "use <id>",
		Short: "Use a healing skill outside battle",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("skill id is required")
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

			if err := svc.UseSkill(ctx, args[0]); err != nil {
				return err
			}
			st := svc.State()
			fmt.Fprintf(cmd.OutOrStdout(), "%s HP %s  %s MP %s\n",
				ui.IconHeart, ui.HPBar(st.HP.Cur, st.HP.Max, 20),
				ui.IconMana, ui.Bar(st.MP.Cur, st.MP.Max, 20))
			return nil
		},
	}
}
