package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/onemoresn/FightersQuest/internal/engine"
	"github.com/onemoresn/FightersQuest/internal/ui"
)

func newTasksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Show the fixed daily and weekly tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			st := svc.State()
			out := cmd.OutOrStdout()
			bonus := engine.WeeklyBonus(st.Level)

			daily := engine.DailyTaskForLevel(st.Level, st.TaskBase[engine.BaseDailyJumpingJacks])
			fmt.Fprintln(out, ui.Heading(ui.IconFlex, "Tasks"))
			fmt.Fprintln(out, ui.H2.Render("Daily"))
			fmt.Fprintf(out, "%s %s — %d %s %s\n",
				doneMark(st.Tasks[engine.TaskDaily].Completed),
				ui.Key.Render(engine.TaskDaily), daily.Amount, daily.Activity,
				ui.Muted.Render(fmt.Sprintf("+%d XP", engine.TaskXP(engine.TaskDaily))))
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render("Weekly"))
			weekly := []struct {
				key  string
				base string
				name string
			}{
				{engine.TaskWeeklyPush, engine.BaseWeeklyPushups, "push-ups"},
				{engine.TaskWeeklySquat, engine.BaseWeeklySquats, "squats"},
				{engine.TaskWeeklySit, engine.BaseWeeklySitups, "sit-ups"},
			}
			for _, w := range weekly {
				amount := engine.TieredRequirement(st.TaskBase[w.base], st.Level) + bonus
				fmt.Fprintf(out, "%s %s — %d %s %s\n",
					doneMark(st.Tasks[w.key].Completed),
					ui.Key.Render(w.key), amount, w.name,
					ui.Muted.Render(fmt.Sprintf("+%d XP", engine.TaskXP(w.key))))
			}
			if bonus > 0 {
				fmt.Fprintln(out, ui.Muted.Render(fmt.Sprintf("(includes rank bonus +%d)", bonus)))
			}
			return nil
		},
	}

	cmd.AddCommand(newTasksDoCmd(), newTasksUndoCmd())
	return cmd
}

func doneMark(done bool) string {
	if done {
		return ui.Good.Render("[x]")
	}
	return "[ ]"
}

func taskKeyArg(args []string) (string, error) {
	if len(args) != 1 {
		return "", errors.New("task key is required (daily, weeklyPush, weeklySquat, weeklySit)")
	}
	return args[0], nil
}

func newTasksDoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "do <key>",
		Short: "Complete a fixed task",
		Args:  func(cmd *cobra.Command, args []string) error { _, err := taskKeyArg(args); return err },
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.CompleteTask(ctx, args[0])
			if err != nil {
				return err
			}
			printCompletion(cmd, res)
			return nil
		},
	}
}

func newTasksUndoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "undo <key>",
		Short: "Uncheck a fixed task (no XP refund)",
		Args:  func(cmd *cobra.Command, args []string) error { _, err := taskKeyArg(args); return err },
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()
			return svc.SetTaskDone(ctx, args[0], false)
		},
	}
}
