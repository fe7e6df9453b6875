package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/onemoresn/FightersQuest/internal/ui"
)

func newWorkoutCmd() *cobra.Command {
	var name string
	var hours, minutes int

	cmd := &cobra.Command{
		Use:   "workout",
		Short: "Log a personal workout for XP",
		RunE: func(cmd *cobra.Command, args []string) error {
			total := hours*60 + minutes
			if total <= 0 {
				return errors.New("use --hours and/or --minutes (total > 0)")
			}
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			entry, res, err := svc.LogWorkout(ctx, name, total)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged: %s — %dm\n", entry.Name, entry.Minutes)
			printCompletion(cmd, res)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "workout label")
	cmd.Flags().IntVar(&hours, "hours", 0, "hours spent")
	cmd.Flags().IntVar(&minutes, "minutes", 0, "minutes spent")

	cmd.AddCommand(newWorkoutHistoryCmd())
	cmd.AddCommand(newWorkoutDeleteCmd())
	return cmd
}

func newWorkoutHistoryCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent workouts",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			workouts := svc.State().Workouts
			if len(workouts) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("No workouts logged yet."))
				return nil
			}
			if limit > 0 && len(workouts) > limit {
				workouts = workouts[:limit]
			}
			for _, w := range workouts {
				when := time.UnixMilli(w.At).Format("2006-01-02 15:04")
				fmt.Fprintf(out, "- %s  %s — %dm %s  %s\n", ui.Muted.Render(when), w.Name, w.Minutes, ui.Good.Render(fmt.Sprintf("+%d XP", w.XP)), ui.Dim.Render(fmt.Sprintf("#%d", w.ID)))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 10, "max entries to show")
	return cmd
}

func newWorkoutDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a workout history entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid workout id %q", args[0])
			}
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := svc.DeleteWorkout(ctx, id); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Deleted.")
			return nil
		},
	}
}
