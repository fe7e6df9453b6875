package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/onemoresn/FightersQuest/internal/engine"
	"github.com/onemoresn/FightersQuest/internal/ui"
)

func newAllocateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "allocate <stat=points>...",
		Short: "Spend ability points on stats (all-or-nothing)",
		Example: `  fq allocate str=2 vit=1
  fq allocate int=3`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("at least one stat=points pair is required")
			}
			_, err := parseAllocations(args)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			deltas, err := parseAllocations(args)
			if err != nil {
				return err
			}
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := svc.Allocate(ctx, deltas); err != nil {
				return err
			}
			st := svc.State()
			fmt.Fprintf(cmd.OutOrStdout(), "%s Allocated. Remaining ability points: %d\n", ui.IconDone, st.Available)
			return nil
		},
	}
}

func parseAllocations(args []string) (map[string]int, error) {
	known := map[string]bool{}
	for _, k := range engine.StatKeys {
		known[k] = true
	}
	deltas := map[string]int{}
	for _, arg := range args {
		key, val, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, fmt.Errorf("expected stat=points, got '%s'", arg)
		}
		if !known[key] {
			return nil, fmt.Errorf("unknown stat '%s' (use %s)", key, strings.Join(engine.StatKeys, ", "))
		}
		n, err := strconv.Atoi(val)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("points for %s must be a non-negative integer", key)
		}
		deltas[key] += n
	}
	return deltas, nil
}
