package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/onemoresn/FightersQuest/internal/ui"
)

func newInventoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "inventory",
		Aliases: []string{"inv"},
		Short:   "List inventory and equipped gear",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			st := svc.State()
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, ui.Heading(ui.IconBox, "Inventory"))
			if len(st.Inventory) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(empty)"))
			}
			for i, item := range st.Inventory {
				fmt.Fprintf(out, "%s %s x%d %s %s\n", ui.Key.Render(strconv.Itoa(i)), item.Name, item.Qty, ui.RarityText(item.Rarity), ui.Muted.Render(item.Type))
			}

			if len(st.Equipment) > 0 {
				fmt.Fprintln(out, "")
				fmt.Fprintln(out, ui.H2.Render("Equipped"))
				for slot, item := range st.Equipment {
					fmt.Fprintf(out, "- %s %s %s\n", ui.Key.Render(slot+":"), item.Name, ui.RarityText(item.Rarity))
				}
			}
			return nil
		},
	}

	cmd.AddCommand(newInventoryUseCmd(), newInventoryEquipCmd())
	return cmd
}

func indexArg(args []string) (int, error) {
	if len(args) != 1 {
		return 0, errors.New("item index is required")
	}
	idx, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, errors.New("item index must be an integer")
	}
	return idx, nil
}

func newInventoryUseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "use <index>",
		Short: "Consume an item",
		Args:  func(cmd *cobra.Command, args []string) error { _, err := indexArg(args); return err },
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, _ := strconv.Atoi(args[0])
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			item, err := svc.UseItem(ctx, idx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Used %s\n", ui.IconDone, item.Name)
			return nil
		},
	}
}

func newInventoryEquipCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "equip <index>",
		Short: "Equip or unequip armor",
		Args:  func(cmd *cobra.Command, args []string) error { _, err := indexArg(args); return err },
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, _ := strconv.Atoi(args[0])
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()
			return svc.ToggleEquip(ctx, idx)
		},
	}
}
