package root

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/onemoresn/FightersQuest/internal/engine"
	"github.com/onemoresn/FightersQuest/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show player level, resources, stats and unlocks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			st := svc.State()
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, "Player Status"))
			fmt.Fprintln(out, ui.LabelValue("Level", fmt.Sprintf("%d (%s)", st.Level, st.Title)))
			fmt.Fprintln(out, ui.LabelValue("Job", st.Job))
			fmt.Fprintln(out, ui.LabelValue("XP", fmt.Sprintf("%d / %d", st.XP.Cur, st.XP.ToNext)))
			fmt.Fprintln(out, "")

			fmt.Fprintf(out, "%s HP %s\n", ui.IconHeart, ui.HPBar(st.HP.Cur, st.HP.Max, 26))
			fmt.Fprintf(out, "%s MP %s\n", ui.IconMana, ui.Bar(st.MP.Cur, st.MP.Max, 26))
			fmt.Fprintf(out, "%s ST %s\n", ui.IconBolt, ui.Bar(st.Stamina.Cur, st.Stamina.Max, 26))
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render("📊 Stats"))
			eff := st.EffectiveStats()
			for _, k := range engine.StatKeys {
				line := fmt.Sprintf("- %s: %d", strings.ToUpper(k), st.Stats[k])
				if bonus := eff[k] - st.Stats[k]; bonus > 0 {
					line += " " + ui.Good.Render(fmt.Sprintf("(+%d)", bonus))
				}
				fmt.Fprintln(out, line)
			}
			fmt.Fprintln(out, ui.LabelValue("Ability Points", st.Available))
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render("🔓 Unlocks"))
			for cat, open := range st.UnlockedCategories {
				fmt.Fprintf(out, "- %s %s\n", ui.Key.Render(cat+":"), enabledStr(open))
			}
			for _, k := range []string{engine.UpgradeWeeklyPushups50, engine.UpgradeDailyJumpingJacks50} {
				if st.Upgrades[k] {
					fmt.Fprintf(out, "- %s %s\n", ui.Key.Render(k+":"), ui.Good.Render("earned"))
				}
			}

			if len(st.Skills) > 0 {
				fmt.Fprintln(out, "")
				fmt.Fprintln(out, ui.H2.Render(ui.IconScroll+" Skills"))
				for _, sk := range st.Skills {
					fmt.Fprintf(out, "- %s (%d MP) %s\n", sk.Name, sk.MPCost, ui.RarityText(sk.Rarity))
				}
			}
			return nil
		},
	}
	return cmd
}

func enabledStr(ok bool) string {
	if ok {
		return ui.Good.Render("unlocked")
	}
	return ui.Bad.Render("locked")
}
