// Package tui holds the interactive battle screen. The service is not safe
// for concurrent use, so every mutation happens inside Update on the
// program's own goroutine; no tea.Cmd touches the service.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/onemoresn/FightersQuest/internal/engine"
	"github.com/onemoresn/FightersQuest/internal/ui"
)

const endDelay = 900 * time.Millisecond

type tickMsg time.Time

type endMsg struct{}

type battleModel struct {
	ctx context.Context
	svc *engine.Service

	width  int
	height int

	skillMode bool
	message   string
	closing   bool
	err       error
}

func newBattleModel(ctx context.Context, svc *engine.Service) battleModel {
	return battleModel{ctx: ctx, svc: svc, message: "Choose your move."}
}

func (m battleModel) tickCmd() tea.Cmd {
	return tea.Tick(m.svc.TickPeriod(), func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m battleModel) Init() tea.Cmd {
	return m.tickCmd()
}

func (m battleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		if m.closing {
			return m, nil
		}
		m.svc.Tick(m.ctx)
		return m, m.tickCmd()
	case endMsg:
		m.svc.EndBattle()
		return m, tea.Quit
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m battleModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.closing {
		return m, nil
	}
	key := msg.String()

	if m.skillMode {
		switch key {
		case "esc":
			m.skillMode = false
			m.message = "Choose your move."
			return m, nil
		default:
			if n := numberKey(key); n > 0 {
				return m.castSkill(n - 1)
			}
		}
		return m, nil
	}

	switch key {
	case "ctrl+c", "q":
		m.svc.EndBattle()
		return m, tea.Quit
	case "a":
		return m.afterAction(m.svc.BattleAttack(m.ctx))
	case "d":
		return m.afterAction(m.svc.BattleDefend(m.ctx))
	case "s":
		if len(m.svc.State().Skills) == 0 {
			m.message = "No skills learned yet."
			return m, nil
		}
		m.skillMode = true
		m.message = "Pick a skill (esc to cancel)."
		return m, nil
	}
	return m, nil
}

func (m battleModel) castSkill(idx int) (tea.Model, tea.Cmd) {
	skills := m.svc.State().Skills
	if idx >= len(skills) {
		m.message = "No such skill."
		return m, nil
	}
	m.skillMode = false
	return m.afterAction(m.svc.UseSkill(m.ctx, skills[idx].ID))
}

func (m battleModel) afterAction(err error) (tea.Model, tea.Cmd) {
	if err != nil {
		m.message = err.Error()
		return m, nil
	}
	m.message = "Choose your move."
	b := m.svc.Battle()
	if b != nil && b.Over() {
		m.closing = true
		return m, tea.Tick(endDelay, func(time.Time) tea.Msg { return endMsg{} })
	}
	return m, nil
}

func numberKey(key string) int {
	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		return int(key[0] - '0')
	}
	return 0
}

func (m battleModel) View() string {
	b := m.svc.Battle()
	if b == nil {
		return "No battle.\n"
	}
	st := m.svc.State()

	var out strings.Builder
	out.WriteString(ui.Heading(ui.IconSword, fmt.Sprintf("%s (Lv. %d)", b.Enemy.Name, b.Enemy.Level)))
	out.WriteString("\n")
	out.WriteString("  " + ui.HPBar(b.Enemy.HP.Cur, b.Enemy.HP.Max, 26))
	out.WriteString("\n\n")

	out.WriteString(ui.H2.Render(fmt.Sprintf("You — %s, Lv. %d", st.Title, st.Level)))
	out.WriteString("\n")
	out.WriteString(fmt.Sprintf("  %s HP %s\n", ui.IconHeart, ui.HPBar(b.Player.HP.Cur, b.Player.HP.Max, 26)))
	out.WriteString(fmt.Sprintf("  %s MP %s\n", ui.IconMana, ui.Bar(b.Player.MP.Cur, b.Player.MP.Max, 26)))
	out.WriteString(fmt.Sprintf("  %s ST %s\n", ui.IconBolt, ui.Bar(b.Player.Stam.Cur, b.Player.Stam.Max, 26)))
	if b.Defending {
		out.WriteString("  " + ui.Muted.Render("defending") + "\n")
	}
	if b.Barrier > 0 {
		out.WriteString("  " + ui.Muted.Render(fmt.Sprintf("barrier x%d", b.Barrier)) + "\n")
	}
	out.WriteString("\n")

	for _, line := range tail(b.Log, 8) {
		out.WriteString("  " + line + "\n")
	}
	out.WriteString("\n")

	switch b.Phase {
	case engine.PhaseWon:
		out.WriteString(ui.BadgeVictory + "\n")
	case engine.PhaseLost:
		out.WriteString(ui.BadgeDefeat + "\n")
	default:
		if m.skillMode {
			for i, sk := range st.Skills {
				out.WriteString(fmt.Sprintf("  %d. %s (%d MP) %s\n", i+1, sk.Name, sk.MPCost, ui.RarityText(sk.Rarity)))
			}
		} else {
			out.WriteString(ui.Dim.Render("  a: attack   d: defend   s: skills   q: flee") + "\n")
		}
	}
	out.WriteString("\n" + ui.Muted.Render(m.message) + "\n")
	return out.String()
}

func tail(lines []string, n int) []string {
	if len(lines) <= n {
		return lines
	}
	return lines[len(lines)-n:]
}
