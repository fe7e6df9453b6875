package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// FightersQuest theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconSword   = "⚔️"
	IconSparkle = "✨"
	IconDone    = "✅"
	IconTrophy  = "🏆"
	IconBolt    = "⚡"
	IconHeart   = "❤️"
	IconMana    = "🔮"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconBox     = "📦"
	IconScroll  = "📜"
	IconFlex    = "💪"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)
	Dim   = lipgloss.NewStyle().Foreground(cMuted)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	PanelTitle  = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary)

	BadgeLevelUp = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("LEVEL UP")
	BadgeVictory = lipgloss.NewStyle().Bold(true).Foreground(cGood).Render("VICTORY")
	BadgeDefeat  = lipgloss.NewStyle().Bold(true).Foreground(cBad).Render("DEFEAT")
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// Bar renders a [####----] resource bar with the cur/max readout.
func Bar(cur, max, width int) string {
	if max <= 0 {
		max = 1
	}
	if width <= 3 {
		width = 3
	}
	if cur < 0 {
		cur = 0
	}
	if cur > max {
		cur = max
	}
	filled := cur * width / max
	return fmt.Sprintf("[%s%s] %d/%d", strings.Repeat("#", filled), strings.Repeat("-", width-filled), cur, max)
}

// HPBar colors the bar by remaining fraction.
func HPBar(cur, max, width int) string {
	bar := Bar(cur, max, width)
	switch {
	case max > 0 && cur*4 <= max:
		return Bad.Render(bar)
	case max > 0 && cur*2 <= max:
		return Warn.Render(bar)
	default:
		return Good.Render(bar)
	}
}

// RarityText colors an item or skill rarity tag.
func RarityText(rarity string) string {
	switch strings.ToLower(strings.TrimSpace(rarity)) {
	case "epic":
		return Gold.Render("epic")
	case "rare":
		return H2.Render("rare")
	default:
		return Muted.Render(rarity)
	}
}
