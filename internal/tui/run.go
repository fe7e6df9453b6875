package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/onemoresn/FightersQuest/internal/engine"
)

// RunBattle drives the started battle session to its end.
func RunBattle(ctx context.Context, svc *engine.Service, out io.Writer) error {
	m := newBattleModel(ctx, svc)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}
