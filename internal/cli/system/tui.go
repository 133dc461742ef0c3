package system

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/habitus/internal/cli"
	"github.com/julianstephens/habitus/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	ctx.PerformAutomaticBackup()

	loader, err := ctx.Loader()
	if err != nil {
		return err
	}
	settings, err := ctx.Settings()
	if err != nil {
		return err
	}

	p := tea.NewProgram(tui.NewModel(ctx.Store, loader, settings), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
