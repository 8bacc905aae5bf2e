package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/habitleaf/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	led, settings, err := ctx.loadLedger()
	if err != nil {
		return err
	}

	save := func() error { return ctx.saveLedger(led) }

	p := tea.NewProgram(tui.NewModel(led, settings, save), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
