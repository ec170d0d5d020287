package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/marisvale/renterm/internal/history"
	"github.com/marisvale/renterm/internal/notify"
	"github.com/marisvale/renterm/internal/rentals"
	"github.com/marisvale/renterm/internal/shared"
	"github.com/marisvale/renterm/internal/ui"
	"github.com/urfave/cli/v3"
)

// TUI launches the interactive terminal UI for browsing and renting films.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	if r.catalog == nil {
		return fmt.Errorf("%w: catalog service not initialized", shared.ErrServiceUnavailable)
	}

	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger(r.config.Log.Path)
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	r.SetLogger(fileLogger)

	var journal *history.Journal
	if !cmd.Bool("no-journal") {
		if journal, err = r.openJournal(); err != nil {
			r.logger.Warn("action journal unavailable", "error", err)
			journal = nil
		} else {
			defer journal.Close()
		}
	}

	queue := notify.NewQueue()
	engine := rentals.NewEngine(r.catalog)
	model := ui.NewModel(ctx, r.catalog, engine, queue, journal, r.logger, r.config.Catalog.PageSize)

	p := tea.NewProgram(model)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
