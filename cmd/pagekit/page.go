package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/pagekit/internal/domain/page"
	"github.com/alexisbeaulieu97/pagekit/internal/ports"
	"github.com/alexisbeaulieu97/pagekit/internal/tui/pageview"
)

var errNoTerminal = errors.New("standard input and output must be a terminal")

func runPageCommand(cmd *cobra.Command, app *AppContext) error {
	ctx, logger := app.CommandContext(cmd, "command.page")

	if !isTerminal(cmd.InOrStdin()) || !isTerminal(cmd.OutOrStdout()) {
		logger.Warn(ctx, "refusing to start page without a terminal")
		return newCommandError("open the page", "checking the terminal", errNoTerminal, "Run pagekit from an interactive terminal, or use 'pagekit theme' and 'pagekit submit'.")
	}

	logger.Info(ctx, "launching page")
	err := runPage(ctx, app, logger)
	if err != nil {
		logger.Error(ctx, "page command failed", "error", err)
	}
	return err
}

func runPage(ctx context.Context, app *AppContext, logger ports.Logger) error {
	m, err := pageview.NewModel(ctx, page.Options{
		Store:        app.Store,
		Logger:       logger,
		FAQ:          app.Settings.PageFAQ(),
		PulseDelay:   app.Settings.PulseDelay,
		SuccessDelay: app.Settings.SuccessDisplay,
	})
	if err != nil {
		return fmt.Errorf("failed to build page: %w", err)
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run page: %w", err)
	}

	logger.Info(ctx, "page closed")
	return nil
}

func isTerminal(stream any) bool {
	if file, ok := stream.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
