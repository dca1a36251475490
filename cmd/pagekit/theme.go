package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/pagekit/internal/domain/page"
)

func newThemeCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show the saved theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.theme")
			session, err := newCommandSession(ctx, app, logger)
			if err != nil {
				return newCommandError("show theme", "building the page session", err, "Check your preferences file.")
			}
			printTheme(cmd, session.Theme)
			return nil
		},
	}

	cmd.AddCommand(newThemeToggleCmd(app))

	return cmd
}

func newThemeToggleCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle",
		Short: "Switch between the light and dark theme and save the choice",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.theme.toggle")
			session, err := newCommandSession(ctx, app, logger)
			if err != nil {
				return newCommandError("toggle theme", "building the page session", err, "Check your preferences file.")
			}

			if _, err := session.ToggleTheme(ctx); err != nil {
				return newCommandError("toggle theme", "saving the preference", err, fmt.Sprintf("Check that %s is writable.", app.Settings.PreferencesPath))
			}
			printTheme(cmd, session.Theme)
			return nil
		},
	}
}

func printTheme(cmd *cobra.Command, pref *page.ThemePreference) {
	fmt.Fprintf(cmd.OutOrStdout(), "Theme:   %s\n", pref.Theme())
	fmt.Fprintf(cmd.OutOrStdout(), "Control: %s\n", pref.Label())
}
