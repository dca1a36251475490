package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	verbose    bool
}

// newRootCmd builds the command tree. The caller owns app and must Close it
// after Execute returns, including when a command fails.
func newRootCmd(app *AppContext) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "pagekit",
		Short:         "pagekit is an interactive terminal page with a theme toggle, counter, FAQ and contact form",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			loaded, err := newAppContext(cmd.Context(), flags, cmd.ErrOrStderr(), cmd == cmd.Root())
			if err != nil {
				return err
			}
			*app = *loaded
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// If no subcommand is provided, launch the page
			if len(args) == 0 {
				return runPageCommand(cmd, app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a configuration file")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newThemeCmd(app))
	cmd.AddCommand(newSubmitCmd(app))
	cmd.AddCommand(newValidateCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
