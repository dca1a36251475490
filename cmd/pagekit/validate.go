package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/pagekit/internal/domain/page"
)

type validateOptions struct {
	password string
}

func newValidateCmd(app *AppContext) *cobra.Command {
	opts := &validateOptions{}

	cmd := &cobra.Command{
		Use:   "validate <field> <value>",
		Short: "Check a single form field",
		Long: `Check one form field the way the page does while typing.

Fields: name, email, password, confirm-password. Use --password to supply the
password that confirm-password is compared against.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, app, args[0], args[1], opts)
		},
	}

	cmd.Flags().StringVar(&opts.password, "password", "", "Password to compare confirm-password against")

	return cmd
}

func runValidate(cmd *cobra.Command, app *AppContext, name, value string, opts *validateOptions) error {
	ctx, logger := app.CommandContext(cmd, "command.validate")

	field, err := page.ParseField(name)
	if err != nil {
		return newCommandError("validate", fmt.Sprintf("reading field %q", name), err, "Use one of: name, email, password, confirm-password.")
	}

	session, err := newCommandSession(ctx, app, logger)
	if err != nil {
		return newCommandError("validate", "building the page session", err, "Check your preferences file.")
	}

	if err := session.Form.SetValue(page.FieldPassword, opts.password); err != nil {
		return newCommandError("validate", "filling the form", err, "Report this as a bug.")
	}

	valid, err := session.Form.Input(field, value)
	if err != nil {
		return newCommandError("validate", "checking the field", err, "Report this as a bug.")
	}

	state := session.Form.State(field)
	if valid {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ %s: %s\n", field.Label(), state.Status)
		return nil
	}

	printFieldErrors(cmd.OutOrStdout(), session.Form, []page.Field{field})
	return newCommandError("validate", fmt.Sprintf("checking %s", field.Label()), errFormInvalid, "Correct the value and try again.")
}
