package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/pagekit/internal/domain/page"
)

var errFormInvalid = errors.New("form has invalid fields")

type submitOptions struct {
	name            string
	email           string
	password        string
	confirmPassword string
}

func (o submitOptions) values() map[page.Field]string {
	return map[page.Field]string{
		page.FieldName:            o.name,
		page.FieldEmail:           o.email,
		page.FieldPassword:        o.password,
		page.FieldConfirmPassword: o.confirmPassword,
	}
}

func newSubmitCmd(app *AppContext) *cobra.Command {
	opts := &submitOptions{}

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit the contact form without opening the page",
		Long: `Submit the contact form non-interactively. Every field is validated the
same way the page validates it; the command fails when any field is invalid.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSubmit(cmd, app, opts)
		},
	}

	cmd.Flags().StringVar(&opts.name, "name", "", "Name")
	cmd.Flags().StringVar(&opts.email, "email", "", "Email address")
	cmd.Flags().StringVar(&opts.password, "password", "", "Password")
	cmd.Flags().StringVar(&opts.confirmPassword, "confirm-password", "", "Password confirmation")

	return cmd
}

func runSubmit(cmd *cobra.Command, app *AppContext, opts *submitOptions) error {
	ctx, logger := app.CommandContext(cmd, "command.submit")

	session, err := newCommandSession(ctx, app, logger)
	if err != nil {
		return newCommandError("submit", "building the page session", err, "Check your preferences file.")
	}

	values := opts.values()
	for _, field := range page.Fields {
		if err := session.Form.SetValue(field, values[field]); err != nil {
			return newCommandError("submit", "filling the form", err, "Report this as a bug.")
		}
	}

	result := session.Submit(ctx)
	if result.Submitted {
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	}

	printFieldErrors(cmd.OutOrStdout(), session.Form, result.Invalid)
	return newCommandError("submit", "validating the form", errFormInvalid, "Correct the fields listed above and submit again.")
}

func printFieldErrors(w io.Writer, form *page.Form, fields []page.Field) {
	for _, field := range fields {
		state := form.State(field)
		fmt.Fprintf(w, "✗ %s: %s\n", field.Label(), state.Message)
	}
}
