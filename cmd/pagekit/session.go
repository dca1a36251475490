package main

import (
	"context"

	"github.com/alexisbeaulieu97/pagekit/internal/domain/page"
	"github.com/alexisbeaulieu97/pagekit/internal/infrastructure/clock"
	"github.com/alexisbeaulieu97/pagekit/internal/ports"
)

// newCommandSession builds a page session for a one-shot command. Time never
// advances in a command, so deferred pulse and hide actions stay queued on the
// virtual clock and are dropped when the command exits.
func newCommandSession(ctx context.Context, app *AppContext, logger ports.Logger) (*page.Session, error) {
	return page.NewSession(ctx, page.Options{
		Store:        app.Store,
		Scheduler:    clock.NewVirtual(),
		Logger:       logger,
		FAQ:          app.Settings.PageFAQ(),
		PulseDelay:   app.Settings.PulseDelay,
		SuccessDelay: app.Settings.SuccessDisplay,
	})
}
