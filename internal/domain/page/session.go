package page

import (
	"context"
	"time"

	"github.com/alexisbeaulieu97/pagekit/internal/ports"
)

// Options configures a page session.
type Options struct {
	Store        ports.PreferenceStore
	Scheduler    ports.Scheduler
	Logger       ports.Logger
	FAQ          []FAQEntry
	PulseDelay   time.Duration
	SuccessDelay time.Duration
}

// Session is one page load: it owns the four independent page components,
// all built once when the page becomes ready.
type Session struct {
	ID      string
	Theme   *ThemePreference
	Counter *Counter
	FAQ     *Accordion
	Form    *Form

	logger ports.Logger
}

// NewSession builds every component. An unreadable theme preference is logged
// and the session starts in the light theme.
func NewSession(ctx context.Context, opts Options) (*Session, error) {
	if opts.Store == nil {
		return nil, ErrNoPreferenceStore
	}
	if opts.Scheduler == nil {
		return nil, ErrNoScheduler
	}

	id := ports.GenerateCorrelationID()
	logger := opts.Logger
	if logger == nil {
		logger = discardLogger{}
	}
	logger = logger.With("layer", "domain", "component", "page", "session_id", id)

	theme, err := NewThemePreference(opts.Store)
	if err != nil {
		logger.Warn(ctx, "theme preference unavailable, using light", "error", err)
	}

	s := &Session{
		ID:      id,
		Theme:   theme,
		Counter: NewCounter(opts.Scheduler, opts.PulseDelay),
		FAQ:     NewAccordion(opts.FAQ),
		Form:    NewForm(opts.Scheduler, opts.SuccessDelay),
		logger:  logger,
	}

	logger.Info(ctx, "page session ready", "theme", theme.Theme().String(), "faq_items", s.FAQ.Len())
	return s, nil
}

// ToggleTheme flips the theme and logs the outcome.
func (s *Session) ToggleTheme(ctx context.Context) (Theme, error) {
	theme, err := s.Theme.Toggle()
	if err != nil {
		s.logger.Error(ctx, "theme not persisted", "theme", theme.String(), "error", err)
		return theme, err
	}
	s.logger.Debug(ctx, "theme toggled", "theme", theme.String())
	return theme, nil
}

// Submit submits the form and logs which fields blocked it.
func (s *Session) Submit(ctx context.Context) SubmitResult {
	result := s.Form.Submit()
	if result.Submitted {
		s.logger.Info(ctx, "form submitted")
		return result
	}

	names := make([]string, len(result.Invalid))
	for i, field := range result.Invalid {
		names[i] = field.String()
	}
	s.logger.Debug(ctx, "form submission blocked", "invalid_fields", names)
	return result
}

type discardLogger struct{}

func (discardLogger) Debug(context.Context, string, ...interface{}) {}
func (discardLogger) Info(context.Context, string, ...interface{})  {}
func (discardLogger) Warn(context.Context, string, ...interface{})  {}
func (discardLogger) Error(context.Context, string, ...interface{}) {}
func (d discardLogger) With(...interface{}) ports.Logger             { return d }
