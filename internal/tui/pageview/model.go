package pageview

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/pagekit/internal/domain/page"
	"github.com/alexisbeaulieu97/pagekit/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/pagekit/internal/ports"
)

// Model is the Bubble Tea model for the interactive page. It renders the page
// session's state and turns key presses into session operations.
type Model struct {
	ctx     context.Context
	session *page.Session
	queue   *deferredQueue
	logger  ports.Logger

	// UI state
	area      Area
	faqCursor int
	focus     page.Field
	inputs    []textinput.Model

	// Footer
	help      help.Model
	pageKeys  pageKeyMap
	formKeys  formKeyMap
	showError bool
	errorMsg  string
	errorSeq  int

	// Dimensions
	width  int
	height int
}

// NewModel builds a page session on top of the supplied options and wraps it
// in a model. The session's scheduler is owned by the model.
func NewModel(ctx context.Context, opts page.Options) (Model, error) {
	queue := newDeferredQueue()
	opts.Scheduler = queue

	session, err := page.NewSession(ctx, opts)
	if err != nil {
		return Model{}, fmt.Errorf("start page session: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNoOpLogger()
	}

	m := Model{
		ctx:      ports.WithCorrelationID(ctx, session.ID),
		session:  session,
		queue:    queue,
		logger:   logger.With("layer", "application", "component", "tui"),
		area:     AreaTheme,
		inputs:   newInputs(),
		help:     help.New(),
		pageKeys: defaultPageKeys(),
		formKeys: defaultFormKeys(),
		width:    80,
		height:   24,
	}

	return m, nil
}

func newInputs() []textinput.Model {
	placeholders := map[page.Field]string{
		page.FieldName:            "Your name",
		page.FieldEmail:           "you@example.com",
		page.FieldPassword:        "At least 8 characters",
		page.FieldConfirmPassword: "Repeat your password",
	}

	inputs := make([]textinput.Model, len(page.Fields))
	for i, field := range page.Fields {
		in := textinput.New()
		in.Prompt = ""
		in.Placeholder = placeholders[field]
		in.CharLimit = 128
		if field == page.FieldPassword || field == page.FieldConfirmPassword {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '•'
		}
		inputs[i] = in
	}
	return inputs
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Session exposes the underlying page session.
func (m Model) Session() *page.Session {
	return m.session
}

// Area returns the section that currently receives keys.
func (m Model) Area() Area {
	return m.area
}

// FocusedField returns the form field being edited.
func (m Model) FocusedField() page.Field {
	return m.focus
}

// FAQCursor returns the highlighted FAQ question.
func (m Model) FAQCursor() int {
	return m.faqCursor
}

func (m *Model) setArea(area Area) {
	if m.area == AreaForm && area != AreaForm {
		m.inputs[m.focus].Blur()
	}
	m.area = area
	if area == AreaForm {
		m.inputs[m.focus].Focus()
	}
}

func (m *Model) nextArea(step int) {
	next := (int(m.area) + step + areaCount) % areaCount
	m.setArea(Area(next))
}

func (m *Model) focusField(field page.Field) {
	m.inputs[m.focus].Blur()
	m.focus = field
	m.inputs[m.focus].Focus()
}

func (m *Model) moveFAQCursor(step int) {
	n := m.session.FAQ.Len()
	if n == 0 {
		return
	}
	m.faqCursor = (m.faqCursor + step + n) % n
}
