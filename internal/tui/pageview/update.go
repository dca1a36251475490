package pageview

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/pagekit/internal/domain/page"
)

// errorDisplay is how long an error banner stays up unless dismissed.
const errorDisplay = 5 * time.Second

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case deferredMsg:
		m.queue.run(msg.id)

	case ClearErrorMsg:
		if msg.seq == m.errorSeq {
			m.showError = false
			m.errorMsg = ""
		}

	case tea.KeyMsg:
		m, cmd = m.handleKeyPress(msg)

	default:
		if m.area == AreaForm {
			m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		}
	}

	return m, m.withDeferred(cmd)
}

// withDeferred attaches tick commands for any page actions scheduled while handling a message.
func (m Model) withDeferred(cmd tea.Cmd) tea.Cmd {
	cmds := m.queue.commands()
	if len(cmds) == 0 {
		return cmd
	}
	return tea.Batch(append(cmds, cmd)...)
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	if m.area == AreaForm {
		return m.handleFormKeys(msg)
	}
	return m.handlePageKeys(msg)
}

// handlePageKeys handles keys outside the form
func (m Model) handlePageKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.pageKeys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.pageKeys.ClearError):
		m.showError = false
		m.errorMsg = ""

	case key.Matches(msg, m.pageKeys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.pageKeys.NextArea):
		m.nextArea(1)

	case key.Matches(msg, m.pageKeys.PrevArea):
		m.nextArea(-1)

	case key.Matches(msg, m.pageKeys.ToggleTheme):
		cmd := m.toggleTheme()
		return m, cmd

	case key.Matches(msg, m.pageKeys.Increment):
		m.session.Counter.Increment()

	case key.Matches(msg, m.pageKeys.Reset):
		m.session.Counter.Reset()

	case key.Matches(msg, m.pageKeys.Up):
		if m.area == AreaFAQ {
			m.moveFAQCursor(-1)
		}

	case key.Matches(msg, m.pageKeys.Down):
		if m.area == AreaFAQ {
			m.moveFAQCursor(1)
		}

	case key.Matches(msg, m.pageKeys.Activate):
		cmd := m.activate()
		return m, cmd

	default:
		// Direct question selection with number keys
		if m.area == AreaFAQ && msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
			r := msg.Runes[0]
			if r >= '1' && r <= '9' {
				index := int(r - '1')
				if m.session.FAQ.Toggle(index) {
					m.faqCursor = index
				}
			}
		}
	}

	return m, nil
}

func (m *Model) activate() tea.Cmd {
	switch m.area {
	case AreaTheme:
		return m.toggleTheme()
	case AreaCounter:
		m.session.Counter.Increment()
	case AreaFAQ:
		m.session.FAQ.Toggle(m.faqCursor)
	}
	return nil
}

func (m *Model) toggleTheme() tea.Cmd {
	if _, err := m.session.ToggleTheme(m.ctx); err != nil {
		return m.showErrorBanner(fmt.Sprintf("Theme not saved: %s", err.Error()))
	}
	return nil
}

// showErrorBanner displays msg and schedules its dismissal.
func (m *Model) showErrorBanner(msg string) tea.Cmd {
	m.errorSeq++
	m.showError = true
	m.errorMsg = msg

	seq := m.errorSeq
	return tea.Tick(errorDisplay, func(time.Time) tea.Msg {
		return ClearErrorMsg{seq: seq}
	})
}

// handleFormKeys handles keys while a form field has focus
func (m Model) handleFormKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.formKeys.Leave):
		m.setArea(AreaFAQ)
		return m, nil

	case key.Matches(msg, m.formKeys.NextField):
		m.focusField(page.Field((int(m.focus) + 1) % len(page.Fields)))
		return m, nil

	case key.Matches(msg, m.formKeys.PrevField):
		m.focusField(page.Field((int(m.focus) - 1 + len(page.Fields)) % len(page.Fields)))
		return m, nil

	case key.Matches(msg, m.formKeys.Submit):
		m.submit()
		return m, nil
	}

	before := m.inputs[m.focus].Value()
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)

	if after := m.inputs[m.focus].Value(); after != before {
		if _, err := m.session.Form.Input(m.focus, after); err != nil {
			m.logger.Error(m.ctx, "form input rejected", "field", m.focus.String(), "error", err)
		}
	}

	return m, cmd
}

func (m *Model) submit() {
	result := m.session.Submit(m.ctx)
	if !result.Submitted {
		if len(result.Invalid) > 0 {
			m.focusField(result.Invalid[0])
		}
		return
	}
	for i := range m.inputs {
		m.inputs[i].SetValue("")
	}
}
