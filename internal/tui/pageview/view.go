package pageview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/pagekit/internal/domain/page"
)

// View renders the current model state
func (m Model) View() string {
	st := stylesFor(m.session.Theme.Theme())

	var content strings.Builder

	content.WriteString(m.renderHeader(st))
	content.WriteString("\n\n")

	if m.showError {
		content.WriteString(st.errorBanner.Render(m.errorMsg))
		content.WriteString("\n")
	}

	content.WriteString(m.renderSection(st, AreaCounter, "Counter", m.renderCounter(st)))
	content.WriteString("\n")
	content.WriteString(m.renderSection(st, AreaFAQ, "FAQ", m.renderFAQ(st)))
	content.WriteString("\n")
	content.WriteString(m.renderSection(st, AreaForm, "Contact", m.renderForm(st)))
	content.WriteString("\n")
	content.WriteString(m.renderFooter(st))

	return st.page.Width(m.width).Render(content.String())
}

// renderHeader renders the title and the theme toggle control
func (m Model) renderHeader(st styles) string {
	title := st.title.Render("✨ pagekit")

	button := st.button.Render(m.session.Theme.Label())
	if m.area == AreaTheme {
		button = st.cursor.Render("› ") + button
	} else {
		button = "  " + button
	}

	theme := st.muted.Render(fmt.Sprintf("theme: %s", m.session.Theme.Class()))
	return lipgloss.JoinHorizontal(lipgloss.Center, title, "   ", button, "   ", theme)
}

func (m Model) renderSection(st styles, area Area, title, body string) string {
	style := st.section
	if m.area == area {
		style = st.activeSection
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, st.sectionTitle.Render(title), body))
}

// renderCounter renders the counter value, enlarged while a pulse is active
func (m Model) renderCounter(st styles) string {
	counter := m.session.Counter
	value := st.counter.Render(counter.Display())
	if counter.Pulsing() {
		value = st.counterPulse.Render(counter.Display())
	}
	controls := st.muted.Render("[+] count   [r] reset")
	return lipgloss.JoinHorizontal(lipgloss.Center, value, "  ", controls)
}

// renderFAQ renders every question and the open answer
func (m Model) renderFAQ(st styles) string {
	items := m.session.FAQ.Items()
	if len(items) == 0 {
		return st.muted.Render("No questions yet.")
	}

	lines := make([]string, 0, len(items)*2)
	for i, item := range items {
		marker := "▸"
		if item.Open {
			marker = "▾"
		}

		cursor := "  "
		if m.area == AreaFAQ && i == m.faqCursor {
			cursor = st.cursor.Render("› ")
		}

		lines = append(lines, cursor+st.question.Render(fmt.Sprintf("%s %s", marker, item.Question)))
		if item.Open {
			lines = append(lines, st.answer.Render(item.Answer))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// renderForm renders each field with its border and error slot, plus the success message
func (m Model) renderForm(st styles) string {
	form := m.session.Form
	rows := make([]string, 0, len(page.Fields)*2+1)

	for i, field := range page.Fields {
		state := form.State(field)
		label := field.Label()
		if m.area == AreaForm && field == m.focus {
			label = st.cursor.Render("› " + label)
		} else {
			label = "  " + label
		}

		input := st.input.
			BorderForeground(lipgloss.Color(state.BorderColor())).
			Render(m.inputs[i].View())

		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Center, st.label.Render(label), input))
		if state.Message != "" {
			rows = append(rows, st.fieldError.Render(state.Message))
		}
	}

	if msg, visible := form.SuccessMessage(); visible {
		rows = append(rows, st.success.Render(msg))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderFooter(st styles) string {
	if m.area == AreaForm {
		return st.muted.Render(m.help.View(m.formKeys))
	}
	return st.muted.Render(m.help.View(m.pageKeys))
}
