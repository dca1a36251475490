package pageview

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alexisbeaulieu97/pagekit/internal/domain/page"
)

func TestViewShowsThemeControlLabel(t *testing.T) {
	m, _ := newTestModel(t, nil)
	assert.Contains(t, m.View(), "🌙 Dark Mode")
	assert.Contains(t, m.View(), "theme: light")

	m = press(t, m, "t")
	assert.Contains(t, m.View(), "☀️ Light Mode")
	assert.Contains(t, m.View(), "theme: dark")
}

func TestViewShowsCounterAndOpenAnswerOnly(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m = press(t, m, "+", "+", "tab", "tab", "down", "enter")

	view := m.View()
	assert.Contains(t, view, "2")
	assert.Contains(t, view, "What is this?")
	assert.Contains(t, view, "Is it persistent?")
	assert.Contains(t, view, "Only the theme.")
	assert.NotContains(t, view, "A page.")
}

func TestViewShowsFieldErrorsAndSuccess(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m = press(t, m, "shift+tab", "enter")

	view := m.View()
	assert.Contains(t, view, "Name is required.")
	assert.Contains(t, view, "Please confirm your password.")

	for _, field := range page.Fields {
		value := map[page.Field]string{
			page.FieldName:            "Ada",
			page.FieldEmail:           "ada@example.com",
			page.FieldPassword:        "longenough",
			page.FieldConfirmPassword: "longenough",
		}[field]
		m.focusField(field)
		m = typeText(t, m, value)
	}
	m = press(t, m, "enter")

	view = m.View()
	assert.Contains(t, view, "Thank you, Ada!")
	assert.NotContains(t, view, "Name is required.")
}

func TestViewShowsErrorBanner(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m.showError = true
	m.errorMsg = "Theme not saved: disk full"
	assert.Contains(t, m.View(), "Theme not saved: disk full")
}

func TestStylesForUnknownThemeFallsBackToLight(t *testing.T) {
	assert.Equal(t, stylesFor(page.ThemeLight).title.GetForeground(), stylesFor(page.Theme("sepia")).title.GetForeground())
	assert.NotEqual(t, stylesFor(page.ThemeLight).title.GetForeground(), stylesFor(page.ThemeDark).title.GetForeground())
}
