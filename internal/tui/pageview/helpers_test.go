package pageview

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/pagekit/internal/domain/page"
	"github.com/alexisbeaulieu97/pagekit/internal/infrastructure/preferences"
)

func testFAQ() []page.FAQEntry {
	return []page.FAQEntry{
		{Question: "What is this?", Answer: "A page."},
		{Question: "Is it persistent?", Answer: "Only the theme."},
		{Question: "Can two open?", Answer: "No."},
	}
}

func newTestModel(t *testing.T, seed map[string]string) (Model, *preferences.MemoryStore) {
	t.Helper()

	store := preferences.NewMemoryStore(seed)
	m, err := NewModel(context.Background(), page.Options{Store: store, FAQ: testFAQ()})
	require.NoError(t, err)
	return m, store
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()

	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()

	for _, k := range keys {
		m, _ = update(t, m, keyMsg(k))
	}
	return m
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()

	for _, r := range text {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}
