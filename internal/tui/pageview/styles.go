package pageview

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/pagekit/internal/domain/page"
)

// palette is the set of colours for one theme.
type palette struct {
	foreground lipgloss.Color
	background lipgloss.Color
	accent     lipgloss.Color
	muted      lipgloss.Color
	success    lipgloss.Color
	surface    lipgloss.Color
}

var palettes = map[page.Theme]palette{
	page.ThemeLight: {
		foreground: lipgloss.Color("#1f2933"),
		background: lipgloss.Color("#f5f7fa"),
		accent:     lipgloss.Color("#6c5ce7"),
		muted:      lipgloss.Color("#7b8794"),
		success:    lipgloss.Color("#2e7d32"),
		surface:    lipgloss.Color("#e4e7eb"),
	},
	page.ThemeDark: {
		foreground: lipgloss.Color("#e4e7eb"),
		background: lipgloss.Color("#1f2933"),
		accent:     lipgloss.Color("#a29bfe"),
		muted:      lipgloss.Color("#9aa5b1"),
		success:    lipgloss.Color("#81c784"),
		surface:    lipgloss.Color("#323f4b"),
	},
}

// styles are derived from the active theme on every render.
type styles struct {
	page          lipgloss.Style
	title         lipgloss.Style
	button        lipgloss.Style
	section       lipgloss.Style
	activeSection lipgloss.Style
	sectionTitle  lipgloss.Style
	counter       lipgloss.Style
	counterPulse  lipgloss.Style
	question      lipgloss.Style
	cursor        lipgloss.Style
	answer        lipgloss.Style
	label         lipgloss.Style
	input         lipgloss.Style
	fieldError    lipgloss.Style
	success       lipgloss.Style
	errorBanner   lipgloss.Style
	muted         lipgloss.Style
}

func stylesFor(theme page.Theme) styles {
	p, ok := palettes[theme]
	if !ok {
		p = palettes[page.ThemeLight]
	}

	section := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.muted).
		Padding(0, 1).
		MarginBottom(1)

	counter := lipgloss.NewStyle().
		Foreground(p.accent).
		Bold(true).
		Padding(0, 2)

	return styles{
		page: lipgloss.NewStyle().
			Foreground(p.foreground).
			Background(p.background).
			Padding(1, 2),
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.accent),
		button: lipgloss.NewStyle().
			Foreground(p.foreground).
			Background(p.surface).
			Padding(0, 1),
		section:       section,
		activeSection: section.BorderForeground(p.accent),
		sectionTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.accent),
		counter: counter,
		// The pulse enlarges the value the way a 1.3 scale would on a page.
		counterPulse: counter.
			Padding(1, 4).
			Underline(true).
			Background(p.surface),
		question: lipgloss.NewStyle().
			Foreground(p.foreground).
			Bold(true),
		cursor: lipgloss.NewStyle().
			Foreground(p.accent).
			Bold(true),
		answer: lipgloss.NewStyle().
			Foreground(p.muted).
			PaddingLeft(4),
		label: lipgloss.NewStyle().
			Foreground(p.foreground).
			Width(18),
		input: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			Padding(0, 1).
			Width(34),
		fieldError: lipgloss.NewStyle().
			Foreground(lipgloss.Color(page.BorderError)).
			PaddingLeft(18),
		success: lipgloss.NewStyle().
			Foreground(p.success).
			Bold(true).
			MarginTop(1),
		errorBanner: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(lipgloss.Color(page.BorderError)).
			Bold(true).
			Padding(0, 2).
			MarginBottom(1),
		muted: lipgloss.NewStyle().
			Foreground(p.muted),
	}
}
