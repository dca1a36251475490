package page

import (
	"fmt"

	"github.com/alexisbeaulieu97/pagekit/internal/ports"
)

// Theme is the page's visual theme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ThemeKey is the preference key the theme is persisted under.
const ThemeKey = "theme"

// Toggle control labels. The label names the action the control performs next.
const (
	LabelSwitchToLight = "☀️ Light Mode"
	LabelSwitchToDark  = "🌙 Dark Mode"
)

// ParseTheme converts a stored value into a Theme.
func ParseTheme(value string) (Theme, bool) {
	switch Theme(value) {
	case ThemeLight:
		return ThemeLight, true
	case ThemeDark:
		return ThemeDark, true
	default:
		return ThemeLight, false
	}
}

// Next returns the theme a toggle switches to.
func (t Theme) Next() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

func (t Theme) String() string {
	return string(t)
}

// ThemePreference owns the active theme and keeps the preference store in sync with it.
type ThemePreference struct {
	store ports.PreferenceStore
	theme Theme
}

// NewThemePreference reads the persisted theme once. Missing or unrecognised
// values resolve to light. The returned preference is always usable; a non-nil
// error reports that the store could not be read.
func NewThemePreference(store ports.PreferenceStore) (*ThemePreference, error) {
	pref := &ThemePreference{store: store, theme: ThemeLight}

	value, ok, err := store.Get(ThemeKey)
	if err != nil {
		return pref, fmt.Errorf("read theme preference: %w", err)
	}
	if ok {
		pref.theme, _ = ParseTheme(value)
	}

	return pref, nil
}

// Theme returns the active theme.
func (p *ThemePreference) Theme() Theme {
	return p.theme
}

// Class returns the visual class applied for the active theme. Exactly one
// class is ever applied.
func (p *ThemePreference) Class() string {
	return string(p.theme)
}

// Label returns the toggle control's text for the active theme.
func (p *ThemePreference) Label() string {
	if p.theme == ThemeDark {
		return LabelSwitchToLight
	}
	return LabelSwitchToDark
}

// Toggle flips the theme and persists it synchronously. A persistence failure
// is returned but the flip stands.
func (p *ThemePreference) Toggle() (Theme, error) {
	p.theme = p.theme.Next()

	if err := p.store.Set(ThemeKey, string(p.theme)); err != nil {
		return p.theme, fmt.Errorf("persist theme preference: %w", err)
	}

	return p.theme, nil
}
