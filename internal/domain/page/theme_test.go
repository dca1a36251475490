package page

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/pagekit/internal/infrastructure/preferences"
	pkerrors "github.com/alexisbeaulieu97/pagekit/pkg/errors"
)

type failingReadStore struct{}

func (failingReadStore) Get(key string) (string, bool, error) {
	return "", false, pkerrors.NewStoreError("read", key, errors.New("locked"))
}

func (failingReadStore) Set(string, string) error { return nil }

func TestThemePreferenceDefaults(t *testing.T) {
	tests := []struct {
		name string
		seed map[string]string
		want Theme
	}{
		{name: "absent", seed: nil, want: ThemeLight},
		{name: "light", seed: map[string]string{ThemeKey: "light"}, want: ThemeLight},
		{name: "dark", seed: map[string]string{ThemeKey: "dark"}, want: ThemeDark},
		{name: "unrecognised", seed: map[string]string{ThemeKey: "sepia"}, want: ThemeLight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pref, err := NewThemePreference(preferences.NewMemoryStore(tt.seed))
			require.NoError(t, err)
			assert.Equal(t, tt.want, pref.Theme())
			assert.Equal(t, string(tt.want), pref.Class())
		})
	}
}

func TestThemePreferenceLabelNamesNextAction(t *testing.T) {
	pref, err := NewThemePreference(preferences.NewMemoryStore(nil))
	require.NoError(t, err)
	assert.Equal(t, "🌙 Dark Mode", pref.Label())

	_, err = pref.Toggle()
	require.NoError(t, err)
	assert.Equal(t, "☀️ Light Mode", pref.Label())
	assert.Equal(t, "dark", pref.Class())
}

func TestThemeToggleParity(t *testing.T) {
	store := preferences.NewMemoryStore(nil)
	pref, err := NewThemePreference(store)
	require.NoError(t, err)

	for n := 1; n <= 7; n++ {
		theme, err := pref.Toggle()
		require.NoError(t, err)

		want := ThemeLight
		if n%2 == 1 {
			want = ThemeDark
		}
		assert.Equal(t, want, theme, "after %d toggles", n)

		stored, ok, err := store.Get(ThemeKey)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, string(theme), stored, "stored value must match active theme")
	}
	assert.Equal(t, 7, store.Writes())
}

func TestThemeToggleKeepsFlipWhenPersistFails(t *testing.T) {
	store := preferences.NewMemoryStore(nil)
	pref, err := NewThemePreference(store)
	require.NoError(t, err)

	store.FailWrites(errors.New("quota"))
	theme, err := pref.Toggle()
	require.Error(t, err)

	var storeErr *pkerrors.StoreError
	assert.ErrorAs(t, err, &storeErr)
	assert.Equal(t, ThemeDark, theme)
	assert.Equal(t, ThemeDark, pref.Theme())
}

func TestThemePreferenceReadFailureFallsBackToLight(t *testing.T) {
	pref, err := NewThemePreference(failingReadStore{})
	require.Error(t, err)
	require.NotNil(t, pref)
	assert.Equal(t, ThemeLight, pref.Theme())
}

func TestParseTheme(t *testing.T) {
	theme, ok := ParseTheme("dark")
	assert.True(t, ok)
	assert.Equal(t, ThemeDark, theme)

	theme, ok = ParseTheme("DARK")
	assert.False(t, ok)
	assert.Equal(t, ThemeLight, theme)

	assert.Equal(t, ThemeLight, ThemeDark.Next())
	assert.Equal(t, ThemeDark, ThemeLight.Next())
}
