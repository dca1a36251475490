package preferences

import (
	stdErrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/pagekit/internal/ports"
	pkerrors "github.com/alexisbeaulieu97/pagekit/pkg/errors"
)

var (
	_ ports.PreferenceStore = (*FileStore)(nil)
	_ ports.PreferenceStore = (*MemoryStore)(nil)
)

func TestFileStoreMissingFileIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "preferences.yaml")

	store, err := NewFileStore(path)
	require.NoError(t, err)

	_, ok, err := store.Get("theme")
	require.NoError(t, err)
	assert.False(t, ok)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "file should only be created on write")
}

func TestFileStoreSetPersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "preferences.yaml")

	store, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Set("theme", "dark"))

	reopened, err := NewFileStore(path)
	require.NoError(t, err)

	value, ok, err := reopened.Get("theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", value)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var file File
	require.NoError(t, yaml.Unmarshal(data, &file))
	assert.Equal(t, "1", file.Version)
	assert.Equal(t, map[string]string{"theme": "dark"}, file.Values)

	_, statErr := os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(statErr), "temporary file should be renamed away")
}

func TestFileStoreRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.yaml")
	require.NoError(t, os.WriteFile(path, []byte("values: [unterminated"), 0o644))

	_, err := NewFileStore(path)
	require.Error(t, err)

	var storeErr *pkerrors.StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, "read", storeErr.Op)

	var parseErr *pkerrors.ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestFileStoreWriteFailureKeepsPreviousValue(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "sub")

	store, err := NewFileStore(filepath.Join(dir, "preferences.yaml"))
	require.NoError(t, err)

	// The parent directory is now a regular file, so writes cannot succeed.
	require.NoError(t, os.WriteFile(dir, []byte("x"), 0o644))

	err = store.Set("theme", "dark")
	var storeErr *pkerrors.StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, "write", storeErr.Op)
	assert.Equal(t, "theme", storeErr.Key)

	_, ok, _ := store.Get("theme")
	assert.False(t, ok)
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore(map[string]string{"theme": "dark"})

	value, ok, err := store.Get("theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", value)

	require.NoError(t, store.Set("theme", "light"))
	assert.Equal(t, 1, store.Writes())

	boom := stdErrors.New("quota exceeded")
	store.FailWrites(boom)
	err = store.Set("theme", "dark")
	require.Error(t, err)
	assert.True(t, stdErrors.Is(err, boom))

	value, _, _ = store.Get("theme")
	assert.Equal(t, "light", value)
	assert.Equal(t, 1, store.Writes())
}
