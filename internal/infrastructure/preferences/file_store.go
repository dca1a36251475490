package preferences

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	pkerrors "github.com/alexisbeaulieu97/pagekit/pkg/errors"
)

const fileVersion = "1"

// File is the on-disk layout of the preferences file.
type File struct {
	Version string            `yaml:"version"`
	Values  map[string]string `yaml:"values"`
}

// FileStore persists preferences in a YAML file. Writes replace the file
// atomically.
type FileStore struct {
	path   string
	mu     sync.RWMutex
	values map[string]string
}

// NewFileStore opens the preferences file at path. A missing file is treated
// as an empty store and is created on the first write.
func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{
		path:   path,
		values: make(map[string]string),
	}

	if err := s.load(); err != nil {
		return nil, err
	}

	return s, nil
}

// Path returns the file backing the store.
func (s *FileStore) Path() string {
	return s.path
}

// Get implements ports.PreferenceStore.
func (s *FileStore) Get(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	return value, ok, nil
}

// Set implements ports.PreferenceStore. The value is written to disk before Set returns.
func (s *FileStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous, existed := s.values[key]
	s.values[key] = value

	if err := s.save(); err != nil {
		if existed {
			s.values[key] = previous
		} else {
			delete(s.values, key)
		}
		return pkerrors.NewStoreError("write", key, err)
	}

	return nil
}

func (s *FileStore) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return pkerrors.NewStoreError("read", "", err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return pkerrors.NewStoreError("read", "", pkerrors.NewParseError(s.path, 0, err))
	}

	for key, value := range file.Values {
		s.values[key] = value
	}

	return nil
}

func (s *FileStore) save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create preferences directory: %w", err)
	}

	data, err := yaml.Marshal(File{Version: fileVersion, Values: s.values})
	if err != nil {
		return fmt.Errorf("marshal preferences: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write temporary file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temporary file: %w", err)
	}

	return nil
}
