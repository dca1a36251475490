package preferences

import (
	"sync"

	pkerrors "github.com/alexisbeaulieu97/pagekit/pkg/errors"
)

// MemoryStore keeps preferences in memory only.
type MemoryStore struct {
	mu       sync.RWMutex
	values   map[string]string
	writeErr error
	writes   int
}

// NewMemoryStore returns a store seeded with the given values.
func NewMemoryStore(seed map[string]string) *MemoryStore {
	values := make(map[string]string, len(seed))
	for k, v := range seed {
		values[k] = v
	}
	return &MemoryStore{values: values}
}

// FailWrites makes every later Set fail with err. Passing nil restores normal writes.
func (s *MemoryStore) FailWrites(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writeErr = err
}

// Get implements ports.PreferenceStore.
func (s *MemoryStore) Get(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	return value, ok, nil
}

// Set implements ports.PreferenceStore.
func (s *MemoryStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.writeErr != nil {
		return pkerrors.NewStoreError("write", key, s.writeErr)
	}
	s.values[key] = value
	s.writes++
	return nil
}

// Writes returns the number of successful writes.
func (s *MemoryStore) Writes() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.writes
}
