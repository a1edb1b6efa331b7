package securestore

import (
	"context"
	"sync"

	"shamba/internal/domain/repository"
)

// MemoryStore is a volatile PreferenceStore used by tests and as a fallback
// when no durable path is available.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

var _ repository.PreferenceStore = (*MemoryStore)(nil)

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

// Get returns the value for key, or repository.ErrKeyNotFound when absent.
func (s *MemoryStore) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	if !ok {
		return "", repository.ErrKeyNotFound
	}

	return value, nil
}

// Set writes the value for key, replacing any existing value.
func (s *MemoryStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value

	return nil
}

// Delete removes the key. Deleting an absent key is not an error.
func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)

	return nil
}

// Len reports how many keys are stored. Test helper.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.values)
}
