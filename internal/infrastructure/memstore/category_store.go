package memstore

import (
	"context"
	"sync"
)

// CategoryStore is a thread-safe in-memory category repository
type CategoryStore struct {
	names []string
	mutex sync.RWMutex
}

// NewCategoryStore creates an empty category store
func NewCategoryStore() *CategoryStore {
	return &CategoryStore{}
}

// List returns the stored category names in insertion order
func (s *CategoryStore) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return append([]string(nil), s.names...), nil
}

// Create stores a category name; duplicates are ignored
func (s *CategoryStore) Create(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	for _, n := range s.names {
		if n == name {
			return nil
		}
	}
	s.names = append(s.names, name)
	return nil
}
