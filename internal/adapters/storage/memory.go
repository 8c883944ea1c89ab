package storage

import (
	"context"
	"sync"

	"entries-api/internal/models"
)

// MemoryStore is an in-memory EntryStore modelling a single key-value table.
// It is used for local runs and round-trip tests
type MemoryStore struct {
	mu        sync.RWMutex
	tableName string
	items     map[string]models.Entry
}

// NewMemoryStore creates a new MemoryStore instance
func NewMemoryStore(tableName string) *MemoryStore {
	return &MemoryStore{
		tableName: tableName,
		items:     make(map[string]models.Entry),
	}
}

// Save implements Saver.Save
func (m *MemoryStore) Save(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return NewBackendError("Save", id, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.items[id] = models.Entry{ID: id}
	return nil
}

// Get implements Getter.Get
func (m *MemoryStore) Get(ctx context.Context, id string) (*models.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, NewBackendError("Get", id, err)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	entry, exists := m.items[id]
	if !exists {
		return nil, NewNotFoundError("Get", id)
	}

	return &entry, nil
}

// Len returns the number of stored entries
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}

// Close implements EntryStore.Close
func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.items = make(map[string]models.Entry)
	return nil
}
