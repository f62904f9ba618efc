package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/nhle/notifdash/internal/model"
)

// MemoryStore implements Store with an ordered slice and an ID index.
type MemoryStore struct {
	mu      sync.RWMutex
	records []model.Notification
	index   map[string]int
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{index: map[string]int{}}
}

// List returns a copy of every record in store order.
func (s *MemoryStore) List(_ context.Context) ([]model.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Notification, len(s.records))
	copy(out, s.records)
	return out, nil
}

// Get returns a copy of the record with the given ID.
func (s *MemoryStore) Get(_ context.Context, id string) (*model.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("getting notification %s: %w", id, ErrNotFound)
	}
	n := s.records[i]
	return &n, nil
}

// Count returns the number of records.
func (s *MemoryStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records), nil
}

// Seed replaces the contents with a copy of records.
func (s *MemoryStore) Seed(_ context.Context, records []model.Notification) error {
	if err := checkUnique(records); err != nil {
		return err
	}

	cp := make([]model.Notification, len(records))
	copy(cp, records)

	s.mu.Lock()
	s.records = cp
	s.reindex()
	s.mu.Unlock()
	return nil
}

// MarkAsRead sets a single record's status to read.
func (s *MemoryStore) MarkAsRead(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("marking notification %s as read: %w", id, ErrNotFound)
	}
	s.records[i].Status = model.StatusRead
	return nil
}

// Delete removes a single record.
func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("deleting notification %s: %w", id, ErrNotFound)
	}

	// Build a new slice so earlier List results never observe the shift.
	next := make([]model.Notification, 0, len(s.records)-1)
	next = append(next, s.records[:i]...)
	next = append(next, s.records[i+1:]...)
	s.records = next
	s.reindex()
	return nil
}

// MarkAllAsRead sets every record to read and returns how many changed.
func (s *MemoryStore) MarkAllAsRead(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed := 0
	for i := range s.records {
		if s.records[i].Status != model.StatusRead {
			s.records[i].Status = model.StatusRead
			changed++
		}
	}
	return changed, nil
}

// DeleteAll empties the store and returns how many records were removed.
func (s *MemoryStore) DeleteAll(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := len(s.records)
	s.records = nil
	s.reindex()
	return removed, nil
}

// Close is a no-op for the memory store.
func (s *MemoryStore) Close() error {
	return nil
}

// indexOf must be called with s.mu held.
func (s *MemoryStore) indexOf(id string) int {
	if i, ok := s.index[id]; ok {
		return i
	}
	return -1
}

// reindex rebuilds the ID index after the slice changed shape. It must be
// called with s.mu held for writing.
func (s *MemoryStore) reindex() {
	s.index = make(map[string]int, len(s.records))
	for i := range s.records {
		s.index[s.records[i].ID] = i
	}
}
