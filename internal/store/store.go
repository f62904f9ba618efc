package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/nhle/notifdash/internal/model"
)

// ErrNotFound is returned when an operation references an ID that is not in
// the store.
var ErrNotFound = errors.New("notification not found")

// ErrDuplicateID is returned by Seed when two records share an ID.
var ErrDuplicateID = errors.New("duplicate notification id")

// Store holds one session's notifications. Records keep the order they were
// seeded in; List always returns them in that order.
type Store interface {
	// === Reads ===

	List(ctx context.Context) ([]model.Notification, error)
	Get(ctx context.Context, id string) (*model.Notification, error)
	Count(ctx context.Context) (int, error)

	// === Seeding ===

	// Seed replaces the store contents with records.
	Seed(ctx context.Context, records []model.Notification) error

	// === Mutations ===

	MarkAsRead(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	MarkAllAsRead(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) (int, error)

	Close() error
}

// Open builds a store for the named driver and seeds it.
func Open(ctx context.Context, driver string, records []model.Notification) (Store, error) {
	var (
		s   Store
		err error
	)

	switch driver {
	case model.StoreDriverMemory, "":
		s = NewMemoryStore()
	case model.StoreDriverSQLite:
		s, err = NewSQLiteStore()
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown store driver %q", driver)
	}

	if err := s.Seed(ctx, records); err != nil {
		s.Close()
		return nil, fmt.Errorf("seeding %s store: %w", driver, err)
	}
	return s, nil
}

// checkUnique reports the first ID that appears twice in records.
func checkUnique(records []model.Notification) error {
	seen := make(map[string]struct{}, len(records))
	for _, n := range records {
		if _, ok := seen[n.ID]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateID, n.ID)
		}
		seen[n.ID] = struct{}{}
	}
	return nil
}
