// Package testutil holds fixtures shared by package tests.
package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/nhle/notifdash/internal/model"
	"github.com/nhle/notifdash/internal/seed"
	"github.com/nhle/notifdash/internal/store"
)

// Drivers lists every store driver that must satisfy the Store contract.
var Drivers = []string{model.StoreDriverMemory, model.StoreDriverSQLite}

// Now is a fixed clock reading after every built-in expiry date.
var Now = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

// Clock returns a clock function that always reports t.
func Clock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// NewTestStore opens a store for driver seeded with records (the built-in
// dataset when records is nil). It is closed when the test completes.
func NewTestStore(t *testing.T, driver string, records []model.Notification) store.Store {
	t.Helper()

	if records == nil {
		records = seed.Default()
	}

	s, err := store.Open(context.Background(), driver, records)
	if err != nil {
		t.Fatalf("creating %s test store: %v", driver, err)
	}

	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("closing %s test store: %v", driver, err)
		}
	})

	return s
}

// Records builds n notifications with IDs "n1".."nN". Statuses and
// categories rotate so every value appears once n >= 4.
func Records(n int) []model.Notification {
	statuses := []model.Status{model.StatusUnread, model.StatusRead, model.StatusUrgent}
	out := make([]model.Notification, n)
	for i := range out {
		out[i] = model.Notification{
			ID:          fmt.Sprintf("n%d", i+1),
			Title:       fmt.Sprintf("Notification %d", i+1),
			Preview:     "generated",
			Sender:      "Generator",
			SubmittedAt: Now.Add(-time.Duration(i) * time.Hour),
			ExpiresAt:   Now.AddDate(0, 0, 7),
			Status:      statuses[i%len(statuses)],
			Category:    model.Categories[i%len(model.Categories)],
		}
	}
	return out
}
