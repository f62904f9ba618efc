// Package session keeps isolated dashboard sessions. Every session owns its
// own store seeded from a fresh copy of the dataset, so no two sessions
// ever observe each other's mutations.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nhle/notifdash/internal/dashboard"
	"github.com/nhle/notifdash/internal/logging"
	"github.com/nhle/notifdash/internal/model"
	"github.com/nhle/notifdash/internal/seed"
	"github.com/nhle/notifdash/internal/store"
)

// ErrUnknownSession is returned for IDs the manager does not hold.
var ErrUnknownSession = errors.New("unknown session")

// StoreFactory opens a new store seeded with records.
type StoreFactory func(ctx context.Context, records []model.Notification) (store.Store, error)

// DriverFactory returns a StoreFactory for a store driver name.
func DriverFactory(driver string) StoreFactory {
	return func(ctx context.Context, records []model.Notification) (store.Store, error) {
		return store.Open(ctx, driver, records)
	}
}

// Session is one isolated dashboard.
type Session struct {
	ID        string
	CreatedAt time.Time
	Dashboard *dashboard.Dashboard
}

// Config holds what every new session is built from.
type Config struct {
	// Factory builds each session's store. Defaults to the memory driver.
	Factory StoreFactory

	// Records is the seed dataset. Each session receives its own copy.
	// Nil means the built-in dataset.
	Records []model.Notification

	// Options are applied to every new dashboard.
	Options []dashboard.Option

	Logger zerolog.Logger
}

// Manager creates and tracks sessions. It is safe for concurrent use.
type Manager struct {
	cfg    Config
	logger zerolog.Logger

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewManager returns an empty manager.
func NewManager(cfg Config) *Manager {
	if cfg.Factory == nil {
		cfg.Factory = DriverFactory(model.StoreDriverMemory)
	}
	return &Manager{
		cfg:      cfg,
		logger:   logging.Component(cfg.Logger, "session"),
		sessions: make(map[string]*Session),
	}
}

// Create opens a new session with a freshly seeded store.
func (m *Manager) Create(ctx context.Context) (*Session, error) {
	records := m.cfg.Records
	if records == nil {
		records = seed.Default()
	} else {
		records = seed.Clone(records)
	}

	s, err := m.cfg.Factory(ctx, records)
	if err != nil {
		return nil, fmt.Errorf("opening session store: %w", err)
	}

	id := uuid.NewString()
	opts := append([]dashboard.Option{
		dashboard.WithLogger(m.logger.With().Str("session", id).Logger()),
	}, m.cfg.Options...)

	sess := &Session{
		ID:        id,
		CreatedAt: time.Now(),
		Dashboard: dashboard.New(s, opts...),
	}

	m.mu.Lock()
	m.sessions[id] = sess
	m.mu.Unlock()

	m.logger.Info().Str("session", id).Int("records", len(records)).Msg("session created")
	return sess, nil
}

// Get returns the session with the given ID.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess, ok := m.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSession, id)
	}
	return sess, nil
}

// Close removes a session and closes its store.
func (m *Manager) Close(id string) error {
	m.mu.Lock()
	sess, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()

	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSession, id)
	}
	if err := sess.Dashboard.Store().Close(); err != nil {
		return fmt.Errorf("closing session %s: %w", id, err)
	}
	m.logger.Info().Str("session", id).Msg("session closed")
	return nil
}

// Len returns the number of open sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// CloseAll closes every session. Failures are joined.
func (m *Manager) CloseAll() error {
	m.mu.Lock()
	ids := make([]string, 0, len(m.sessions))
	for id := range m.sessions {
		ids = append(ids, id)
	}
	m.mu.Unlock()

	var errs []error
	for _, id := range ids {
		if err := m.Close(id); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
