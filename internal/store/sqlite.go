package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/nhle/notifdash/internal/model"
)

// notificationColumns is the column list matching model.Notification's db tags.
const notificationColumns = `
	id, title, preview, full_details,
	submitted_at, expires_at, sender,
	status, category, has_attachment, is_pinned`

// SQLiteStore implements Store on a private in-memory SQLite database.
// Nothing is written to disk; the data lives as long as the store.
type SQLiteStore struct {
	db *sqlx.DB
}

// sqliteDSN opens a private in-memory database. Timestamps are written in
// SQLite's own text format so DATETIME columns scan back into time.Time.
const sqliteDSN = "file::memory:?_time_format=sqlite"

// NewSQLiteStore opens a fresh in-memory database and applies the schema.
func NewSQLiteStore() (*SQLiteStore, error) {
	db, err := sqlx.Open("sqlite", sqliteDSN)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}

	// Each connection to an in-memory database sees its own data, so the
	// pool must never hold more than one.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	s := &SQLiteStore{db: db}
	if err := s.runMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the underlying database connection, discarding all data.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// runMigrations checks the current schema version and applies any
// outstanding migrations in order.
func (s *SQLiteStore) runMigrations() error {
	currentVersion := 0

	var tableCount int
	err := s.db.Get(
		&tableCount,
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	)
	if err != nil {
		return fmt.Errorf("checking schema_version table: %w", err)
	}

	if tableCount > 0 {
		err = s.db.Get(&currentVersion, "SELECT COALESCE(MAX(version), 0) FROM schema_version")
		if err != nil {
			return fmt.Errorf("reading schema version: %w", err)
		}
	}

	for _, m := range migrations {
		if m.version <= currentVersion {
			continue
		}
		if _, err := s.db.Exec(m.sql); err != nil {
			return fmt.Errorf("applying migration v%d: %w", m.version, err)
		}
	}

	return nil
}

// List returns every notification ordered by seed position.
func (s *SQLiteStore) List(ctx context.Context) ([]model.Notification, error) {
	records := []model.Notification{}
	err := s.db.SelectContext(ctx, &records,
		"SELECT"+notificationColumns+" FROM notifications ORDER BY position",
	)
	if err != nil {
		return nil, fmt.Errorf("querying notifications: %w", err)
	}
	return records, nil
}

// Get retrieves a single notification by its ID.
func (s *SQLiteStore) Get(ctx context.Context, id string) (*model.Notification, error) {
	var n model.Notification
	err := s.db.GetContext(ctx, &n,
		"SELECT"+notificationColumns+" FROM notifications WHERE id = ?", id,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("getting notification %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("getting notification %s: %w", id, err)
	}
	return &n, nil
}

// Count returns the number of stored notifications.
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM notifications"); err != nil {
		return 0, fmt.Errorf("counting notifications: %w", err)
	}
	return count, nil
}

// Seed replaces every row with records inside one transaction.
func (s *SQLiteStore) Seed(ctx context.Context, records []model.Notification) error {
	if err := checkUnique(records); err != nil {
		return err
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM notifications"); err != nil {
		return fmt.Errorf("clearing notifications: %w", err)
	}

	stmt, err := tx.PreparexContext(ctx, `
		INSERT INTO notifications (
			position, id, title, preview, full_details,
			submitted_at, expires_at, sender,
			status, category, has_attachment, is_pinned
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert statement: %w", err)
	}
	defer stmt.Close()

	for i, n := range records {
		_, err := stmt.ExecContext(ctx,
			i, n.ID, n.Title, n.Preview, n.FullDetails,
			n.SubmittedAt, n.ExpiresAt, n.Sender,
			string(n.Status), string(n.Category),
			boolToInt(n.HasAttachment), boolToInt(n.IsPinned),
		)
		if err != nil {
			return fmt.Errorf("inserting notification %s: %w", n.ID, err)
		}
	}

	return tx.Commit()
}

// MarkAsRead sets a single notification's status to read.
func (s *SQLiteStore) MarkAsRead(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx,
		"UPDATE notifications SET status = ? WHERE id = ?",
		string(model.StatusRead), id,
	)
	if err != nil {
		return fmt.Errorf("marking notification %s as read: %w", id, err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("marking notification %s as read: %w", id, ErrNotFound)
	}
	return nil
}

// Delete removes a notification by ID.
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM notifications WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting notification %s: %w", id, err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("deleting notification %s: %w", id, ErrNotFound)
	}
	return nil
}

// MarkAllAsRead sets every notification to read and returns how many changed.
func (s *SQLiteStore) MarkAllAsRead(ctx context.Context) (int, error) {
	result, err := s.db.ExecContext(ctx,
		"UPDATE notifications SET status = ? WHERE status <> ?",
		string(model.StatusRead), string(model.StatusRead),
	)
	if err != nil {
		return 0, fmt.Errorf("marking all notifications as read: %w", err)
	}
	rows, _ := result.RowsAffected()
	return int(rows), nil
}

// DeleteAll removes every notification and returns how many were removed.
func (s *SQLiteStore) DeleteAll(ctx context.Context) (int, error) {
	result, err := s.db.ExecContext(ctx, "DELETE FROM notifications")
	if err != nil {
		return 0, fmt.Errorf("deleting all notifications: %w", err)
	}
	rows, _ := result.RowsAffected()
	return int(rows), nil
}

// boolToInt converts a boolean to 0 or 1 for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
