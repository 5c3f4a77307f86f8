package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/AtRiskMedia/adaptive-profile/internal/infrastructure/persistence/database"
)

// SQLStore persists values in the visitor_storage table, scoped to one visitor id.
type SQLStore struct {
	db        *database.DB
	visitorID string
	now       func() time.Time
}

// NewSQLStore scopes reads and writes to one visitor's rows.
func NewSQLStore(db *database.DB, visitorID string) *SQLStore {
	return &SQLStore{db: db, visitorID: visitorID, now: time.Now}
}

// Get reports ok=false when the visitor has no row for key.
func (s *SQLStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM visitor_storage WHERE visitor_id = ? AND storage_key = ?`,
		s.visitorID, key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read %s for visitor: %w", key, err)
	}
	return value, true, nil
}

// Set upserts the value for key.
func (s *SQLStore) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO visitor_storage (visitor_id, storage_key, value, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(visitor_id, storage_key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		s.visitorID, key, value, s.now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to write %s for visitor: %w", key, err)
	}
	return nil
}
