package database

import (
	"context"
	"fmt"
)

var tables = []string{
	`CREATE TABLE IF NOT EXISTS visitor_storage (
		visitor_id TEXT NOT NULL,
		storage_key TEXT NOT NULL,
		value TEXT NOT NULL,
		updated_at TIMESTAMP NOT NULL,
		PRIMARY KEY (visitor_id, storage_key)
	)`,
}

var indexes = []string{
	`CREATE INDEX IF NOT EXISTS idx_visitor_storage_updated ON visitor_storage(updated_at)`,
}

// CreateSchema executes all necessary queries to build the tables and indexes.
// Safe to run on every start.
func (db *DB) CreateSchema(ctx context.Context) error {
	for _, tableSQL := range tables {
		if _, err := db.ExecContext(ctx, tableSQL); err != nil {
			return fmt.Errorf("failed to create table for query [%s]: %w", tableSQL, err)
		}
	}
	for _, indexSQL := range indexes {
		if _, err := db.ExecContext(ctx, indexSQL); err != nil {
			return fmt.Errorf("failed to create index for query [%s]: %w", indexSQL, err)
		}
	}
	return nil
}
