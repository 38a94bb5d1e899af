package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// applyMigrations creates the migration ledger if needed and runs every
// migration that has not been recorded yet.
func applyMigrations(ctx context.Context, tx *sql.Tx) error {
	if _, err := tx.ExecContext(ctx, createMigrationTable); err != nil {
		return fmt.Errorf("ensuring migration table: %w", err)
	}

	for _, m := range migrations {
		applied, err := isApplied(ctx, tx, m.name)
		if err != nil {
			return fmt.Errorf("checking migration %s: %w", m.name, err)
		}
		if applied {
			continue
		}

		if _, err := tx.ExecContext(ctx, m.sql); err != nil && !isAlreadyExistsError(err) {
			return fmt.Errorf("executing migration %s: %w", m.name, err)
		}
		if err := markApplied(ctx, tx, m.name); err != nil {
			return fmt.Errorf("recording migration %s: %w", m.name, err)
		}
	}
	return nil
}

// isApplied reports whether name is recorded in schema_migrations.
func isApplied(ctx context.Context, tx *sql.Tx, name string) (bool, error) {
	var found int
	err := tx.QueryRowContext(ctx, "SELECT 1 FROM schema_migrations WHERE name = ?", name).Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// markApplied records name in schema_migrations.
func markApplied(ctx context.Context, tx *sql.Tx, name string) error {
	_, err := tx.ExecContext(ctx,
		"INSERT OR IGNORE INTO schema_migrations (name, applied_at) VALUES (?, ?)",
		name, time.Now().UTC().UnixMilli(),
	)
	return err
}

// isAlreadyExistsError reports whether err comes from DDL whose object is
// already present.
func isAlreadyExistsError(err error) bool {
	return strings.Contains(strings.ToLower(err.Error()), "already exists")
}

// isMissingSchemaError reports whether err comes from querying a table that
// has not been created.
func isMissingSchemaError(err error) bool {
	return strings.Contains(strings.ToLower(err.Error()), "no such table")
}
