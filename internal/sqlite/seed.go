package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mesh-intelligence/catalog/internal/seed"
)

// seedItems loads the seed set the first time a storage instance is
// initialized. Later calls find the marker and do nothing, even if seeded
// items have since been edited or deleted.
func seedItems(ctx context.Context, tx *sql.Tx) error {
	seeded, err := isApplied(ctx, tx, seedMarker)
	if err != nil {
		return fmt.Errorf("checking seed marker: %w", err)
	}
	if seeded {
		return nil
	}

	stmt, err := tx.PrepareContext(ctx,
		"INSERT OR IGNORE INTO items (id, name, is_complete) VALUES (?, ?, ?)",
	)
	if err != nil {
		return fmt.Errorf("preparing seed insert: %w", err)
	}
	defer stmt.Close()

	for _, item := range seed.Items() {
		if _, err := stmt.ExecContext(ctx, item.ID, item.Name, item.IsComplete); err != nil {
			return fmt.Errorf("seeding item %d: %w", item.ID, err)
		}
	}

	if err := markApplied(ctx, tx, seedMarker); err != nil {
		return fmt.Errorf("recording seed marker: %w", err)
	}
	return nil
}
