package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mesh-intelligence/catalog/pkg/types"
)

// itemColumns is the column order every item query selects and scans.
const itemColumns = "id, name, is_complete"

// itemsTable runs item queries for a Backend. Callers hold the backend lock.
type itemsTable struct {
	backend *Backend
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (types.Item, error) {
	var item types.Item
	if err := row.Scan(&item.ID, &item.Name, &item.IsComplete); err != nil {
		return types.Item{}, err
	}
	return item, nil
}

func (t *itemsTable) list(ctx context.Context) ([]types.Item, error) {
	rows, err := t.backend.db.QueryContext(ctx,
		"SELECT "+itemColumns+" FROM items ORDER BY id ASC",
	)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	defer rows.Close()

	items := []types.Item{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating items: %w", err)
	}
	return items, nil
}

func (t *itemsTable) get(ctx context.Context, id int64) (types.Item, error) {
	if id <= 0 {
		return types.Item{}, types.ErrInvalidID
	}

	row := t.backend.db.QueryRowContext(ctx,
		"SELECT "+itemColumns+" FROM items WHERE id = ?", id,
	)
	item, err := scanItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return types.Item{}, types.ErrNotFound
	}
	if err != nil {
		return types.Item{}, fmt.Errorf("getting item %d: %w", id, err)
	}
	return item, nil
}

func (t *itemsTable) create(ctx context.Context, item types.Item) (types.Item, error) {
	if err := item.Validate(); err != nil {
		return types.Item{}, err
	}

	res, err := t.backend.db.ExecContext(ctx,
		"INSERT INTO items (name, is_complete) VALUES (?, ?)",
		item.Name, item.IsComplete,
	)
	if err != nil {
		return types.Item{}, fmt.Errorf("inserting item: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return types.Item{}, fmt.Errorf("reading new item ID: %w", err)
	}

	item.ID = id
	return item, nil
}

func (t *itemsTable) update(ctx context.Context, id int64, item types.Item) error {
	if id <= 0 {
		return types.ErrInvalidID
	}
	if item.ID != 0 && item.ID != id {
		return types.ErrIDMismatch
	}
	if err := item.Validate(); err != nil {
		return err
	}

	res, err := t.backend.db.ExecContext(ctx,
		"UPDATE items SET name = ?, is_complete = ? WHERE id = ?",
		item.Name, item.IsComplete, id,
	)
	if err != nil {
		return fmt.Errorf("updating item %d: %w", id, err)
	}
	return requireAffected(res)
}

func (t *itemsTable) delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return types.ErrInvalidID
	}

	res, err := t.backend.db.ExecContext(ctx, "DELETE FROM items WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting item %d: %w", id, err)
	}
	return requireAffected(res)
}

// requireAffected returns ErrNotFound when a keyed write matched no row.
func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}
	if n == 0 {
		return types.ErrNotFound
	}
	return nil
}
