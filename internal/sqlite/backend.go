// Package sqlite implements the SQLite storage backend for the catalog.
// Each storage instance is a named in-memory database: every Backend opened
// with the same storage name in one process sees the same data, and the data
// is gone once the last Backend bound to that name is closed.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/catalog/pkg/types"
)

// Compile-time interface check: Backend must implement Catalog.
var _ types.Catalog = (*Backend)(nil)

// Backend implements the Catalog interface on top of a shared-cache SQLite
// in-memory database.
type Backend struct {
	mu     sync.RWMutex
	closed bool
	config types.Config
	db     *sql.DB
	items  *itemsTable
}

// Open validates config and opens the storage instance it names.
// The schema is not touched; call InitializeSchema before serving reads.
func Open(config types.Config) (*Backend, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dsn(config.StorageName))
	if err != nil {
		return nil, fmt.Errorf("opening storage %s: %w", config.StorageName, err)
	}

	// A single long-lived connection keeps the in-memory instance alive and
	// serializes every statement issued through this Backend.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connecting to storage %s: %w", config.StorageName, err)
	}

	b := &Backend{
		config: config,
		db:     db,
	}
	b.items = &itemsTable{backend: b}
	return b, nil
}

// dsn builds the URI for a named shared-cache in-memory database.
func dsn(storageName string) string {
	return "file:" + url.PathEscape(storageName) + "?mode=memory&cache=shared"
}

// StorageName returns the storage instance this Backend is bound to.
func (b *Backend) StorageName() string {
	return b.config.StorageName
}

// InitializeSchema applies pending migrations and, on the first
// initialization of the storage instance, loads the seed set. Both steps run
// in one transaction, so a failure leaves the instance as it was.
func (b *Backend) InitializeSchema(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return types.ErrClosed
	}

	tx, err := b.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning schema transaction: %w", err)
	}
	defer tx.Rollback()

	if err := applyMigrations(ctx, tx); err != nil {
		return fmt.Errorf("applying migrations to %s: %w", b.config.StorageName, err)
	}
	if err := seedItems(ctx, tx); err != nil {
		return fmt.Errorf("seeding %s: %w", b.config.StorageName, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing schema transaction: %w", err)
	}
	return nil
}

// List returns every item ordered by ID.
func (b *Backend) List(ctx context.Context) ([]types.Item, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return nil, types.ErrClosed
	}
	items, err := b.items.list(ctx)
	if err != nil {
		return nil, classifyError(err)
	}
	return items, nil
}

// Get returns the item with the given ID.
func (b *Backend) Get(ctx context.Context, id int64) (types.Item, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return types.Item{}, types.ErrClosed
	}
	item, err := b.items.get(ctx, id)
	return item, classifyError(err)
}

// Create stores item under a new ID and returns the stored value.
func (b *Backend) Create(ctx context.Context, item types.Item) (types.Item, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return types.Item{}, types.ErrClosed
	}
	created, err := b.items.create(ctx, item)
	return created, classifyError(err)
}

// Update replaces the name and completion flag of the item with the given ID.
func (b *Backend) Update(ctx context.Context, id int64, item types.Item) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return types.ErrClosed
	}
	return classifyError(b.items.update(ctx, id, item))
}

// Delete removes the item with the given ID.
func (b *Backend) Delete(ctx context.Context, id int64) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return types.ErrClosed
	}
	return classifyError(b.items.delete(ctx, id))
}

// Close releases the connection. Once the last Backend bound to a storage
// name is closed, that instance and its data are discarded.
// Close is idempotent.
func (b *Backend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true
	return b.db.Close()
}

// classifyError maps a query against a never-initialized instance to
// ErrNotInitialized and passes every other error through.
func classifyError(err error) error {
	if err != nil && isMissingSchemaError(err) {
		return fmt.Errorf("%w: %v", types.ErrNotInitialized, err)
	}
	return err
}
