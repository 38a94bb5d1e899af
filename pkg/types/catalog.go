package types

import (
	"context"
	"errors"
)

// Catalog is the persistence context for Items. All reads and writes for one
// storage instance go through it, and every mutation is visible to the next
// read on the same instance.
type Catalog interface {
	// InitializeSchema ensures the backing store exists. On the first
	// initialization of a storage instance it also loads the seed set.
	// Repeated calls succeed without duplicating data. Setup failures are
	// returned to the caller.
	InitializeSchema(ctx context.Context) error

	// List returns every item ordered by ID. Returns an empty slice, not nil,
	// when the catalog is empty.
	List(ctx context.Context) ([]Item, error)

	// Get returns the item with the given ID.
	// Returns ErrNotFound if no item exists with that ID.
	Get(ctx context.Context, id int64) (Item, error)

	// Create stores a new item under a freshly assigned ID and returns the
	// stored value. Any ID on the input is ignored.
	Create(ctx context.Context, item Item) (Item, error)

	// Update replaces the stored fields of an existing item.
	// Returns ErrNotFound if no item exists with that ID.
	Update(ctx context.Context, id int64, item Item) error

	// Delete removes the item with the given ID.
	// Returns ErrNotFound if no item exists with that ID.
	Delete(ctx context.Context, id int64) error

	// StorageName reports the storage instance this catalog is bound to.
	StorageName() string

	// Close releases the storage handle. Idempotent.
	Close() error
}

// Catalog lifecycle errors.
var (
	ErrNotInitialized = errors.New("catalog schema is not initialized")
	ErrClosed         = errors.New("catalog is closed")
)

// Item operation errors.
var (
	ErrNotFound    = errors.New("item not found")
	ErrInvalidID   = errors.New("invalid item ID")
	ErrInvalidName = errors.New("item name must not be empty")
	ErrIDMismatch  = errors.New("item ID does not match the requested ID")
)
