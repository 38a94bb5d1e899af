// Package sqlite provides the public API for the SQLite catalog backend.
// It exposes the factory while keeping implementation details internal.
package sqlite

import (
	"github.com/mesh-intelligence/catalog/internal/sqlite"
	"github.com/mesh-intelligence/catalog/pkg/types"
)

// Open creates a Catalog bound to the storage instance named in config.
// The schema is not initialized; call InitializeSchema before use.
//
// Example:
//
//	catalog, err := sqlite.Open(types.Config{
//	    Backend:     types.BackendSQLite,
//	    StorageName: "ItemList",
//	})
//	if err != nil {
//	    return err
//	}
//	defer catalog.Close()
//	if err := catalog.InitializeSchema(ctx); err != nil {
//	    return err
//	}
func Open(config types.Config) (types.Catalog, error) {
	b, err := sqlite.Open(config)
	if err != nil {
		return nil, err
	}
	return b, nil
}
