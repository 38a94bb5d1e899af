// Package seed provides the fixed data set loaded into a storage instance the
// first time its schema is initialized.
package seed

import "github.com/mesh-intelligence/catalog/pkg/types"

// Items returns the seed set. The result is the same on every call and IDs
// are assigned 1, 2, ... in slice order. Callers own the returned slice.
func Items() []types.Item {
	var id int64

	next := func() int64 {
		id++
		return id
	}

	return []types.Item{
		{ID: next(), Name: "Item1", IsComplete: false},
		{ID: next(), Name: "Item2", IsComplete: false},
	}
}
