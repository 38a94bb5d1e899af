// Package catalog carries build metadata for the catalog module.
package catalog

// Version is the release version of the catalog.
const Version = "0.1.0"

// ModulePath is the Go module path.
const ModulePath = "github.com/mesh-intelligence/catalog"
