// Package types defines the Item entity, the Catalog persistence contract,
// storage configuration, and the standard errors shared by every backend.
package types
