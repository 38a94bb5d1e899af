// Package handler provides the HTTP API over a types.Catalog.
package handler
