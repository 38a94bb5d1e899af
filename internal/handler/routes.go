package handler

import (
	"log"
	"net/http"

	"github.com/mesh-intelligence/catalog/pkg/types"
)

// NewRouter registers the item API and health check on a fresh mux and wraps
// it with recovery and request logging.
func NewRouter(catalog types.Catalog, logger *log.Logger) http.Handler {
	if logger == nil {
		logger = log.Default()
	}
	items := NewItemHandler(catalog, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/items", items.ListItems)
	mux.HandleFunc("POST /api/items", items.CreateItem)
	mux.HandleFunc("GET /api/items/{id}", items.GetItem)
	mux.HandleFunc("PUT /api/items/{id}", items.UpdateItem)
	mux.HandleFunc("DELETE /api/items/{id}", items.DeleteItem)
	mux.HandleFunc("GET /healthz", items.Health)

	return Chain(mux,
		Recover(logger),
		Logger(logger),
	)
}
