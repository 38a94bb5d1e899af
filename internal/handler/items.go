package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/mesh-intelligence/catalog/pkg/types"
)

// ErrorResponse is the JSON body written for 400 and 500 responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status  string `json:"status"`
	Storage string `json:"storage"`
}

// ItemHandler handles item API requests
type ItemHandler struct {
	catalog types.Catalog
	logger  *log.Logger
}

// NewItemHandler creates a handler over catalog. A nil logger falls back
// to the standard logger.
func NewItemHandler(catalog types.Catalog, logger *log.Logger) *ItemHandler {
	if logger == nil {
		logger = log.Default()
	}
	return &ItemHandler{catalog: catalog, logger: logger}
}

// ListItems returns all items in id order
func (h *ItemHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalog.List(r.Context())
	if err != nil {
		h.internalError(w, "Failed to list items", err)
		return
	}

	h.writeJSON(w, items, http.StatusOK)
}

// GetItem returns a single item
func (h *ItemHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	item, err := h.catalog.Get(r.Context(), id)
	if errors.Is(err, types.ErrNotFound) {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if err != nil {
		h.internalError(w, "Failed to get item", err)
		return
	}

	h.writeJSON(w, item, http.StatusOK)
}

// CreateItem stores a new item and returns it with its assigned id
func (h *ItemHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var item types.Item
	if !h.decode(w, r, &item) {
		return
	}

	created, err := h.catalog.Create(r.Context(), item)
	if errors.Is(err, types.ErrInvalidName) {
		h.writeError(w, "Invalid item", err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		h.internalError(w, "Failed to create item", err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/items/%d", created.ID))
	h.writeJSON(w, created, http.StatusCreated)
}

// UpdateItem replaces the name and completion flag of an existing item
func (h *ItemHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var item types.Item
	if !h.decode(w, r, &item) {
		return
	}

	err := h.catalog.Update(r.Context(), id, item)
	switch {
	case err == nil:
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, types.ErrNotFound):
		w.WriteHeader(http.StatusNotFound)
	case errors.Is(err, types.ErrIDMismatch), errors.Is(err, types.ErrInvalidName):
		h.writeError(w, "Invalid item", err.Error(), http.StatusBadRequest)
	default:
		h.internalError(w, "Failed to update item", err)
	}
}

// DeleteItem removes an item
func (h *ItemHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	err := h.catalog.Delete(r.Context(), id)
	switch {
	case err == nil:
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, types.ErrNotFound):
		w.WriteHeader(http.StatusNotFound)
	default:
		h.internalError(w, "Failed to delete item", err)
	}
}

// Health reports liveness and the bound storage instance
func (h *ItemHandler) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, HealthResponse{Status: "ok", Storage: h.catalog.StorageName()}, http.StatusOK)
}

// Helper functions

func (h *ItemHandler) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := r.PathValue("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		h.writeError(w, "Invalid item ID", fmt.Sprintf("%q is not a positive integer", raw), http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func (h *ItemHandler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(v); err != nil {
		details := err.Error()
		if errors.Is(err, io.EOF) {
			details = "request body is empty"
		}
		h.writeError(w, "Invalid request body", details, http.StatusBadRequest)
		return false
	}
	return true
}

func (h *ItemHandler) internalError(w http.ResponseWriter, msg string, err error) {
	h.logger.Printf("%s: %v", msg, err)
	h.writeError(w, msg, err.Error(), http.StatusInternalServerError)
}

func (h *ItemHandler) writeJSON(w http.ResponseWriter, data any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Printf("Failed to encode JSON: %v", err)
	}
}

func (h *ItemHandler) writeError(w http.ResponseWriter, msg, details string, status int) {
	h.writeJSON(w, ErrorResponse{Error: msg, Details: details}, status)
}
