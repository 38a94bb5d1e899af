package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mesh-intelligence/catalog/internal/handler"
	"github.com/mesh-intelligence/catalog/pkg/types"
)

// APIError is a non-2xx response other than 404.
type APIError struct {
	Status  int
	Message string
	Details string
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("server returned %d", e.Status)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Details != "" {
		msg += " (" + e.Details + ")"
	}
	return msg
}

// Client calls the item API of a running catalog server.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient returns a client for the server at baseURL. A nil httpClient
// uses one with a 30 second timeout.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: httpClient}
}

// List returns every item.
func (c *Client) List(ctx context.Context) ([]types.Item, error) {
	var items []types.Item
	if err := c.do(ctx, http.MethodGet, "/api/items", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Get returns one item, or an error wrapping types.ErrNotFound.
func (c *Client) Get(ctx context.Context, id int64) (types.Item, error) {
	var item types.Item
	err := c.do(ctx, http.MethodGet, itemPath(id), nil, &item)
	return item, err
}

// Create stores a new item and returns it with its assigned ID.
func (c *Client) Create(ctx context.Context, item types.Item) (types.Item, error) {
	var created types.Item
	err := c.do(ctx, http.MethodPost, "/api/items", item, &created)
	return created, err
}

// Update replaces the item with the given ID.
func (c *Client) Update(ctx context.Context, id int64, item types.Item) error {
	return c.do(ctx, http.MethodPut, itemPath(id), item, nil)
}

// Delete removes the item with the given ID.
func (c *Client) Delete(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, itemPath(id), nil, nil)
}

// Health returns the server's health report.
func (c *Client) Health(ctx context.Context) (handler.HealthResponse, error) {
	var health handler.HealthResponse
	err := c.do(ctx, http.MethodGet, "/healthz", nil, &health)
	return health, err
}

func itemPath(id int64) string {
	return fmt.Sprintf("/api/items/%d", id)
}

// do sends a request and decodes a 2xx body into out when out is non-nil.
// Transport failures and 5xx responses are system errors; 404 wraps
// types.ErrNotFound.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var r io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		r = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, r)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return sysErr(fmt.Errorf("%s %s: %w", method, path, err))
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s: %w", path, types.ErrNotFound)
	case resp.StatusCode >= 300:
		apiErr := &APIError{Status: resp.StatusCode}
		var er handler.ErrorResponse
		if json.NewDecoder(resp.Body).Decode(&er) == nil {
			apiErr.Message = er.Error
			apiErr.Details = er.Details
		}
		if resp.StatusCode >= 500 {
			return sysErr(apiErr)
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return sysErr(fmt.Errorf("decode response: %w", err))
	}
	return nil
}
