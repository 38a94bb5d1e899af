// Package apptest builds the catalog for tests against an isolated storage
// instance that no other harness or production process shares.
package apptest

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/catalog/internal/app"
	"github.com/mesh-intelligence/catalog/internal/config"
	"github.com/mesh-intelligence/catalog/pkg/types"
)

// StoragePrefix starts every test storage name.
const StoragePrefix = "DbForTesting-"

// NewStorageName returns a fresh test-scoped storage name.
func NewStorageName() string {
	return StoragePrefix + uuid.Must(uuid.NewV7()).String()
}

// Harness is a running catalog bound to its own storage instance.
type Harness struct {
	// URL is the base URL of the test server, without a trailing slash.
	URL string

	app    *app.App
	server *httptest.Server
}

// Option customizes how a Harness composes the application.
type Option func(*options)

type options struct {
	appOpts []app.Option
}

// WithLogger routes request logging to logger. Harnesses discard logs by default.
func WithLogger(logger *log.Logger) Option {
	return func(o *options) {
		o.appOpts = append(o.appOpts, app.WithLogger(logger))
	}
}

// New composes the catalog in the Testing environment against a new storage
// instance, forces schema initialization, and starts an HTTP server over it.
// Any failure fails the test immediately. Everything is released on cleanup.
func New(t testing.TB, opts ...Option) *Harness {
	t.Helper()

	cfg := config.Default()
	cfg.Environment = config.EnvironmentTesting
	cfg.StorageName = NewStorageName()

	o := &options{appOpts: []app.Option{app.WithLogger(log.New(io.Discard, "", 0))}}
	for _, opt := range opts {
		opt(o)
	}

	ctx := context.Background()
	a, err := app.New(ctx, cfg, o.appOpts...)
	require.NoError(t, err, "compose catalog")
	t.Cleanup(func() { a.Close() })

	require.NoError(t, a.Catalog().InitializeSchema(ctx), "initialize catalog %s", cfg.StorageName)

	server := httptest.NewServer(a.Handler())
	t.Cleanup(server.Close)

	return &Harness{
		URL:    server.URL,
		app:    a,
		server: server,
	}
}

// Client returns an HTTP client for the test server.
func (h *Harness) Client() *http.Client {
	return h.server.Client()
}

// Catalog returns the Catalog behind the server.
func (h *Harness) Catalog() types.Catalog {
	return h.app.Catalog()
}

// StorageName returns the storage instance this harness is bound to.
func (h *Harness) StorageName() string {
	return h.app.StorageName()
}

// App returns the composed application.
func (h *Harness) App() *app.App {
	return h.app
}
