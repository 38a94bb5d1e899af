// Package app composes the catalog: it binds a Catalog to the configured
// storage instance, initializes it according to the environment, and serves
// the HTTP API over it.
package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/mesh-intelligence/catalog/internal/config"
	"github.com/mesh-intelligence/catalog/internal/handler"
	"github.com/mesh-intelligence/catalog/pkg/sqlite"
	"github.com/mesh-intelligence/catalog/pkg/types"
)

const shutdownTimeout = 10 * time.Second

// App owns a Catalog and the HTTP handler built over it.
type App struct {
	cfg     config.Config
	logger  *log.Logger
	catalog types.Catalog
	handler http.Handler
}

// Option customizes App construction.
type Option func(*App)

// WithLogger sets the logger used for request and failure logging.
func WithLogger(logger *log.Logger) Option {
	return func(a *App) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// New opens the Catalog bound to cfg.StorageName and builds the HTTP handler
// over it. In Development and Testing the schema is initialized before New
// returns; on failure the Catalog is closed and the error returned.
func New(ctx context.Context, cfg config.Config, opts ...Option) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	a := &App{cfg: cfg, logger: log.Default()}
	for _, opt := range opts {
		opt(a)
	}

	catalog, err := sqlite.Open(cfg.StorageConfig())
	if err != nil {
		return nil, fmt.Errorf("open catalog %q: %w", cfg.StorageName, err)
	}

	if cfg.Environment.EagerInit() {
		if err := catalog.InitializeSchema(ctx); err != nil {
			catalog.Close()
			return nil, fmt.Errorf("initialize catalog %q: %w", cfg.StorageName, err)
		}
	}

	a.catalog = catalog
	a.handler = handler.NewRouter(catalog, a.logger)
	return a, nil
}

// Handler returns the HTTP handler serving the item API.
func (a *App) Handler() http.Handler {
	return a.handler
}

// Catalog returns the Catalog the handlers use.
func (a *App) Catalog() types.Catalog {
	return a.catalog
}

// StorageName returns the name of the bound storage instance.
func (a *App) StorageName() string {
	return a.catalog.StorageName()
}

// Environment returns the environment the App was composed for.
func (a *App) Environment() config.Environment {
	return a.cfg.Environment
}

// Run listens on the configured address and serves until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", a.cfg.Addr)
	if err != nil {
		a.Close()
		return fmt.Errorf("listen on %s: %w", a.cfg.Addr, err)
	}
	return a.Serve(ctx, ln)
}

// Serve initializes the schema, then serves on ln until ctx is cancelled,
// shuts down gracefully, and closes the Catalog. Initialization failure is
// returned without serving any request.
func (a *App) Serve(ctx context.Context, ln net.Listener) error {
	defer a.Close()

	if err := a.catalog.InitializeSchema(ctx); err != nil {
		ln.Close()
		return fmt.Errorf("initialize catalog %q: %w", a.StorageName(), err)
	}

	server := &http.Server{
		Handler:      a.handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	a.logger.Printf("catalog listening at %v (environment %s, storage %s)", ln.Addr(), a.cfg.Environment, a.StorageName())
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.Serve(ln)
	}()

	select {
	case <-ctx.Done():
		a.logger.Println("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		if err := <-serveErr; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve http: %w", err)
		}
		a.logger.Println("Server stopped")
		return nil
	case err := <-serveErr:
		if err == nil || errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close releases the Catalog. Safe to call more than once.
func (a *App) Close() error {
	if a.catalog == nil {
		return nil
	}
	return a.catalog.Close()
}
