package types

import (
	"errors"
	"strings"
)

// Config selects a backend and the storage instance it binds to.
type Config struct {
	Backend     string `json:"backend" yaml:"backend"`
	StorageName string `json:"storage_name" yaml:"storage_name"`
}

// Supported backend names.
const (
	BackendSQLite = "sqlite"
)

// Config validation errors.
var (
	ErrBackendEmpty      = errors.New("backend must not be empty")
	ErrBackendUnknown    = errors.New("unknown backend")
	ErrStorageNameEmpty  = errors.New("storage name must not be empty")
	ErrStorageNameFormat = errors.New("storage name must not contain '/', '?' or '#'")
)

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	BackendSQLite: true,
}

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	if strings.TrimSpace(c.StorageName) == "" {
		return ErrStorageNameEmpty
	}
	if strings.ContainsAny(c.StorageName, "/?#") {
		return ErrStorageNameFormat
	}
	return nil
}
