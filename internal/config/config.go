// Package config assembles runtime configuration for the catalog from
// environment variables, an optional config.yaml, and command-line flags.
// Precedence: flag > config.yaml > environment > default.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/catalog/pkg/types"
)

// Defaults.
const (
	DefaultStorageName = "ItemList"
	DefaultAddr        = ":8080"
	DefaultServer      = "http://localhost:8080"
)

// Config file location inside the config directory.
const (
	FileName = "config"
	FileType = "yaml"
	FileBase = "config.yaml"
)

// Keys shared by config.yaml and the flags bound to them.
const (
	KeyEnvironment = "environment"
	KeyStorageName = "storage_name"
	KeyAddr        = "addr"
	KeyServer      = "server"
)

// Config is the resolved runtime configuration.
type Config struct {
	Environment Environment `env:"CATALOG_ENVIRONMENT" envDefault:"Production" yaml:"environment"`
	StorageName string      `env:"CATALOG_STORAGE_NAME" envDefault:"ItemList" yaml:"storage_name"`
	Addr        string      `env:"CATALOG_ADDR" envDefault:":8080" yaml:"addr"`
	Server      string      `env:"CATALOG_SERVER" envDefault:"http://localhost:8080" yaml:"server"`
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		Environment: EnvironmentProduction,
		StorageName: DefaultStorageName,
		Addr:        DefaultAddr,
		Server:      DefaultServer,
	}
}

// ParseEnv loads configuration from CATALOG_* environment variables,
// falling back to defaults for unset variables.
func ParseEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// ReadFile reads config.yaml from configDir. A missing file is not an error;
// the returned Viper then only carries whatever flags get bound to it.
func ReadFile(configDir string) (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigName(FileName)
	v.SetConfigType(FileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// Load resolves the configuration: environment variables first, then any key
// set in v (from config.yaml or a changed flag). v may be nil.
func Load(v *viper.Viper) (Config, error) {
	cfg, err := ParseEnv()
	if err != nil {
		return Config{}, err
	}

	if v != nil {
		if v.IsSet(KeyEnvironment) {
			e, err := ParseEnvironment(v.GetString(KeyEnvironment))
			if err != nil {
				return Config{}, err
			}
			cfg.Environment = e
		}
		if v.IsSet(KeyStorageName) {
			cfg.StorageName = v.GetString(KeyStorageName)
		}
		if v.IsSet(KeyAddr) {
			cfg.Addr = v.GetString(KeyAddr)
		}
		if v.IsSet(KeyServer) {
			cfg.Server = v.GetString(KeyServer)
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field.
func (c Config) Validate() error {
	if _, err := ParseEnvironment(string(c.Environment)); err != nil {
		return err
	}
	if err := c.StorageConfig().Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(c.Addr) == "" {
		return fmt.Errorf("listen address must not be empty")
	}
	return nil
}

// StorageConfig returns the backend configuration for the catalog store.
func (c Config) StorageConfig() types.Config {
	return types.Config{
		Backend:     types.BackendSQLite,
		StorageName: c.StorageName,
	}
}

// WriteFileIfMissing writes cfg to path as YAML unless the file already
// exists. Returns true if it wrote the file.
func WriteFileIfMissing(path string, cfg Config) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat config file: %w", err)
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, fmt.Errorf("write config: %w", err)
	}
	return true, nil
}
