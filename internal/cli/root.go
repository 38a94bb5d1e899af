// Package cli implements the catalog command-line interface: the server
// entry point, config initialization, and an HTTP client for the item API.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/catalog/internal/config"
	"github.com/mesh-intelligence/catalog/internal/paths"
	"github.com/mesh-intelligence/catalog/pkg/catalog"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	jsonMode  bool
}

// systemError marks a failure of the environment rather than of the
// user's input: storage, network, or filesystem.
type systemError struct {
	err error
}

func (e *systemError) Error() string { return e.err.Error() }
func (e *systemError) Unwrap() error { return e.err }

func sysErr(err error) error {
	if err == nil {
		return nil
	}
	return &systemError{err: err}
}

// NewRootCmd creates the top-level "catalog" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:     "catalog",
		Short:   "A minimal item catalog service",
		Long:    "Catalog serves CRUD access to items backed by a named in-memory\nstorage instance, and talks to a running server from the command line.",
		Version: catalog.Version,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().BoolVar(&flags.jsonMode, "json", false, "output in JSON format")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(flags))
	root.AddCommand(newServeCmd(flags))
	root.AddCommand(newItemsCmd(flags))

	return root
}

// Run executes the CLI with args and returns the process exit code.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		NewPrinter(stderr).Error(err)
		return exitCode(err)
	}
	return exitSuccess
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	os.Exit(Run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// exitCode maps an error to a process exit code.
func exitCode(err error) int {
	var se *systemError
	switch {
	case err == nil:
		return exitSuccess
	case errors.As(err, &se):
		return exitSysError
	default:
		return exitUserError
	}
}

// loadConfig resolves the runtime configuration for cmd: CATALOG_* env,
// then config.yaml in the resolved config dir, then any of cmd's flags
// named after a config key that the user set.
func loadConfig(cmd *cobra.Command, flags *rootFlags) (config.Config, error) {
	dir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return config.Config{}, sysErr(fmt.Errorf("resolve config dir: %w", err))
	}

	v, err := config.ReadFile(dir)
	if err != nil {
		return config.Config{}, err
	}
	if err := bindFlags(v, cmd); err != nil {
		return config.Config{}, err
	}

	return config.Load(v)
}

// flagKeys maps flag names to config keys.
var flagKeys = map[string]string{
	"environment":  config.KeyEnvironment,
	"storage-name": config.KeyStorageName,
	"addr":         config.KeyAddr,
	"server":       config.KeyServer,
}

func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	for name, key := range flagKeys {
		f := cmd.Flags().Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}
