package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/catalog/internal/config"
	"github.com/mesh-intelligence/catalog/internal/paths"
	"github.com/mesh-intelligence/catalog/pkg/sqlite"
)

func newInitCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default config.yaml and check storage",
		Long: `Init creates the configuration directory, writes config.yaml with the
resolved settings if it does not already exist, and checks that the
configured storage instance can be initialized.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, root)
		},
	}
}

func runInit(cmd *cobra.Command, root *rootFlags) error {
	configDir, err := paths.ResolveConfigDir(root.configDir)
	if err != nil {
		return sysErr(fmt.Errorf("resolve config dir: %w", err))
	}

	cfg, err := loadConfig(cmd, root)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return sysErr(fmt.Errorf("create config directory: %w", err))
	}

	configPath := filepath.Join(configDir, config.FileBase)
	wrote, err := config.WriteFileIfMissing(configPath, cfg)
	if err != nil {
		return sysErr(err)
	}

	if err := checkStorage(cmd.Context(), cfg); err != nil {
		return sysErr(err)
	}

	p := NewPrinter(cmd.OutOrStdout())
	if root.jsonMode {
		return p.JSON(map[string]any{
			"config":  configPath,
			"written": wrote,
			"storage": cfg.StorageName,
		})
	}
	if wrote {
		p.Success("wrote %s", configPath)
	} else {
		p.Success("kept existing %s", configPath)
	}
	p.Success("storage %q initializes cleanly", cfg.StorageName)
	return nil
}

// checkStorage opens and initializes the configured storage instance, then
// releases it.
func checkStorage(ctx context.Context, cfg config.Config) error {
	catalog, err := sqlite.Open(cfg.StorageConfig())
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer catalog.Close()

	if err := catalog.InitializeSchema(ctx); err != nil {
		return fmt.Errorf("initialize storage: %w", err)
	}
	return nil
}
