package cli

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/catalog/internal/app"
	"github.com/mesh-intelligence/catalog/internal/config"
)

func newServeCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the item API",
		Long: `Serve composes the catalog for the selected environment and serves the
item API until interrupted.

Environment, storage name, and listen address come from, in order of
precedence: flags, config.yaml, CATALOG_* environment variables, defaults.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, root)
			if err != nil {
				return err
			}

			log.SetPrefix("[CATALOG] ")
			logger := log.New(cmd.ErrOrStderr(), log.Prefix(), log.Flags())

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a, err := app.New(ctx, cfg, app.WithLogger(logger))
			if err != nil {
				return sysErr(fmt.Errorf("start catalog: %w", err))
			}
			if err := a.Run(ctx); err != nil {
				return sysErr(err)
			}
			return nil
		},
	}

	cmd.Flags().String("environment", "", "runtime environment: Production, Development, or Testing")
	cmd.Flags().String("storage-name", config.DefaultStorageName, "name of the storage instance to bind")
	cmd.Flags().String("addr", config.DefaultAddr, "listen address")
	return cmd
}
