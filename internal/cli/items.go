package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/catalog/internal/config"
	"github.com/mesh-intelligence/catalog/pkg/types"
)

// itemsFlags holds flags shared by the items subcommands.
type itemsFlags struct {
	server   string
	complete bool
	name     string
}

func newItemsCmd(root *rootFlags) *cobra.Command {
	flags := &itemsFlags{}

	cmd := &cobra.Command{
		Use:   "items",
		Short: "Manage items on a running catalog server",
	}
	cmd.PersistentFlags().StringVar(&flags.server, "server", config.DefaultServer, "base URL of the catalog server")

	cmd.AddCommand(
		newItemsListCmd(root),
		newItemsGetCmd(root),
		newItemsCreateCmd(root, flags),
		newItemsUpdateCmd(root, flags),
		newItemsDeleteCmd(root),
	)
	return cmd
}

// newClient resolves the server URL through the config chain and returns a
// client for it.
func newClient(cmd *cobra.Command, root *rootFlags) (*Client, error) {
	cfg, err := loadConfig(cmd, root)
	if err != nil {
		return nil, err
	}
	return NewClient(cfg.Server, nil), nil
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", types.ErrInvalidID, arg)
	}
	return id, nil
}

func newItemsListCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd, root)
			if err != nil {
				return err
			}
			items, err := client.List(cmd.Context())
			if err != nil {
				return fmt.Errorf("list items: %w", err)
			}

			p := NewPrinter(cmd.OutOrStdout())
			if root.jsonMode {
				return p.JSON(items)
			}
			p.Items(items)
			return nil
		},
	}
}

func newItemsGetCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			client, err := newClient(cmd, root)
			if err != nil {
				return err
			}
			item, err := client.Get(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("get item %d: %w", id, err)
			}

			p := NewPrinter(cmd.OutOrStdout())
			if root.jsonMode {
				return p.JSON(item)
			}
			p.Item(item)
			return nil
		},
	}
}

func newItemsCreateCmd(root *rootFlags, flags *itemsFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create an item",
		Example: `  catalog items create "Buy milk"
  catalog items create "Ship release" --complete`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd, root)
			if err != nil {
				return err
			}
			created, err := client.Create(cmd.Context(), types.Item{Name: args[0], IsComplete: flags.complete})
			if err != nil {
				return fmt.Errorf("create item: %w", err)
			}

			p := NewPrinter(cmd.OutOrStdout())
			if root.jsonMode {
				return p.JSON(created)
			}
			p.Success("created item %d", created.ID)
			return nil
		},
	}
	cmd.Flags().BoolVar(&flags.complete, "complete", false, "mark the item complete")
	return cmd
}

func newItemsUpdateCmd(root *rootFlags, flags *itemsFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace an item's name and completion flag",
		Example: `  catalog items update 3 --name "Buy oat milk"
  catalog items update 3 --complete`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			client, err := newClient(cmd, root)
			if err != nil {
				return err
			}

			// Unset flags keep the stored values.
			item, err := client.Get(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("get item %d: %w", id, err)
			}
			if cmd.Flags().Changed("name") {
				item.Name = flags.name
			}
			if cmd.Flags().Changed("complete") {
				item.IsComplete = flags.complete
			}

			if err := client.Update(cmd.Context(), id, item); err != nil {
				return fmt.Errorf("update item %d: %w", id, err)
			}

			p := NewPrinter(cmd.OutOrStdout())
			if root.jsonMode {
				return p.JSON(item)
			}
			p.Success("updated item %d", id)
			return nil
		},
	}
	cmd.Flags().StringVar(&flags.name, "name", "", "new item name")
	cmd.Flags().BoolVar(&flags.complete, "complete", false, "completion flag")
	return cmd
}

func newItemsDeleteCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			client, err := newClient(cmd, root)
			if err != nil {
				return err
			}
			if err := client.Delete(cmd.Context(), id); err != nil {
				return fmt.Errorf("delete item %d: %w", id, err)
			}

			p := NewPrinter(cmd.OutOrStdout())
			if root.jsonMode {
				return p.JSON(map[string]int64{"deleted": id})
			}
			p.Success("deleted item %d", id)
			return nil
		},
	}
}
