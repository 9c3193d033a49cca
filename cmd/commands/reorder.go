package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tradesmith/tradesmith-cli/pkg/tui"
)

// NewReorderCommand creates the reorder command
func NewReorderCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reorder <collection>",
		Short: "Open the trade reorder grid",
		Long: `Open the reorder grid for a collection. Moves apply immediately and are
saved as they happen.

Examples:
  tradesmith reorder magic_shop`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if err := requireProject(); err != nil {
				return err
			}
			return requireAdmin()
		},
		RunE: runReorder,
	}
}

func runReorder(cmd *cobra.Command, args []string) error {
	name := args[0]

	env, err := loadEnvironment()
	if err != nil {
		return err
	}

	if !env.Registry.Has(name) {
		return fmt.Errorf("trade collection '%s' not found", name)
	}

	return tui.Launch(env.Registry, env.Catalog, env.Log, tui.StartReorder, name, "")
}
