package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tradesmith/tradesmith-cli/internal/cli"
	"github.com/tradesmith/tradesmith-cli/pkg/tui"
)

// NewEditCommand creates the edit command
func NewEditCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "edit <collection> [trade-id]",
		Short: "Open the interactive trade editor",
		Long: `Open the grid editor for a collection. With a trade-id, the editor is
pre-populated with that trade for editing; without one it starts empty.

Examples:
  # Create a new trade in the magic shop
  tradesmith edit magic_shop

  # Edit an existing trade
  tradesmith edit magic_shop flame_sword`,
		Args: cobra.RangeArgs(1, 2),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if err := requireProject(); err != nil {
				return err
			}
			return requireAdmin()
		},
		RunE: runEdit,
	}
}

func runEdit(cmd *cobra.Command, args []string) error {
	name := args[0]
	tradeID := ""
	if len(args) > 1 {
		tradeID = args[1]
		if err := cli.ValidateTradeID(tradeID); err != nil {
			return err
		}
	}

	env, err := loadEnvironment()
	if err != nil {
		return err
	}

	collection := env.Registry.Get(name)
	if collection == nil {
		return fmt.Errorf("trade collection '%s' not found", name)
	}
	if tradeID != "" && !collection.HasTrade(tradeID) {
		return fmt.Errorf("trade '%s' not found in collection '%s'", tradeID, name)
	}

	return tui.Launch(env.Registry, env.Catalog, env.Log, tui.StartEditor, name, tradeID)
}
