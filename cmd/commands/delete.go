package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tradesmith/tradesmith-cli/internal/cli"
)

// NewDeleteCommand creates the delete command
func NewDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a trade collection",
		Long: `Delete a trade collection and its file. Asks for confirmation unless
--yes is set.

Examples:
  # Delete a collection
  tradesmith delete potion_shop`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if err := requireProject(); err != nil {
				return err
			}
			return requireAdmin()
		},
		RunE: runDelete,
	}
}

func runDelete(cmd *cobra.Command, args []string) error {
	name := args[0]

	env, err := loadEnvironment()
	if err != nil {
		return err
	}

	collection := env.Registry.Get(name)
	if collection == nil {
		return fmt.Errorf("trade collection '%s' not found", name)
	}

	prompt := fmt.Sprintf("Delete collection '%s' with %d trades?", name, collection.TradeCount())
	confirmed, err := cli.Confirm(prompt, false)
	if err != nil {
		return err
	}
	if !confirmed {
		cli.PrintInfo("Cancelled")
		return nil
	}

	env.Registry.Delete(name)
	cli.PrintSuccess("Deleted trade collection '%s'", name)
	return nil
}
