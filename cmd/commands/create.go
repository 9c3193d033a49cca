package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tradesmith/tradesmith-cli/internal/cli"
)

// NewCreateCommand creates the create command
func NewCreateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "create <name> [title]",
		Short: "Create a new trade collection",
		Long: `Create a new, empty trade collection. The title defaults to the name
when omitted; titles may carry markup tags for the grid view.

Examples:
  # Create a collection
  tradesmith create potion_shop

  # Create with a display title
  tradesmith create potion_shop "Potion Exchange"`,
		Args: cobra.RangeArgs(1, 2),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if err := requireProject(); err != nil {
				return err
			}
			return requireAdmin()
		},
		RunE: runCreate,
	}
}

func runCreate(cmd *cobra.Command, args []string) error {
	name := args[0]
	if err := cli.ValidateCollectionName(name); err != nil {
		return err
	}

	title := name
	if len(args) > 1 {
		title = args[1]
	}

	env, err := loadEnvironment()
	if err != nil {
		return err
	}

	if env.Registry.Has(name) {
		return fmt.Errorf("trade collection '%s' already exists", name)
	}

	env.Registry.Create(name, title)
	cli.PrintSuccess("Created trade collection '%s'", name)
	return nil
}
