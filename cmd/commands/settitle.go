package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tradesmith/tradesmith-cli/internal/cli"
)

// NewSetTitleCommand creates the set-title command
func NewSetTitleCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-title <name> <title>",
		Short: "Change a collection's display title",
		Long: `Change the display title shown above a collection's grid. Markup tags
like <gradient:#9146FF:#00D4FF> are allowed.

Examples:
  tradesmith set-title magic_shop "Arcane Exchange"`,
		Args: cobra.ExactArgs(2),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if err := requireProject(); err != nil {
				return err
			}
			return requireAdmin()
		},
		RunE: runSetTitle,
	}
}

func runSetTitle(cmd *cobra.Command, args []string) error {
	name, title := args[0], args[1]

	env, err := loadEnvironment()
	if err != nil {
		return err
	}

	if !env.Registry.Has(name) {
		return fmt.Errorf("trade collection '%s' not found", name)
	}

	env.Registry.SetTitle(name, title)
	cli.PrintSuccess("Updated title of '%s'", name)
	return nil
}
