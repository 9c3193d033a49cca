package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tradesmith/tradesmith-cli/internal/cli"
)

// NewRenameCommand creates the rename command
func NewRenameCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <old> <new>",
		Short: "Rename a trade collection",
		Long: `Rename a trade collection. The old file is removed and the collection is
rewritten under the new name; trades and title are preserved.

Examples:
  tradesmith rename potion_shop alchemy_shop`,
		Args: cobra.ExactArgs(2),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if err := requireProject(); err != nil {
				return err
			}
			return requireAdmin()
		},
		RunE: runRename,
	}
}

func runRename(cmd *cobra.Command, args []string) error {
	oldName, newName := args[0], args[1]
	if err := cli.ValidateCollectionName(newName); err != nil {
		return err
	}

	env, err := loadEnvironment()
	if err != nil {
		return err
	}

	if !env.Registry.Has(oldName) {
		return fmt.Errorf("trade collection '%s' not found", oldName)
	}
	if env.Registry.Has(newName) {
		return fmt.Errorf("trade collection '%s' already exists", newName)
	}

	env.Registry.Rename(oldName, newName)
	cli.PrintSuccess("Renamed trade collection '%s' to '%s'", oldName, newName)
	return nil
}
