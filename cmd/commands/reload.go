package commands

import (
	"github.com/spf13/cobra"

	"github.com/tradesmith/tradesmith-cli/internal/cli"
)

// NewReloadCommand creates the reload command
func NewReloadCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reload",
		Short: "Reload collections and items from disk",
		Long: `Re-read every trade collection and the item catalog from disk,
discarding nothing on disk. Useful after editing YAML files by hand.

Examples:
  tradesmith reload`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if err := requireProject(); err != nil {
				return err
			}
			return requireAdmin()
		},
		RunE: runReload,
	}
}

func runReload(cmd *cobra.Command, args []string) error {
	env, err := loadEnvironment()
	if err != nil {
		return err
	}

	cli.PrintSuccess("Reloaded %d collections and %d custom items",
		env.Registry.Count(), len(env.Catalog.Definitions()))
	return nil
}
