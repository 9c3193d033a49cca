package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tradesmith/tradesmith-cli/pkg/tui"
)

// NewManageCommand creates the manage command
func NewManageCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "manage <collection>",
		Short: "Open the trade manager grid",
		Long: `Open the manager grid for a collection: browse every trade, edit or
delete entries, grant output items, or jump to the reorder view.

Examples:
  tradesmith manage magic_shop`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if err := requireProject(); err != nil {
				return err
			}
			return requireAdmin()
		},
		RunE: runManage,
	}
}

func runManage(cmd *cobra.Command, args []string) error {
	name := args[0]

	env, err := loadEnvironment()
	if err != nil {
		return err
	}

	if !env.Registry.Has(name) {
		return fmt.Errorf("trade collection '%s' not found", name)
	}

	return tui.Launch(env.Registry, env.Catalog, env.Log, tui.StartManager, name, "")
}
