package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/tradesmith/tradesmith-cli/internal/cli"
	"github.com/tradesmith/tradesmith-cli/pkg/models"
	"github.com/tradesmith/tradesmith-cli/pkg/store"
)

var showCopy bool

// NewShowCommand creates the show command
func NewShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <collection>",
		Short: "Display a trade collection",
		Long: `Display the trades of a collection.

Examples:
  # Show a collection
  tradesmith show magic_shop

  # Copy the collection's YAML to the clipboard
  tradesmith show magic_shop --copy

  # Output as JSON
  tradesmith show magic_shop -o json`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return requireProject()
		},
		RunE: runShow,
	}

	cmd.Flags().BoolVar(&showCopy, "copy", false, "Copy the collection's YAML to the clipboard")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	name := args[0]

	env, err := loadEnvironment()
	if err != nil {
		return err
	}

	collection := env.Registry.Get(name)
	if collection == nil {
		return fmt.Errorf("trade collection '%s' not found", name)
	}

	if showCopy {
		path := filepath.Join(store.TradesmithDir, store.TradesDir, name+".yaml")
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read collection file: %w", err)
		}
		if err := clipboard.WriteAll(string(content)); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		cli.PrintSuccess("Copied %s to clipboard (%d bytes)", name, len(content))
		return nil
	}

	outputFormat, _ := cmd.Flags().GetString("output")
	switch outputFormat {
	case "json", "yaml":
		return cli.OutputResults(cmd.OutOrStdout(), outputFormat, collection)
	default:
		return outputShowText(cmd, collection)
	}
}

func outputShowText(cmd *cobra.Command, collection *models.TradeCollection) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (%s)\n", collection.Name, cli.StripMarkup(collection.Title))

	if collection.TradeCount() == 0 {
		cli.PrintInfo("No trades configured")
		return nil
	}

	table := cli.NewTableFormatter(out)
	table.Header("#", "Trade ID", "Input 1", "Input 2", "Output")
	for i, trade := range collection.Trades {
		input2 := "-"
		if trade.Input2 != nil {
			input2 = formatTradeItem(*trade.Input2)
		}
		table.Row(
			fmt.Sprintf("%d", i+1),
			trade.ID,
			formatTradeItem(trade.Input1),
			input2,
			formatTradeItem(trade.Output),
		)
	}
	table.Flush()
	return nil
}

func formatTradeItem(item models.TradeItem) string {
	return fmt.Sprintf("%dx %s", item.Amount, item.Item)
}
