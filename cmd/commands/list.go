package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tradesmith/tradesmith-cli/internal/cli"
)

// ListResult represents the output structure for list command
type ListResult struct {
	Items []ListItem `json:"items" yaml:"items"`
	Count int        `json:"count" yaml:"count"`
}

// ListItem represents a single collection in the list
type ListItem struct {
	Name   string `json:"name" yaml:"name"`
	Title  string `json:"title" yaml:"title"`
	Trades int    `json:"trades" yaml:"trades"`
}

// NewListCommand creates the list command
func NewListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List trade collections",
		Long: `List all trade collections in the current project.

Examples:
  # List all collections
  tradesmith list

  # List collections with JSON output
  tradesmith list -o json`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return requireProject()
		},
		RunE: runList,
	}
}

func runList(cmd *cobra.Command, args []string) error {
	env, err := loadEnvironment()
	if err != nil {
		return err
	}

	outputFormat, _ := cmd.Flags().GetString("output")

	var result ListResult
	for _, name := range env.Registry.ListNames() {
		collection := env.Registry.Get(name)
		if collection == nil {
			continue
		}
		result.Items = append(result.Items, ListItem{
			Name:   collection.Name,
			Title:  cli.StripMarkup(collection.Title),
			Trades: collection.TradeCount(),
		})
	}
	result.Count = len(result.Items)

	switch outputFormat {
	case "json", "yaml":
		return cli.OutputResults(cmd.OutOrStdout(), outputFormat, result)
	default:
		return outputListText(cmd, result)
	}
}

func outputListText(cmd *cobra.Command, result ListResult) error {
	if result.Count == 0 {
		cli.PrintInfo("No trade collections found")
		return nil
	}

	table := cli.NewTableFormatter(cmd.OutOrStdout())
	table.Header("Name", "Title", "Trades")
	for _, item := range result.Items {
		table.Row(item.Name, item.Title, fmt.Sprintf("%d", item.Trades))
	}
	table.Flush()

	fmt.Fprintf(cmd.OutOrStdout(), "\nTotal: %d collections\n", result.Count)
	return nil
}
