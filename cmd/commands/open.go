package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tradesmith/tradesmith-cli/internal/cli"
	"github.com/tradesmith/tradesmith-cli/pkg/exchange"
)

// NewOpenCommand creates the open command
func NewOpenCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "open <collection>",
		Short: "Browse a collection's trades as executable offers",
		Long: `Open a trade collection for trading: every trade is resolved against the
item catalog and listed as an offer. Trades that reference unknown items are
skipped.

Examples:
  # Browse the magic shop
  tradesmith open magic_shop`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if err := requireProject(); err != nil {
				return err
			}
			return requireUse()
		},
		RunE: runOpen,
	}
}

func runOpen(cmd *cobra.Command, args []string) error {
	name := args[0]

	env, err := loadEnvironment()
	if err != nil {
		return err
	}

	collection := env.Registry.Get(name)
	if collection == nil {
		return fmt.Errorf("trade collection '%s' not found", name)
	}
	if collection.TradeCount() == 0 {
		return fmt.Errorf("collection '%s' has no trades configured", name)
	}

	offers, err := exchange.BuildOffers(collection, env.Catalog, env.Log)
	if err != nil {
		if errors.Is(err, exchange.ErrNothingAvailable) {
			return fmt.Errorf("collection '%s' has nothing available to trade", name)
		}
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s\n\n", cli.StripMarkup(collection.Title))

	table := cli.NewTableFormatter(out)
	table.Header("#", "Give", "And", "Receive")
	for i, offer := range offers {
		and := "-"
		if offer.Input2 != nil {
			and = formatOfferItem(*offer.Input2)
		}
		table.Row(
			fmt.Sprintf("%d", i+1),
			formatOfferItem(offer.Input1),
			and,
			formatOfferItem(offer.Output),
		)
	}
	table.Flush()

	fmt.Fprintf(out, "\n%d offers available\n", len(offers))
	return nil
}

func formatOfferItem(item exchange.OfferItem) string {
	return fmt.Sprintf("%dx %s", item.Amount, cli.StripMarkup(item.Item.Name))
}
