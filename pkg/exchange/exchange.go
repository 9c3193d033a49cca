package exchange

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/tradesmith/tradesmith-cli/pkg/catalog"
	"github.com/tradesmith/tradesmith-cli/pkg/models"
)

// ErrNothingAvailable means a collection has trades but none of them
// resolve into a usable offer.
var ErrNothingAvailable = errors.New("no resolvable trades available")

// Resolver is the slice of the item catalog the exchange needs.
type Resolver interface {
	Resolve(identifier string) (*catalog.Item, error)
}

// OfferItem is one resolved side of an offer.
type OfferItem struct {
	Item   catalog.Item
	Amount int
}

// Offer is an executable exchange: resolved inputs and output for one trade.
type Offer struct {
	TradeID string
	Input1  OfferItem
	Input2  *OfferItem
	Output  OfferItem
}

// BuildOffers resolves every trade in the collection into an offer. A trade
// whose inputs or output fail to resolve is skipped with a diagnostic; it
// never aborts the rest of the collection. Zero resolvable trades is
// ErrNothingAvailable rather than an empty interaction surface.
func BuildOffers(col *models.TradeCollection, items Resolver, log zerolog.Logger) ([]Offer, error) {
	offers := make([]Offer, 0, col.TradeCount())

	for _, trade := range col.Trades {
		offer, err := buildOffer(trade, items)
		if err != nil {
			log.Warn().Err(err).Str("collection", col.Name).Str("trade", trade.ID).Msg("skipping unresolvable trade")
			continue
		}
		offers = append(offers, offer)
	}

	if len(offers) == 0 {
		return nil, ErrNothingAvailable
	}
	return offers, nil
}

func buildOffer(trade models.TradeRecord, items Resolver) (Offer, error) {
	input1, err := resolveItem(trade.Input1, items)
	if err != nil {
		return Offer{}, err
	}
	output, err := resolveItem(trade.Output, items)
	if err != nil {
		return Offer{}, err
	}

	offer := Offer{TradeID: trade.ID, Input1: input1, Output: output}
	if trade.HasSecondInput() {
		input2, err := resolveItem(*trade.Input2, items)
		if err != nil {
			return Offer{}, err
		}
		offer.Input2 = &input2
	}
	return offer, nil
}

func resolveItem(item models.TradeItem, items Resolver) (OfferItem, error) {
	resolved, err := items.Resolve(item.Item)
	if err != nil {
		return OfferItem{}, err
	}
	return OfferItem{Item: *resolved, Amount: item.Amount}, nil
}
