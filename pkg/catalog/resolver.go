package catalog

import (
	"github.com/rs/zerolog"

	"github.com/tradesmith/tradesmith-cli/pkg/models"
	"github.com/tradesmith/tradesmith-cli/pkg/session"
)

// StackSource adapts the catalog to the session router's item resolver:
// trade items become placeable stacks carrying the resolved display name
// and lore.
type StackSource struct {
	Catalog *Catalog
	Log     zerolog.Logger
}

func (s *StackSource) StackFor(item models.TradeItem) *session.Stack {
	resolved, err := s.Catalog.Resolve(item.Item)
	if err != nil {
		s.Log.Warn().Err(err).Str("item", item.Item).Msg("trade item does not resolve")
		return nil
	}
	return &session.Stack{
		Item:   resolved.Identifier,
		Name:   resolved.Name,
		Lore:   resolved.Lore,
		Amount: item.Amount,
	}
}
