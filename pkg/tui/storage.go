package tui

import (
	"sort"

	"github.com/tradesmith/tradesmith-cli/pkg/catalog"
	"github.com/tradesmith/tradesmith-cli/pkg/models"
	"github.com/tradesmith/tradesmith-cli/pkg/session"
)

// Raw items every authoring session starts with. Custom items come from the
// catalog on top of these.
var starterItems = []struct {
	item   string
	amount int
}{
	{"diamond_sword", 1},
	{"diamond_pickaxe", 1},
	{"diamond_shovel", 1},
	{"netherite_shovel", 1},
	{"emerald", 64},
	{"diamond", 64},
	{"gold_ingot", 64},
	{"blue_ice", 16},
}

// personalStorage is the admin's working inventory: the pool of items that
// can be placed into editor slots. Items removed from slots or returned on
// abnormal close land back here.
type personalStorage struct {
	items []session.Stack
}

func newPersonalStorage(cat *catalog.Catalog) *personalStorage {
	s := &personalStorage{}
	for _, raw := range starterItems {
		s.items = append(s.items, session.Stack{Item: raw.item, Name: raw.item, Amount: raw.amount})
	}

	defs := cat.Definitions()
	sort.Slice(defs, func(i, j int) bool { return defs[i].ID < defs[j].ID })
	for _, def := range defs {
		s.items = append(s.items, session.Stack{
			Item:   models.CustomItemPrefix + def.ID,
			Name:   def.Name,
			Lore:   def.Lore,
			Amount: 1,
		})
	}
	return s
}

func (s *personalStorage) Add(st session.Stack) {
	for i := range s.items {
		if s.items[i].Item == st.Item {
			s.items[i].Amount += st.Amount
			return
		}
	}
	s.items = append(s.items, st)
}

func (s *personalStorage) Remove(st session.Stack) bool {
	for i := range s.items {
		if s.items[i].Item != st.Item || s.items[i].Amount < st.Amount {
			continue
		}
		s.items[i].Amount -= st.Amount
		if s.items[i].Amount == 0 {
			s.items = append(s.items[:i], s.items[i+1:]...)
		}
		return true
	}
	return false
}

func (s *personalStorage) Len() int {
	return len(s.items)
}

func (s *personalStorage) At(i int) *session.Stack {
	if i < 0 || i >= len(s.items) {
		return nil
	}
	return &s.items[i]
}
