package session

import (
	"fmt"

	"github.com/tradesmith/tradesmith-cli/pkg/models"
)

// Management grid layout: header and control row on top, a separator row,
// then up to 36 trade entries. Trades beyond capacity are silently
// truncated.
const (
	managerGridSize    = 54
	managerSlotHeader  = 0
	managerSlotAdd     = 7
	managerSlotClose   = 8
	managerSlotReorder = 9
	managerFirstTrade  = 18
	managerCapacity    = 36
)

const (
	actionManagerAdd     = "manager_add_trade"
	actionManagerClose   = "manager_close"
	actionManagerReorder = "manager_reorder"
)

// ManagerSession is a read-only management view over one collection.
type ManagerSession struct {
	OwnerID    string
	Collection string
	Grid       *Grid
}

// OpenManager starts a management session for the named collection.
func (r *Router) OpenManager(userID, collection string) {
	col := r.registry.Get(collection)
	if col == nil {
		r.platform.Notify(userID, "<red>Trade collection '"+collection+"' not found.")
		return
	}

	session := &ManagerSession{OwnerID: userID, Collection: collection}
	r.managers.Store(userID, session)
	r.showManagerGrid(session)
}

func (r *Router) showManagerGrid(session *ManagerSession) {
	col := r.registry.Get(session.Collection)
	if col == nil {
		return
	}

	g := NewGrid("<gradient:#FF6B6B:#4ECDC4>Trade Manager: "+session.Collection+"</gradient>", managerGridSize)

	g.SetItem(managerSlotHeader, &Stack{
		Name: "<gradient:#FFD700:#FF8C00>Trade Manager</gradient>",
		Lore: []string{
			"<gray>Managing trades for: <aqua>" + session.Collection,
			fmt.Sprintf("<gray>Total trades: <yellow>%d", col.TradeCount()),
			"",
			"<green>Primary click to edit trade",
			"<green>Secondary click to delete trade",
			"<green>Shift+secondary to get output item",
		},
		Placeholder: true,
	})

	g.SetItem(managerSlotAdd, controlButton("<gradient:#00FF00:#32CD32>Add New Trade</gradient>", actionManagerAdd))
	g.SetItem(managerSlotClose, controlButton("<gradient:#FF4444:#CC0000>Close Manager</gradient>", actionManagerClose))
	g.SetItem(managerSlotReorder, controlButton("<gradient:#FFA500:#FF8C00>Reorder Trades</gradient>", actionManagerReorder))

	for i := 10; i < managerFirstTrade; i++ {
		g.SetItem(i, backgroundPane())
	}

	for i, trade := range col.Trades {
		if i >= managerCapacity {
			break
		}
		g.SetItem(managerFirstTrade+i, r.managerTradeDisplay(trade, i+1))
	}

	session.Grid = g
	r.platform.ShowGrid(session.OwnerID, g)
}

func (r *Router) managerTradeDisplay(trade models.TradeRecord, position int) *Stack {
	display := r.items.StackFor(trade.Output)
	if display == nil {
		display = &Stack{Item: trade.Output.Item}
	}
	display.Amount = 1
	display.Placeholder = true
	display.Name = fmt.Sprintf("<gradient:#4ECDC4:#44A08D>%d. %s</gradient>", position, trade.ID)

	lore := []string{
		"",
		fmt.Sprintf("<aqua>Input 1: <white>%s x%d", trade.Input1.Item, trade.Input1.Amount),
	}
	if trade.HasSecondInput() {
		lore = append(lore, fmt.Sprintf("<aqua>Input 2: <white>%s x%d", trade.Input2.Item, trade.Input2.Amount))
	}
	lore = append(lore,
		fmt.Sprintf("<green>Output: <white>%s x%d", trade.Output.Item, trade.Output.Amount),
		"",
		"<gray>Primary: edit - Secondary: delete - Shift+secondary: get output",
	)
	display.Lore = lore
	return display
}

func (r *Router) handleManagerClick(session *ManagerSession, ev ClickEvent) {
	if ev.Area != AreaGrid {
		return
	}

	if stack := session.Grid.Item(ev.Slot); stack != nil && stack.Action != "" {
		switch stack.Action {
		case actionManagerAdd:
			r.platform.CloseGrid(session.OwnerID)
			r.OpenEditor(session.OwnerID, session.Collection, "")
		case actionManagerClose:
			r.platform.CloseGrid(session.OwnerID)
		case actionManagerReorder:
			r.platform.CloseGrid(session.OwnerID)
			r.OpenReorder(session.OwnerID, session.Collection)
		}
		return
	}

	if ev.Slot >= managerFirstTrade && ev.Slot < managerGridSize {
		r.handleManagerTradeClick(session, ev.Slot-managerFirstTrade, ev.Kind)
	}
}

func (r *Router) handleManagerTradeClick(session *ManagerSession, index int, kind ClickKind) {
	col := r.registry.Get(session.Collection)
	if col == nil || index >= col.TradeCount() {
		return
	}
	trade := col.Trades[index]

	switch kind {
	case ClickPrimary:
		r.platform.CloseGrid(session.OwnerID)
		r.OpenEditor(session.OwnerID, session.Collection, trade.ID)
	case ClickSecondary:
		r.registry.RemoveTrade(session.Collection, trade.ID)
		r.platform.Notify(session.OwnerID, "<yellow>Deleted trade: <white>"+trade.ID)
		r.showManagerGrid(session)
	case ClickShiftSecondary:
		// Administrative shortcut: grant the output item without consuming
		// inputs. Not a trade execution.
		output := r.items.StackFor(trade.Output)
		if output == nil {
			r.platform.Notify(session.OwnerID, "<red>Failed to create output item for trade: "+trade.ID)
			return
		}
		r.platform.Storage(session.OwnerID).Add(*output)
		r.platform.Notify(session.OwnerID, "<green>Received output item from trade: <white>"+trade.ID)
	}
}
