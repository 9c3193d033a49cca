package session

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tradesmith/tradesmith-cli/pkg/models"
)

// Reorder grid layout: up to nine trade entries across the top row, move-up
// buttons beneath each movable entry, move-down buttons below those. The
// instructions header lives below the button rows so a full entry row never
// collides with it.
const (
	reorderGridSize     = 54
	reorderCapacity     = 9
	reorderUpRowStart   = 9
	reorderDownRowStart = 18
	reorderSlotHeader   = 31
	reorderSlotDone     = 52
	reorderSlotAdd      = 53
)

const (
	actionReorderDone    = "done"
	actionReorderAdd     = "add_trade"
	actionMoveUpPrefix   = "move_up_"
	actionMoveDownPrefix = "move_down_"
)

// ReorderSession is a read/move-only view over one collection. Every move
// persists immediately, so there is no unsaved state to roll back; any way
// of leaving the grid returns the user to the manager.
type ReorderSession struct {
	OwnerID         string
	Collection      string
	ClosingNormally bool
	Grid            *Grid
}

// OpenReorder starts a reorder session for the named collection.
func (r *Router) OpenReorder(userID, collection string) {
	col := r.registry.Get(collection)
	if col == nil {
		r.platform.Notify(userID, "<red>Trade collection '"+collection+"' not found.")
		return
	}

	session := &ReorderSession{OwnerID: userID, Collection: collection}
	r.reorders.Store(userID, session)
	r.showReorderGrid(session)
}

func (r *Router) showReorderGrid(session *ReorderSession) {
	col := r.registry.Get(session.Collection)
	if col == nil {
		return
	}

	g := NewGrid("<gradient:#FFD700:#FF8C00>Reorder Trades: "+session.Collection+"</gradient>", reorderGridSize)

	g.SetItem(reorderSlotHeader, &Stack{
		Name: "<gradient:#4ECDC4:#44A08D>Reorder Instructions</gradient>",
		Lore: []string{
			"<yellow>How to reorder trades:",
			"<gray>Primary click an entry to move it up",
			"<gray>Secondary click an entry to move it down",
			"<gray>Click <gold>Add New Trade</gold> to create new",
			"<gray>Click <green>Done</green> when finished",
		},
		Placeholder: true,
	})

	for i, trade := range col.Trades {
		if i >= reorderCapacity {
			break
		}
		g.SetItem(i, r.reorderTradeDisplay(trade, i+1))
		if i > 0 {
			g.SetItem(reorderUpRowStart+i, controlButton(
				"<gradient:#00FF00:#32CD32>Move Up</gradient>", fmt.Sprintf("%s%d", actionMoveUpPrefix, i)))
		}
		if i < col.TradeCount()-1 {
			g.SetItem(reorderDownRowStart+i, controlButton(
				"<gradient:#FF4444:#CC0000>Move Down</gradient>", fmt.Sprintf("%s%d", actionMoveDownPrefix, i)))
		}
	}

	g.SetItem(reorderSlotDone, controlButton("<gradient:#00FF00:#32CD32>Done</gradient>", actionReorderDone))
	g.SetItem(reorderSlotAdd, controlButton("<gradient:#FFD700:#FFA500>Add New Trade</gradient>", actionReorderAdd))

	session.Grid = g
	r.platform.ShowGrid(session.OwnerID, g)
}

func (r *Router) reorderTradeDisplay(trade models.TradeRecord, position int) *Stack {
	display := r.items.StackFor(trade.Output)
	if display == nil {
		display = &Stack{Item: trade.Output.Item}
	}
	display.Amount = 1
	display.Placeholder = true
	display.Name = fmt.Sprintf("<gradient:#FFD700:#FF8C00>%d. %s</gradient>", position, trade.ID)

	lore := []string{
		"",
		fmt.Sprintf("<aqua>Input: <white>%s x%d", trade.Input1.Item, trade.Input1.Amount),
	}
	if trade.HasSecondInput() {
		lore = append(lore, fmt.Sprintf("<aqua>Input 2: <white>%s x%d", trade.Input2.Item, trade.Input2.Amount))
	}
	lore = append(lore, "", "<gray>Use the buttons below to reorder.")
	display.Lore = lore
	return display
}

func (r *Router) handleReorderClick(session *ReorderSession, ev ClickEvent) {
	if ev.Area != AreaGrid {
		return
	}

	stack := session.Grid.Item(ev.Slot)
	if stack == nil {
		return
	}

	// Entry cells double as move targets: primary moves the trade one
	// position earlier, secondary one position later.
	if ev.Slot < reorderCapacity && stack.Action == "" {
		switch ev.Kind {
		case ClickPrimary:
			r.moveTrade(session, ev.Slot, ev.Slot-1)
		case ClickSecondary:
			r.moveTrade(session, ev.Slot, ev.Slot+1)
		}
		return
	}

	switch {
	case stack.Action == actionReorderDone:
		session.ClosingNormally = true
		r.platform.CloseGrid(session.OwnerID)
		r.platform.Notify(session.OwnerID, "<green>Trade reordering completed!")
		r.OpenManager(session.OwnerID, session.Collection)
	case stack.Action == actionReorderAdd:
		session.ClosingNormally = true
		r.platform.CloseGrid(session.OwnerID)
		r.OpenEditor(session.OwnerID, session.Collection, "")
	case strings.HasPrefix(stack.Action, actionMoveUpPrefix):
		if index, err := strconv.Atoi(strings.TrimPrefix(stack.Action, actionMoveUpPrefix)); err == nil {
			r.moveTrade(session, index, index-1)
		}
	case strings.HasPrefix(stack.Action, actionMoveDownPrefix):
		if index, err := strconv.Atoi(strings.TrimPrefix(stack.Action, actionMoveDownPrefix)); err == nil {
			r.moveTrade(session, index, index+1)
		}
	}
}

// moveTrade applies one single-step move and redraws the grid. Moves off
// either end are no-ops.
func (r *Router) moveTrade(session *ReorderSession, from, to int) {
	col := r.registry.Get(session.Collection)
	if col == nil || to < 0 || to >= col.TradeCount() || from < 0 || from >= col.TradeCount() {
		return
	}
	r.registry.MoveTrade(session.Collection, from, to)
	r.showReorderGrid(session)
}

// closeReorder finalizes a reorder session. Every move already persisted,
// so an abnormal close only redirects the user back to the manager grid.
func (r *Router) closeReorder(session *ReorderSession) {
	r.reorders.Delete(session.OwnerID)
	if !session.ClosingNormally {
		r.OpenManager(session.OwnerID, session.Collection)
	}
}
