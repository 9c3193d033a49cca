package session

import (
	"fmt"
	"time"

	"github.com/tradesmith/tradesmith-cli/pkg/models"
)

// Editor grid layout: a 27-cell grid with three interactive slots and
// protected chrome everywhere else.
const (
	editorGridSize = 27
	slotTradeID    = 4
	slotInput1     = 10
	slotPlus       = 11
	slotInput2     = 12
	slotArrow      = 14
	slotOutput     = 16
	slotClear      = 21
	slotSave       = 22
	slotCancel     = 23
)

const (
	actionSaveTrade  = "save_trade"
	actionCancelEdit = "cancel_trade"
	actionClearSlots = "clear_trade"
	actionSetTradeID = "set_trade_id"
)

// EditSession is one user's in-progress trade edit: the pending slot
// contents, the pending id, and the flags that steer teardown. A session
// holds only references into the registry (collection name, original id)
// plus its own transient state — never a copy of collection data.
type EditSession struct {
	OwnerID         string
	Collection      string
	PendingID       string
	Original        *models.TradeRecord
	Input1          *models.TradeItem
	Input2          *models.TradeItem
	Output          *models.TradeItem
	AwaitingText    bool
	ClosingNormally bool
	Grid            *Grid
}

// generateID derives a fresh trade id from the clock, bumping once if the
// result would collide with the session's own prior id.
func (s *EditSession) generateID(now time.Time) string {
	id := fmt.Sprintf("trade_%d", now.Unix())
	prior := s.PendingID
	if prior == "" && s.Original != nil {
		prior = s.Original.ID
	}
	if id == prior {
		id = fmt.Sprintf("trade_%d", now.Unix()+1)
	}
	return id
}

// OpenEditor starts an edit session for the named collection. An empty
// tradeID opens the editor for a new trade; otherwise the existing record's
// items pre-populate the slots and the record is remembered so that saving
// under a new id replaces it.
func (r *Router) OpenEditor(userID, collection, tradeID string) {
	col := r.registry.Get(collection)
	if col == nil {
		r.platform.Notify(userID, "<red>Trade collection '"+collection+"' not found.")
		return
	}

	session := &EditSession{OwnerID: userID, Collection: collection, PendingID: tradeID}
	if tradeID != "" {
		if existing := col.Trade(tradeID); existing != nil {
			record := *existing
			session.Original = &record
			session.Input1 = &record.Input1
			session.Input2 = record.Input2
			session.Output = &record.Output
		}
	}

	r.edits.Store(userID, session)
	r.showEditorGrid(session)
}

func (r *Router) showEditorGrid(session *EditSession) {
	g := NewGrid("<gradient:#9146FF:#00D4FF>Trade Editor</gradient>", editorGridSize)
	g.MarkInteractive(slotInput1, slotInput2, slotOutput)

	for i := 0; i < editorGridSize; i++ {
		switch i {
		case slotInput1, slotInput2, slotOutput, slotTradeID, slotPlus, slotArrow, slotClear, slotSave, slotCancel:
		default:
			g.SetItem(i, backgroundPane())
		}
	}

	g.SetItem(slotInput1, r.slotStack(session.Input1,
		"<gradient:#FFD700:#FFA500>Input Slot 1</gradient>", "Place the required item here."))
	g.SetItem(slotInput2, r.slotStack(session.Input2,
		"<gradient:#9370DB:#8A2BE2>Input Slot 2</gradient>", "Place the optional second item here."))
	g.SetItem(slotOutput, r.slotStack(session.Output,
		"<gradient:#32CD32:#228B22>Output Slot</gradient>", "Place the resulting item here."))

	g.SetItem(slotPlus, indicator("<gradient:#00FF00:#32CD32>+</gradient>"))
	g.SetItem(slotArrow, indicator("<gradient:#FFD700:#FFA500>-></gradient>"))

	idText := session.PendingID
	if idText == "" {
		idText = session.generateID(r.now())
	}
	g.SetItem(slotTradeID, controlButton("<gradient:#4ECDC4:#44A08D>Trade ID: "+idText+"</gradient>", actionSetTradeID))
	g.SetItem(slotClear, controlButton("<gradient:#FFA500:#FF8C00>Clear Slots</gradient>", actionClearSlots))
	g.SetItem(slotSave, controlButton("<gradient:#00FF00:#32CD32>Save Trade</gradient>", actionSaveTrade))
	g.SetItem(slotCancel, controlButton("<gradient:#FF4444:#CC0000>Cancel</gradient>", actionCancelEdit))

	session.Grid = g
	r.platform.ShowGrid(session.OwnerID, g)
}

// slotStack renders an interactive slot: the resolved item when one is
// pending, a placeholder graphic otherwise.
func (r *Router) slotStack(item *models.TradeItem, name, description string) *Stack {
	if item != nil {
		if stack := r.items.StackFor(*item); stack != nil {
			return stack
		}
		r.log.Warn().Str("item", item.Item).Msg("pending item does not resolve; showing empty slot")
		return nil
	}
	return &Stack{
		Name:        name,
		Lore:        []string{description, "Drag and drop or shift-click an item here."},
		Placeholder: true,
	}
}

func (r *Router) handleEditorClick(session *EditSession, ev ClickEvent, after *taskQueue) {
	if ev.Area == AreaStorage {
		if ev.Kind.Shifted() {
			r.shiftTransfer(session, ev.Stack)
		}
		return
	}

	if session.Grid.Interactive(ev.Slot) {
		// The platform already applied the item movement. Re-read the
		// slots once this event is fully processed.
		after.add(func() { r.resyncEditor(session) })
		return
	}

	stack := session.Grid.Item(ev.Slot)
	if stack == nil || stack.Action == "" {
		return
	}
	switch stack.Action {
	case actionSaveTrade:
		r.saveTrade(session)
	case actionCancelEdit:
		r.cancelEdit(session)
	case actionClearSlots:
		r.clearSlots(session)
	case actionSetTradeID:
		r.promptTradeID(session)
	}
}

func (r *Router) handleEditorDrag(session *EditSession, ev DragEvent, after *taskQueue) {
	after.add(func() { r.resyncEditor(session) })
}

// resyncEditor reads the three interactive slots back into the session.
// A placeholder graphic counts the same as an empty slot.
func (r *Router) resyncEditor(session *EditSession) {
	session.Input1 = slotItem(session.Grid, slotInput1)
	session.Input2 = slotItem(session.Grid, slotInput2)
	session.Output = slotItem(session.Grid, slotOutput)
	r.log.Debug().
		Bool("input1", session.Input1 != nil).
		Bool("input2", session.Input2 != nil).
		Bool("output", session.Output != nil).
		Msg("editor session resynchronized")
}

func slotItem(g *Grid, slot int) *models.TradeItem {
	stack := g.Item(slot)
	if !stack.Genuine() {
		return nil
	}
	return &models.TradeItem{Item: stack.Item, Amount: stack.Amount}
}

// shiftTransfer moves a storage item into the first empty interactive slot,
// in the fixed order input1, input2, output. With all three occupied the
// transfer is rejected and the storage item stays put.
func (r *Router) shiftTransfer(session *EditSession, clicked *Stack) {
	if !clicked.Genuine() {
		return
	}

	target := -1
	for _, slot := range []int{slotInput1, slotInput2, slotOutput} {
		if !session.Grid.Item(slot).Genuine() {
			target = slot
			break
		}
	}
	if target < 0 {
		r.platform.Notify(session.OwnerID, "<red>All editor slots are full!")
		return
	}

	if !r.platform.Storage(session.OwnerID).Remove(*clicked) {
		return
	}
	placed := *clicked
	session.Grid.SetItem(target, &placed)
	r.resyncEditor(session)
}

func (r *Router) saveTrade(session *EditSession) {
	if session.Input1 == nil || session.Output == nil {
		r.platform.Notify(session.OwnerID, "<red>Input 1 and Output are required!")
		return
	}

	tradeID := session.PendingID
	if tradeID == "" {
		tradeID = session.generateID(r.now())
	}
	record := models.TradeRecord{
		ID:     tradeID,
		Input1: *session.Input1,
		Input2: session.Input2,
		Output: *session.Output,
	}

	// Editing replaces the original record, keyed by its original id so a
	// save under a new id realizes a rename.
	if session.Original != nil {
		r.registry.RemoveTrade(session.Collection, session.Original.ID)
	}
	r.registry.AddTrade(session.Collection, record)
	r.platform.Notify(session.OwnerID, "<green>Trade saved successfully with ID: <white>"+tradeID)

	session.ClosingNormally = true
	r.platform.CloseGrid(session.OwnerID)
	r.OpenManager(session.OwnerID, session.Collection)
}

func (r *Router) cancelEdit(session *EditSession) {
	r.platform.Notify(session.OwnerID, "<yellow>Trade editing cancelled.")
	session.ClosingNormally = true
	r.platform.CloseGrid(session.OwnerID)
	r.OpenManager(session.OwnerID, session.Collection)
}

func (r *Router) clearSlots(session *EditSession) {
	session.Input1 = nil
	session.Input2 = nil
	session.Output = nil
	r.showEditorGrid(session)
}

func (r *Router) promptTradeID(session *EditSession) {
	session.AwaitingText = true
	r.platform.PromptText(session.OwnerID,
		"<yellow>Type the new trade ID and press Enter. <gray>(Letters, numbers, and underscores only. Max 32 characters)")
}

// handleEditorText consumes exactly one text submission while the session is
// awaiting an id. An invalid id is discarded, keeping the previous pending
// id; the grid reopens either way.
func (r *Router) handleEditorText(session *EditSession, text string) {
	if !session.AwaitingText {
		return
	}
	session.AwaitingText = false

	if models.ValidTradeID(text) {
		session.PendingID = text
		r.platform.Notify(session.OwnerID, "<green>Trade ID set to: <yellow>"+text)
	} else {
		r.platform.Notify(session.OwnerID, "<red>Invalid trade ID! Use only letters, numbers, and underscores (1-32 chars).")
	}
	r.showEditorGrid(session)
}

// closeEditor finalizes an edit session. On an abnormal close every genuine
// item left in the interactive slots goes back to the user's storage, so no
// way of dismissing the editor can lose items.
func (r *Router) closeEditor(session *EditSession) {
	if !session.ClosingNormally {
		storage := r.platform.Storage(session.OwnerID)
		for _, slot := range []int{slotInput1, slotInput2, slotOutput} {
			if stack := session.Grid.Item(slot); stack.Genuine() {
				storage.Add(*stack)
			}
		}
	}
	r.edits.Delete(session.OwnerID)
}

func backgroundPane() *Stack {
	return &Stack{Name: " ", Placeholder: true}
}

func indicator(name string) *Stack {
	return &Stack{Name: name, Placeholder: true}
}

func controlButton(name, action string) *Stack {
	return &Stack{Name: name, Action: action}
}
