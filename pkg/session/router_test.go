package session

import (
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tradesmith/tradesmith-cli/pkg/models"
	"github.com/tradesmith/tradesmith-cli/pkg/registry"
)

const user = "steve"

// memStore keeps persistence in memory; registry behavior stays real.
type memStore struct {
	collections map[string]*models.TradeCollection
}

func (m *memStore) LoadAll() (map[string]*models.TradeCollection, error) {
	return m.collections, nil
}
func (m *memStore) Save(c *models.TradeCollection) error { return nil }
func (m *memStore) Delete(name string) error             { return nil }

type fakeResolver struct {
	missing map[string]bool
}

func (f *fakeResolver) StackFor(item models.TradeItem) *Stack {
	if f.missing[item.Item] {
		return nil
	}
	return &Stack{Item: item.Item, Name: item.Item, Amount: item.Amount}
}

type fakeStorage struct {
	items []Stack
}

func (s *fakeStorage) Add(st Stack) {
	s.items = append(s.items, st)
}

func (s *fakeStorage) Remove(st Stack) bool {
	for i, have := range s.items {
		if have.Item == st.Item && have.Amount == st.Amount {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

func (s *fakeStorage) count(item string) int {
	n := 0
	for _, st := range s.items {
		if st.Item == item {
			n += st.Amount
		}
	}
	return n
}

// fakePlatform implements the grid capability in memory. CloseGrid delivers
// the CloseEvent synchronously, as the contract requires.
type fakePlatform struct {
	router   *Router
	grids    map[string]*Grid
	storages map[string]*fakeStorage
	notices  []string
	prompts  []string
}

func newFakePlatform() *fakePlatform {
	return &fakePlatform{
		grids:    make(map[string]*Grid),
		storages: make(map[string]*fakeStorage),
	}
}

func (p *fakePlatform) ShowGrid(userID string, g *Grid) {
	p.grids[userID] = g
}

func (p *fakePlatform) CloseGrid(userID string) {
	p.router.HandleClose(CloseEvent{UserID: userID})
	delete(p.grids, userID)
}

func (p *fakePlatform) PromptText(userID, prompt string) {
	p.prompts = append(p.prompts, prompt)
}

func (p *fakePlatform) Notify(userID, markup string) {
	p.notices = append(p.notices, markup)
}

func (p *fakePlatform) Storage(userID string) Storage {
	if _, ok := p.storages[userID]; !ok {
		p.storages[userID] = &fakeStorage{}
	}
	return p.storages[userID]
}

type fixture struct {
	router   *Router
	platform *fakePlatform
	registry *registry.Registry
	resolver *fakeResolver
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	shop := models.NewTradeCollection("shop", "The Shop")
	store := &memStore{collections: map[string]*models.TradeCollection{"shop": shop}}
	reg := registry.NewRegistry(store, zerolog.Nop())
	if err := reg.Load(); err != nil {
		t.Fatalf("registry load failed: %v", err)
	}

	platform := newFakePlatform()
	resolver := &fakeResolver{missing: make(map[string]bool)}
	router := NewRouter(reg, resolver, platform, zerolog.Nop())
	platform.router = router

	return &fixture{router: router, platform: platform, registry: reg, resolver: resolver}
}

func (f *fixture) addTrade(id string) {
	f.registry.AddTrade("shop", models.TradeRecord{
		ID:     id,
		Input1: models.TradeItem{Item: "emerald", Amount: 3},
		Output: models.TradeItem{Item: "diamond", Amount: 1},
	})
}

// placeItem mimics the platform applying a click that drops an item into an
// interactive slot, then delivering the event.
func (f *fixture) placeItem(t *testing.T, slot int, item string, amount int) {
	t.Helper()
	g := f.platform.grids[user]
	if g == nil {
		t.Fatal("no open grid to place into")
	}
	if !g.Interactive(slot) {
		t.Fatalf("slot %d is protected; the platform would reject the placement", slot)
	}
	g.SetItem(slot, &Stack{Item: item, Name: item, Amount: amount})
	f.router.HandleClick(ClickEvent{UserID: user, Area: AreaGrid, Slot: slot, Kind: ClickPrimary})
}

// clickButton delivers a click on a protected control cell.
func (f *fixture) clickButton(t *testing.T, action string) {
	t.Helper()
	g := f.platform.grids[user]
	if g == nil {
		t.Fatal("no open grid to click in")
	}
	for slot := 0; slot < g.Size(); slot++ {
		if stack := g.Item(slot); stack != nil && stack.Action == action {
			f.router.HandleClick(ClickEvent{UserID: user, Area: AreaGrid, Slot: slot, Kind: ClickPrimary})
			return
		}
	}
	t.Fatalf("no button with action %q on the open grid", action)
}

func (f *fixture) shopOrder() []string {
	col := f.registry.Get("shop")
	out := make([]string, 0, col.TradeCount())
	for _, r := range col.Trades {
		out = append(out, r.ID)
	}
	return out
}

func TestOpenEditorUnknownCollectionNotifies(t *testing.T) {
	f := newFixture(t)

	f.router.OpenEditor(user, "ghost", "")

	if f.router.ActiveEditSession(user) != nil {
		t.Error("expected no session for unknown collection")
	}
	if len(f.platform.notices) == 0 {
		t.Error("expected a not-found diagnostic")
	}
}

func TestEditorStartsWithPlaceholders(t *testing.T) {
	f := newFixture(t)

	f.router.OpenEditor(user, "shop", "")

	g := f.platform.grids[user]
	for _, slot := range []int{slotInput1, slotInput2, slotOutput} {
		stack := g.Item(slot)
		if stack == nil || !stack.Placeholder {
			t.Errorf("expected placeholder in slot %d, got %+v", slot, stack)
		}
	}

	session := f.router.ActiveEditSession(user)
	if session.Input1 != nil || session.Input2 != nil || session.Output != nil {
		t.Error("expected a fresh session with no pending items")
	}
}

func TestSlotClickResyncsAfterEvent(t *testing.T) {
	f := newFixture(t)
	f.router.OpenEditor(user, "shop", "")

	f.placeItem(t, slotInput1, "emerald", 3)

	session := f.router.ActiveEditSession(user)
	if session.Input1 == nil || session.Input1.Item != "emerald" || session.Input1.Amount != 3 {
		t.Errorf("expected input1 resynchronized to emerald x3, got %+v", session.Input1)
	}
	// The untouched slots still hold placeholders, which read back as absent.
	if session.Input2 != nil || session.Output != nil {
		t.Error("placeholder slots must read back as absent")
	}
}

func TestSaveRequiresInputAndOutput(t *testing.T) {
	f := newFixture(t)
	f.router.OpenEditor(user, "shop", "")

	f.clickButton(t, actionSaveTrade)

	if f.registry.Get("shop").TradeCount() != 0 {
		t.Error("save without input and output added a trade")
	}
	if f.router.ActiveEditSession(user) == nil {
		t.Error("failed save must leave the session open for retry")
	}
	if len(f.platform.notices) == 0 {
		t.Error("expected a validation diagnostic")
	}
}

func TestSaveCreatesTradeAndOpensManager(t *testing.T) {
	f := newFixture(t)
	f.router.OpenEditor(user, "shop", "")
	f.placeItem(t, slotInput1, "emerald", 3)
	f.placeItem(t, slotOutput, "diamond", 1)

	f.clickButton(t, actionSaveTrade)

	col := f.registry.Get("shop")
	if col.TradeCount() != 1 {
		t.Fatalf("expected 1 trade after save, got %d", col.TradeCount())
	}
	saved := col.Trades[0]
	if saved.Input1 != (models.TradeItem{Item: "emerald", Amount: 3}) ||
		saved.Output != (models.TradeItem{Item: "diamond", Amount: 1}) {
		t.Errorf("saved record does not match placed items: %+v", saved)
	}
	if saved.Input2 != nil {
		t.Error("expected no second input")
	}

	if f.router.ActiveEditSession(user) != nil {
		t.Error("expected edit session destroyed after save")
	}
	if _, ok := f.router.managers.Load(user); !ok {
		t.Error("expected transition to the management grid")
	}
	// Normal close must not return the saved items to storage.
	if storage := f.platform.storages[user]; storage != nil && len(storage.items) != 0 {
		t.Errorf("save returned items to storage: %+v", storage.items)
	}
}

func TestSavedTradeRetrievableByID(t *testing.T) {
	f := newFixture(t)
	f.router.OpenEditor(user, "shop", "")
	f.router.ActiveEditSession(user).PendingID = "my_trade"
	f.placeItem(t, slotInput1, "emerald", 3)
	f.placeItem(t, slotInput2, "blue_ice", 5)
	f.placeItem(t, slotOutput, "diamond", 1)

	f.clickButton(t, actionSaveTrade)

	got := f.registry.Get("shop").Trade("my_trade")
	if got == nil {
		t.Fatal("expected trade retrievable by its id")
	}
	if got.Input2 == nil || *got.Input2 != (models.TradeItem{Item: "blue_ice", Amount: 5}) {
		t.Errorf("expected second input preserved, got %+v", got.Input2)
	}
}

func TestEditUnderNewIDReplacesOriginal(t *testing.T) {
	f := newFixture(t)
	f.addTrade("old_id")

	f.router.OpenEditor(user, "shop", "old_id")
	session := f.router.ActiveEditSession(user)
	if session.Original == nil || session.Original.ID != "old_id" {
		t.Fatalf("expected original record remembered, got %+v", session.Original)
	}
	if session.Input1 == nil || session.Output == nil {
		t.Fatal("expected slots pre-populated from the existing record")
	}

	session.PendingID = "new_id"
	f.clickButton(t, actionSaveTrade)

	col := f.registry.Get("shop")
	if col.HasTrade("old_id") {
		t.Error("original record still present after rename-save")
	}
	if !col.HasTrade("new_id") {
		t.Error("renamed record missing")
	}
	if col.TradeCount() != 1 {
		t.Errorf("expected exactly one record, got %d", col.TradeCount())
	}
}

func TestFailedSaveLeavesOriginalUntouched(t *testing.T) {
	f := newFixture(t)
	f.addTrade("keeper")

	f.router.OpenEditor(user, "shop", "keeper")
	// Remove the output so the save is rejected.
	g := f.platform.grids[user]
	g.SetItem(slotOutput, nil)
	f.router.HandleClick(ClickEvent{UserID: user, Area: AreaGrid, Slot: slotOutput, Kind: ClickPrimary})

	f.clickButton(t, actionSaveTrade)

	col := f.registry.Get("shop")
	if !col.HasTrade("keeper") || col.TradeCount() != 1 {
		t.Errorf("rejected save modified the collection: %v", f.shopOrder())
	}
}

func TestSetTradeIDValid(t *testing.T) {
	f := newFixture(t)
	f.router.OpenEditor(user, "shop", "")

	f.clickButton(t, actionSetTradeID)
	session := f.router.ActiveEditSession(user)
	if !session.AwaitingText {
		t.Fatal("expected session to await text input")
	}
	if len(f.platform.prompts) != 1 {
		t.Fatalf("expected one text prompt, got %d", len(f.platform.prompts))
	}

	f.router.HandleText(TextEvent{UserID: user, Text: "custom_id_7"})

	if session.AwaitingText {
		t.Error("expected text mode cleared after one submission")
	}
	if session.PendingID != "custom_id_7" {
		t.Errorf("expected pending id set, got %q", session.PendingID)
	}
	if f.platform.grids[user] == nil {
		t.Error("expected the grid to reopen")
	}
}

func TestInvalidTradeIDKeepsPrevious(t *testing.T) {
	f := newFixture(t)
	f.router.OpenEditor(user, "shop", "")
	session := f.router.ActiveEditSession(user)
	session.PendingID = "previous"

	f.clickButton(t, actionSetTradeID)
	notices := len(f.platform.notices)
	f.router.HandleText(TextEvent{UserID: user, Text: "bad id!"})

	if session.PendingID != "previous" {
		t.Errorf("invalid id overwrote the previous one: %q", session.PendingID)
	}
	if len(f.platform.notices) <= notices {
		t.Error("expected a diagnostic for the invalid id")
	}
	if f.platform.grids[user] == nil {
		t.Error("expected the grid to reopen after a rejected id")
	}
	if f.registry.Get("shop").TradeCount() != 0 {
		t.Error("rejected id added a record")
	}
}

func TestTextIgnoredWhenNotAwaiting(t *testing.T) {
	f := newFixture(t)
	f.router.OpenEditor(user, "shop", "")
	session := f.router.ActiveEditSession(user)

	f.router.HandleText(TextEvent{UserID: user, Text: "stray_chatter"})

	if session.PendingID == "stray_chatter" {
		t.Error("text outside set-id mode mutated the session")
	}
}

func TestClearResetsSlots(t *testing.T) {
	f := newFixture(t)
	f.router.OpenEditor(user, "shop", "")
	f.placeItem(t, slotInput1, "emerald", 3)

	f.clickButton(t, actionClearSlots)

	session := f.router.ActiveEditSession(user)
	if session == nil {
		t.Fatal("clear must not close the session")
	}
	if session.Input1 != nil {
		t.Error("expected slots cleared")
	}
	if stack := f.platform.grids[user].Item(slotInput1); stack == nil || !stack.Placeholder {
		t.Error("expected placeholder restored in cleared slot")
	}
}

func TestCancelDiscardsPendingState(t *testing.T) {
	f := newFixture(t)
	f.router.OpenEditor(user, "shop", "")
	f.placeItem(t, slotInput1, "emerald", 3)

	f.clickButton(t, actionCancelEdit)

	if f.router.ActiveEditSession(user) != nil {
		t.Error("expected session destroyed on cancel")
	}
	if storage := f.platform.storages[user]; storage != nil && storage.count("emerald") != 0 {
		t.Errorf("cancel returned items to storage: %d emeralds", storage.count("emerald"))
	}
	if _, ok := f.router.managers.Load(user); !ok {
		t.Error("expected return to the management grid")
	}
	if f.registry.Get("shop").TradeCount() != 0 {
		t.Error("cancel added a record")
	}
}

func TestAbnormalCloseReturnsItems(t *testing.T) {
	f := newFixture(t)
	f.router.OpenEditor(user, "shop", "")
	f.placeItem(t, slotInput1, "emerald", 3)
	f.placeItem(t, slotOutput, "diamond", 1)

	f.router.HandleClose(CloseEvent{UserID: user})

	storage := f.platform.storages[user]
	if storage.count("emerald") != 3 || storage.count("diamond") != 1 {
		t.Errorf("expected placed items returned, storage: %+v", storage.items)
	}
	if f.registry.Get("shop").TradeCount() != 0 {
		t.Error("abnormal close added a record")
	}
	if f.router.ActiveEditSession(user) != nil {
		t.Error("expected session destroyed")
	}
}

func TestAbnormalCloseSkipsPlaceholders(t *testing.T) {
	f := newFixture(t)
	f.router.OpenEditor(user, "shop", "")

	f.router.HandleClose(CloseEvent{UserID: user})

	if storage := f.platform.storages[user]; storage != nil && len(storage.items) != 0 {
		t.Errorf("placeholder graphics were returned as items: %+v", storage.items)
	}
}

func TestShiftTransferFillsSlotsInOrder(t *testing.T) {
	f := newFixture(t)
	f.router.OpenEditor(user, "shop", "")
	storage := f.platform.Storage(user).(*fakeStorage)
	for _, item := range []string{"emerald", "blue_ice", "diamond"} {
		storage.Add(Stack{Item: item, Amount: 1})
	}

	shiftClick := func(item string) {
		f.router.HandleClick(ClickEvent{
			UserID: user, Area: AreaStorage, Kind: ClickShiftPrimary,
			Stack: &Stack{Item: item, Amount: 1},
		})
	}

	shiftClick("emerald")
	shiftClick("blue_ice")
	shiftClick("diamond")

	session := f.router.ActiveEditSession(user)
	if session.Input1 == nil || session.Input1.Item != "emerald" {
		t.Errorf("expected emerald in input1, got %+v", session.Input1)
	}
	if session.Input2 == nil || session.Input2.Item != "blue_ice" {
		t.Errorf("expected blue_ice in input2, got %+v", session.Input2)
	}
	if session.Output == nil || session.Output.Item != "diamond" {
		t.Errorf("expected diamond in output, got %+v", session.Output)
	}
	if len(storage.items) != 0 {
		t.Errorf("expected storage emptied, got %+v", storage.items)
	}
}

func TestShiftTransferRejectedWhenFull(t *testing.T) {
	f := newFixture(t)
	f.router.OpenEditor(user, "shop", "")
	f.placeItem(t, slotInput1, "a", 1)
	f.placeItem(t, slotInput2, "b", 1)
	f.placeItem(t, slotOutput, "c", 1)

	storage := f.platform.Storage(user).(*fakeStorage)
	storage.Add(Stack{Item: "gold_ingot", Amount: 7})
	notices := len(f.platform.notices)

	f.router.HandleClick(ClickEvent{
		UserID: user, Area: AreaStorage, Kind: ClickShiftPrimary,
		Stack: &Stack{Item: "gold_ingot", Amount: 7},
	})

	if storage.count("gold_ingot") != 7 {
		t.Errorf("rejected transfer changed storage: %d", storage.count("gold_ingot"))
	}
	g := f.platform.grids[user]
	if g.Item(slotInput1).Item != "a" || g.Item(slotInput2).Item != "b" || g.Item(slotOutput).Item != "c" {
		t.Error("rejected transfer changed slot contents")
	}
	if len(f.platform.notices) <= notices {
		t.Error("expected a slots-full diagnostic")
	}
}

func TestGeneratedIDAvoidsPriorID(t *testing.T) {
	f := newFixture(t)
	fixed := time.Unix(1700000000, 0)
	f.router.now = func() time.Time { return fixed }

	session := &EditSession{PendingID: "trade_1700000000"}
	if id := session.generateID(fixed); id == "trade_1700000000" {
		t.Error("generated id collided with the session's prior id")
	}

	fresh := &EditSession{}
	if id := fresh.generateID(fixed); id != "trade_1700000000" {
		t.Errorf("expected timestamp-derived id, got %q", id)
	}
}

func TestManagerDeleteRefreshesView(t *testing.T) {
	f := newFixture(t)
	f.addTrade("doomed")
	f.addTrade("keeper")
	f.router.OpenManager(user, "shop")

	f.router.HandleClick(ClickEvent{UserID: user, Area: AreaGrid, Slot: managerFirstTrade, Kind: ClickSecondary})

	col := f.registry.Get("shop")
	if col.HasTrade("doomed") || !col.HasTrade("keeper") {
		t.Errorf("expected only 'doomed' removed, got %v", f.shopOrder())
	}
	// The refreshed grid shows the survivor in the first entry cell.
	if stack := f.platform.grids[user].Item(managerFirstTrade); stack == nil {
		t.Error("expected refreshed manager grid")
	}
}

func TestManagerPrimaryOpensEditor(t *testing.T) {
	f := newFixture(t)
	f.addTrade("target")
	f.router.OpenManager(user, "shop")

	f.router.HandleClick(ClickEvent{UserID: user, Area: AreaGrid, Slot: managerFirstTrade, Kind: ClickPrimary})

	session := f.router.ActiveEditSession(user)
	if session == nil || session.Original == nil || session.Original.ID != "target" {
		t.Fatalf("expected edit session for 'target', got %+v", session)
	}
	if _, ok := f.router.managers.Load(user); ok {
		t.Error("expected manager session closed on handoff")
	}
}

func TestManagerShiftSecondaryGrantsOutput(t *testing.T) {
	f := newFixture(t)
	f.addTrade("generous")
	f.router.OpenManager(user, "shop")

	f.router.HandleClick(ClickEvent{UserID: user, Area: AreaGrid, Slot: managerFirstTrade, Kind: ClickShiftSecondary})

	if n := f.platform.Storage(user).(*fakeStorage).count("diamond"); n != 1 {
		t.Errorf("expected 1 diamond granted, got %d", n)
	}
	if f.registry.Get("shop").TradeCount() != 1 {
		t.Error("grant must not consume the trade")
	}
}

func TestManagerGrantFailsForUnresolvableOutput(t *testing.T) {
	f := newFixture(t)
	f.addTrade("broken")
	f.resolver.missing["diamond"] = true
	f.router.OpenManager(user, "shop")
	notices := len(f.platform.notices)

	f.router.HandleClick(ClickEvent{UserID: user, Area: AreaGrid, Slot: managerFirstTrade, Kind: ClickShiftSecondary})

	if storage := f.platform.storages[user]; storage != nil && len(storage.items) != 0 {
		t.Error("unresolvable output was granted anyway")
	}
	if len(f.platform.notices) <= notices {
		t.Error("expected a failure diagnostic")
	}
}

func TestManagerAddOpensFreshEditor(t *testing.T) {
	f := newFixture(t)
	f.router.OpenManager(user, "shop")

	f.clickButton(t, actionManagerAdd)

	session := f.router.ActiveEditSession(user)
	if session == nil || session.Original != nil || session.PendingID != "" {
		t.Fatalf("expected fresh edit session, got %+v", session)
	}
}

func TestReorderMovesPersistImmediately(t *testing.T) {
	f := newFixture(t)
	f.addTrade("a")
	f.addTrade("b")
	f.addTrade("c")
	f.router.OpenReorder(user, "shop")

	// Primary on entry 2 moves it one position earlier.
	f.router.HandleClick(ClickEvent{UserID: user, Area: AreaGrid, Slot: 2, Kind: ClickPrimary})
	order := f.shopOrder()
	if order[0] != "a" || order[1] != "c" || order[2] != "b" {
		t.Fatalf("expected [a c b], got %v", order)
	}

	// Primary on the first entry is a no-op.
	f.router.HandleClick(ClickEvent{UserID: user, Area: AreaGrid, Slot: 0, Kind: ClickPrimary})
	if got := f.shopOrder(); got[0] != "a" {
		t.Errorf("move-up on first entry changed order: %v", got)
	}

	// Secondary on the last entry is a no-op.
	f.router.HandleClick(ClickEvent{UserID: user, Area: AreaGrid, Slot: 2, Kind: ClickSecondary})
	if got := f.shopOrder(); got[2] != "b" {
		t.Errorf("move-down on last entry changed order: %v", got)
	}
}

func TestReorderFullEntryRowKeepsHeaderClear(t *testing.T) {
	f := newFixture(t)
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		f.addTrade(id)
	}
	f.router.OpenReorder(user, "shop")

	g := f.platform.grids[user]
	fifth := g.Item(4)
	if fifth == nil || fifth.Action != "" || fifth.Item != "diamond" {
		t.Fatalf("expected the fifth trade entry at slot 4, got %+v", fifth)
	}
	header := g.Item(reorderSlotHeader)
	if header == nil || !header.Placeholder || header.Item != "" {
		t.Fatalf("expected the instructions header at slot %d, got %+v", reorderSlotHeader, header)
	}

	// The fifth entry moves like any other.
	f.router.HandleClick(ClickEvent{UserID: user, Area: AreaGrid, Slot: 4, Kind: ClickPrimary})
	if got := f.shopOrder(); got[3] != "e" || got[4] != "d" {
		t.Errorf("expected e moved up to position 4, got %v", got)
	}
}

func TestReorderMoveButtons(t *testing.T) {
	f := newFixture(t)
	f.addTrade("a")
	f.addTrade("b")
	f.addTrade("c")
	f.router.OpenReorder(user, "shop")

	f.clickButton(t, "move_up_2")
	order := f.shopOrder()
	if order[1] != "c" {
		t.Errorf("expected c moved up, got %v", order)
	}

	f.clickButton(t, "move_down_0")
	order = f.shopOrder()
	if order[0] != "c" || order[1] != "a" {
		t.Errorf("expected a moved down, got %v", order)
	}
}

func TestReorderDoneReturnsToManager(t *testing.T) {
	f := newFixture(t)
	f.addTrade("a")
	f.router.OpenReorder(user, "shop")

	f.clickButton(t, actionReorderDone)

	if _, ok := f.router.reorders.Load(user); ok {
		t.Error("expected reorder session destroyed")
	}
	if _, ok := f.router.managers.Load(user); !ok {
		t.Error("expected manager session opened")
	}
}

func TestReorderAbnormalCloseReturnsToManager(t *testing.T) {
	f := newFixture(t)
	f.addTrade("a")
	f.router.OpenReorder(user, "shop")

	f.router.HandleClose(CloseEvent{UserID: user})

	if _, ok := f.router.managers.Load(user); !ok {
		t.Error("expected redirect to manager on abnormal close")
	}
}

func TestEventsWithoutSessionAreIgnored(t *testing.T) {
	f := newFixture(t)

	f.router.HandleClick(ClickEvent{UserID: "nobody", Area: AreaGrid, Slot: 3, Kind: ClickPrimary})
	f.router.HandleDrag(DragEvent{UserID: "nobody", Slots: []int{slotInput1}})
	f.router.HandleText(TextEvent{UserID: "nobody", Text: "hello"})
	f.router.HandleClose(CloseEvent{UserID: "nobody"})

	if len(f.platform.notices) != 0 {
		t.Errorf("session-less events produced output: %v", f.platform.notices)
	}
}

func TestSessionsAreIsolatedPerUser(t *testing.T) {
	f := newFixture(t)
	f.router.OpenEditor("alex", "shop", "")
	f.router.OpenEditor("blair", "shop", "")

	alex := f.router.ActiveEditSession("alex")
	blair := f.router.ActiveEditSession("blair")
	if alex == nil || blair == nil || alex == blair {
		t.Fatal("expected independent sessions per user")
	}

	f.router.HandleClose(CloseEvent{UserID: "alex"})
	if f.router.ActiveEditSession("alex") != nil {
		t.Error("expected alex's session destroyed")
	}
	if f.router.ActiveEditSession("blair") == nil {
		t.Error("closing one user's session destroyed another's")
	}
}
