package session

// Stack is the content of one grid cell or one personal-storage slot. A
// stack is exactly one of three things: a genuine item (identifier plus
// amount), a placeholder graphic that marks an empty interactive slot, or a
// control button carrying an Action. Placeholder and control stacks are
// never persisted and never returned to a user's storage.
type Stack struct {
	Item        string
	Name        string
	Lore        []string
	Amount      int
	Placeholder bool
	Action      string
}

// Genuine reports whether the stack is a real item rather than UI chrome.
func (s *Stack) Genuine() bool {
	return s != nil && !s.Placeholder && s.Action == ""
}

// Grid is the platform-neutral state of one open grid widget. The platform
// renders it and delivers gestures on it; the router and sessions own its
// content. Cells outside the interactive set are protected: the platform
// must never move items in or out of them.
type Grid struct {
	Title       string
	cells       []*Stack
	interactive map[int]bool
}

func NewGrid(title string, size int) *Grid {
	return &Grid{
		Title:       title,
		cells:       make([]*Stack, size),
		interactive: make(map[int]bool),
	}
}

func (g *Grid) Size() int {
	return len(g.cells)
}

// Item returns the stack at slot, or nil for an empty or out-of-range slot.
func (g *Grid) Item(slot int) *Stack {
	if slot < 0 || slot >= len(g.cells) {
		return nil
	}
	return g.cells[slot]
}

// SetItem replaces the stack at slot. Out-of-range slots are ignored.
func (g *Grid) SetItem(slot int, s *Stack) {
	if slot < 0 || slot >= len(g.cells) {
		return
	}
	g.cells[slot] = s
}

// MarkInteractive declares slots that may hold user-placed items. Everything
// else is control chrome.
func (g *Grid) MarkInteractive(slots ...int) {
	for _, slot := range slots {
		g.interactive[slot] = true
	}
}

// Interactive reports whether users may place or remove items at slot.
func (g *Grid) Interactive(slot int) bool {
	return g.interactive[slot]
}

// ClickKind distinguishes the discrete gestures a grid platform delivers.
type ClickKind int

const (
	ClickPrimary ClickKind = iota
	ClickSecondary
	ClickShiftPrimary
	ClickShiftSecondary
)

// Shifted reports whether the click used the quick-transfer modifier.
func (k ClickKind) Shifted() bool {
	return k == ClickShiftPrimary || k == ClickShiftSecondary
}

// ClickArea says where a click landed: the session's grid or the user's
// personal storage.
type ClickArea int

const (
	AreaGrid ClickArea = iota
	AreaStorage
)

// ClickEvent is one click gesture. For grid clicks on interactive slots the
// platform has already applied the item movement before delivering the
// event; for storage clicks Stack is the clicked storage item, untouched.
type ClickEvent struct {
	UserID string
	Area   ClickArea
	Slot   int
	Kind   ClickKind
	Stack  *Stack
}

// DragEvent reports a completed drag across interactive slots. The platform
// rejects drags that touch any protected slot; when the event is delivered
// the placements have already been applied to the grid.
type DragEvent struct {
	UserID string
	Slots  []int
}

// TextEvent is one free-form text submission from a user.
type TextEvent struct {
	UserID string
	Text   string
}

// CloseEvent reports that a user's grid was dismissed, normally or not.
type CloseEvent struct {
	UserID string
}

// Platform is the grid-widget capability the host environment provides:
// it renders grids, delivers interaction events, and gives access to each
// user's personal storage. CloseGrid must deliver the matching CloseEvent
// to the router before returning.
type Platform interface {
	ShowGrid(userID string, g *Grid)
	CloseGrid(userID string)
	PromptText(userID, prompt string)
	Notify(userID, markup string)
	Storage(userID string) Storage
}

// Storage is a user's personal item storage.
type Storage interface {
	Add(s Stack)
	// Remove takes one stack matching s out of storage, reporting whether
	// anything was removed.
	Remove(s Stack) bool
}

// taskQueue collects work that must run after the current interaction event
// has been fully processed. Slot resynchronization is deferred this way
// because grid content is only guaranteed consistent once the triggering
// event has completed.
type taskQueue struct {
	tasks []func()
}

func (q *taskQueue) add(fn func()) {
	q.tasks = append(q.tasks, fn)
}

func (q *taskQueue) run() {
	for _, fn := range q.tasks {
		fn()
	}
	q.tasks = nil
}
