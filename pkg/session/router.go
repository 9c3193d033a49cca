package session

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/tradesmith/tradesmith-cli/pkg/models"
	"github.com/tradesmith/tradesmith-cli/pkg/registry"
)

// ItemResolver turns a trade item into a placeable stack through the item
// catalog. A nil result means the identifier does not resolve.
type ItemResolver interface {
	StackFor(item models.TradeItem) *Stack
}

// Router owns the per-user session tables and drives every session state
// transition from the discrete events the platform delivers. Events arrive
// concurrently across users but serially per user, so per-key atomic access
// to the tables is all the locking needed — sessions never touch another
// user's state.
type Router struct {
	registry *registry.Registry
	items    ItemResolver
	platform Platform
	log      zerolog.Logger
	now      func() time.Time

	edits    sync.Map // userID -> *EditSession
	managers sync.Map // userID -> *ManagerSession
	reorders sync.Map // userID -> *ReorderSession
}

func NewRouter(reg *registry.Registry, items ItemResolver, platform Platform, log zerolog.Logger) *Router {
	return &Router{
		registry: reg,
		items:    items,
		platform: platform,
		log:      log.With().Str("component", "session").Logger(),
		now:      time.Now,
	}
}

// HandleClick routes one click gesture to the user's active session. A click
// with no matching session is silently ignored.
func (r *Router) HandleClick(ev ClickEvent) {
	var after taskQueue
	defer after.run()

	if v, ok := r.edits.Load(ev.UserID); ok {
		r.handleEditorClick(v.(*EditSession), ev, &after)
		return
	}
	if v, ok := r.reorders.Load(ev.UserID); ok {
		r.handleReorderClick(v.(*ReorderSession), ev)
		return
	}
	if v, ok := r.managers.Load(ev.UserID); ok {
		r.handleManagerClick(v.(*ManagerSession), ev)
	}
}

// HandleDrag routes a completed drag. Only edit sessions have interactive
// slots, so anything else is a no-op.
func (r *Router) HandleDrag(ev DragEvent) {
	var after taskQueue
	defer after.run()

	if v, ok := r.edits.Load(ev.UserID); ok {
		r.handleEditorDrag(v.(*EditSession), ev, &after)
	}
}

// HandleText routes one free-form text submission.
func (r *Router) HandleText(ev TextEvent) {
	if v, ok := r.edits.Load(ev.UserID); ok {
		r.handleEditorText(v.(*EditSession), ev.Text)
	}
}

// HandleClose finalizes whichever session the user holds when their grid is
// dismissed — explicitly or abnormally. Sessions are destroyed here and
// nowhere else; an abandoned session is cleaned up by this path, not a
// timer.
func (r *Router) HandleClose(ev CloseEvent) {
	if v, ok := r.edits.Load(ev.UserID); ok {
		r.closeEditor(v.(*EditSession))
		return
	}
	if v, ok := r.reorders.Load(ev.UserID); ok {
		r.closeReorder(v.(*ReorderSession))
		return
	}
	r.managers.Delete(ev.UserID)
}

// ActiveEditSession returns the user's edit session, if any. Used by the
// platform front end for display.
func (r *Router) ActiveEditSession(userID string) *EditSession {
	if v, ok := r.edits.Load(userID); ok {
		return v.(*EditSession)
	}
	return nil
}
