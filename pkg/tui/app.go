package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/tradesmith/tradesmith-cli/pkg/catalog"
	"github.com/tradesmith/tradesmith-cli/pkg/registry"
	"github.com/tradesmith/tradesmith-cli/pkg/session"
)

// StartMode selects which grid the TUI opens first.
type StartMode int

const (
	StartEditor StartMode = iota
	StartManager
	StartReorder
)

// LocalUser is the single user of the terminal deployment. The router is
// multi-user; the TUI drives it for one.
const LocalUser = "admin"

type paneFocus int

const (
	focusGrid paneFocus = iota
	focusStorage
)

// App renders the active session grid and translates key presses into
// router events. It is the terminal implementation of the platform
// capability the session router runs against.
type App struct {
	router  *session.Router
	log     zerolog.Logger
	userID  string
	storage *personalStorage

	grid     *session.Grid
	gridOpen bool
	cursor   int

	focus         paneFocus
	storageCursor int

	textMode   bool
	textPrompt string
	input      textinput.Model

	notices []string
	width   int
	height  int
}

// NewApp builds the TUI platform. The router is attached afterwards because
// router and platform reference each other.
func NewApp(cat *catalog.Catalog, log zerolog.Logger) *App {
	input := textinput.New()
	input.CharLimit = 32
	input.Width = 40

	return &App{
		log:     log.With().Str("component", "tui").Logger(),
		userID:  LocalUser,
		storage: newPersonalStorage(cat),
		input:   input,
	}
}

// SetRouter attaches the session router the app delivers events to.
func (a *App) SetRouter(r *session.Router) {
	a.router = r
}

// ShowGrid implements session.Platform.
func (a *App) ShowGrid(userID string, g *session.Grid) {
	a.grid = g
	a.gridOpen = true
	a.textMode = false
	if a.cursor >= g.Size() {
		a.cursor = 0
	}
}

// CloseGrid implements session.Platform. The close event is delivered
// synchronously so session cleanup finishes before whatever comes next.
func (a *App) CloseGrid(userID string) {
	a.gridOpen = false
	a.grid = nil
	a.router.HandleClose(session.CloseEvent{UserID: userID})
}

// PromptText implements session.Platform: the grid is suspended and a text
// input takes over until one line is submitted.
func (a *App) PromptText(userID, prompt string) {
	a.textMode = true
	a.textPrompt = stripMarkup(prompt)
	a.input.SetValue("")
	a.input.Focus()
}

// Notify implements session.Platform.
func (a *App) Notify(userID, markup string) {
	a.notices = append(a.notices, stripMarkup(markup))
	if len(a.notices) > 3 {
		a.notices = a.notices[len(a.notices)-3:]
	}
}

// Storage implements session.Platform.
func (a *App) Storage(userID string) session.Storage {
	return a.storage
}

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}
		if a.textMode {
			return a.updateTextMode(msg)
		}
		return a.updateGridMode(msg)
	}

	return a, nil
}

func (a *App) updateTextMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		text := a.input.Value()
		a.textMode = false
		a.router.HandleText(session.TextEvent{UserID: a.userID, Text: text})
		return a, a.afterEvent()
	case tea.KeyEsc:
		// An empty submission fails validation, which keeps the previous
		// id and brings the grid back.
		a.textMode = false
		a.router.HandleText(session.TextEvent{UserID: a.userID, Text: ""})
		return a, a.afterEvent()
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a *App) updateGridMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab":
		if a.focus == focusGrid {
			a.focus = focusStorage
		} else {
			a.focus = focusGrid
		}

	case "esc", "q":
		if a.gridOpen {
			a.gridOpen = false
			a.grid = nil
			a.router.HandleClose(session.CloseEvent{UserID: a.userID})
		}
		return a, a.afterEvent()

	case "left", "h":
		a.moveCursor(-1)
	case "right", "l":
		a.moveCursor(1)
	case "up", "k":
		a.moveCursor(-gridColumns)
	case "down", "j":
		a.moveCursor(gridColumns)

	case "enter":
		a.deliverClick(session.ClickPrimary)
		return a, a.afterEvent()
	case "d":
		a.deliverClick(session.ClickSecondary)
		return a, a.afterEvent()
	case "D":
		a.deliverClick(session.ClickShiftSecondary)
		return a, a.afterEvent()
	case "s":
		a.deliverStorageTransfer()
		return a, a.afterEvent()
	}

	return a, nil
}

// gridColumns matches the grid widget convention of nine cells per row.
const gridColumns = 9

func (a *App) moveCursor(delta int) {
	if a.focus == focusStorage {
		step := 1
		if delta < 0 {
			step = -1
		}
		next := a.storageCursor + step
		if next >= 0 && next < a.storage.Len() {
			a.storageCursor = next
		}
		return
	}

	if a.grid == nil {
		return
	}
	next := a.cursor + delta
	if next >= 0 && next < a.grid.Size() {
		a.cursor = next
	}
}

// deliverClick sends a click gesture for the hovered cell. For primary
// clicks on interactive slots the item movement is applied first: a genuine
// stack under the cursor moves back to personal storage, matching the
// platform contract that grid state is already updated when the event
// arrives.
func (a *App) deliverClick(kind session.ClickKind) {
	if a.focus == focusStorage {
		if kind == session.ClickPrimary {
			a.deliverStorageTransfer()
		}
		return
	}
	if a.grid == nil || !a.gridOpen {
		return
	}

	slot := a.cursor
	stack := a.grid.Item(slot)

	if kind == session.ClickPrimary && a.grid.Interactive(slot) && stack.Genuine() {
		a.grid.SetItem(slot, nil)
		a.storage.Add(*stack)
	}

	a.router.HandleClick(session.ClickEvent{
		UserID: a.userID,
		Area:   session.AreaGrid,
		Slot:   slot,
		Kind:   kind,
		Stack:  stack,
	})
}

// deliverStorageTransfer shift-clicks the selected storage stack; the
// router decides which slot it lands in.
func (a *App) deliverStorageTransfer() {
	if !a.gridOpen {
		return
	}
	stack := a.storage.At(a.storageCursor)
	if stack == nil {
		return
	}
	clicked := *stack

	a.router.HandleClick(session.ClickEvent{
		UserID: a.userID,
		Area:   session.AreaStorage,
		Slot:   a.storageCursor,
		Kind:   session.ClickShiftPrimary,
		Stack:  &clicked,
	})

	if a.storageCursor >= a.storage.Len() && a.storageCursor > 0 {
		a.storageCursor--
	}
}

// afterEvent quits once no grid or prompt is left to show.
func (a *App) afterEvent() tea.Cmd {
	if !a.gridOpen && !a.textMode {
		return tea.Quit
	}
	return nil
}

// Launch opens the requested grid for the local user and runs the TUI until
// every session is closed.
func Launch(reg *registry.Registry, cat *catalog.Catalog, log zerolog.Logger, mode StartMode, collection, tradeID string) error {
	app := NewApp(cat, log)
	router := session.NewRouter(reg, &catalog.StackSource{Catalog: cat, Log: log}, app, log)
	app.SetRouter(router)

	switch mode {
	case StartEditor:
		router.OpenEditor(LocalUser, collection, tradeID)
	case StartManager:
		router.OpenManager(LocalUser, collection)
	case StartReorder:
		router.OpenReorder(LocalUser, collection)
	}

	if !app.gridOpen {
		// Nothing opened (unknown collection was already notified).
		for _, notice := range app.notices {
			fmt.Println(notice)
		}
		return nil
	}

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to start the terminal user interface: %w", err)
	}
	return nil
}
