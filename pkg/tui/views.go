package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/tradesmith/tradesmith-cli/internal/cli"
	"github.com/tradesmith/tradesmith-cli/pkg/session"
)

func stripMarkup(s string) string {
	return cli.StripMarkup(s)
}

func (a *App) View() string {
	if a.textMode {
		return a.viewTextPrompt()
	}
	if a.grid == nil {
		return "Closing...\n"
	}

	sections := []string{
		titleStyle.Render(stripMarkup(a.grid.Title)),
		a.viewGrid(),
		a.viewDetail(),
		a.viewStorage(),
	}

	if len(a.notices) > 0 {
		sections = append(sections, notifyStyle.Render(strings.Join(a.notices, "\n")))
	}
	sections = append(sections, helpStyle.Render(
		"←↓↑→ move · tab switch pane · enter primary · d secondary · D shift-secondary · s transfer · esc close"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}

func (a *App) viewTextPrompt() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(a.textPrompt),
		a.input.View(),
		helpStyle.Render("enter submit · esc keep previous"),
	) + "\n"
}

func (a *App) viewGrid() string {
	var rows []string
	size := a.grid.Size()

	for start := 0; start < size; start += gridColumns {
		var cells []string
		for slot := start; slot < start+gridColumns && slot < size; slot++ {
			cells = append(cells, a.renderCell(slot))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (a *App) renderCell(slot int) string {
	stack := a.grid.Item(slot)
	label := cellLabel(stack)

	style := cellStyle
	switch {
	case a.focus == focusGrid && slot == a.cursor:
		style = cursorCellStyle
	case a.grid.Interactive(slot):
		style = interactiveCellStyle
	case stack != nil && stack.Action != "":
		style = buttonCellStyle
	}

	return style.Render(label)
}

func cellLabel(stack *session.Stack) string {
	switch {
	case stack == nil:
		return " "
	case stack.Action != "":
		return buttonLabel(stack.Action)
	case stack.Placeholder:
		return "░"
	default:
		name := stripMarkup(stack.Name)
		if name == "" {
			name = stack.Item
		}
		label := name
		if runes := []rune(label); len(runes) > 3 {
			label = string(runes[:3])
		}
		if stack.Amount > 1 {
			return fmt.Sprintf("%s%d", label, stack.Amount)
		}
		return label
	}
}

func buttonLabel(action string) string {
	switch {
	case strings.Contains(action, "save"):
		return "✔"
	case strings.Contains(action, "cancel"), strings.Contains(action, "close"):
		return "✘"
	case strings.Contains(action, "clear"):
		return "⌫"
	case strings.Contains(action, "id"):
		return "ID"
	case strings.Contains(action, "add"):
		return "+"
	case strings.Contains(action, "reorder"):
		return "⇅"
	case strings.Contains(action, "up"):
		return "↑"
	case strings.Contains(action, "down"):
		return "↓"
	case strings.Contains(action, "done"):
		return "✔"
	default:
		return "•"
	}
}

// viewDetail shows the hovered cell or storage item in full.
func (a *App) viewDetail() string {
	var stack *session.Stack
	if a.focus == focusStorage {
		stack = a.storage.At(a.storageCursor)
	} else if a.grid != nil {
		stack = a.grid.Item(a.cursor)
	}
	if stack == nil {
		return detailStyle.Render("(empty)")
	}

	name := stripMarkup(stack.Name)
	if name == "" {
		name = stack.Item
	}
	header := name
	if stack.Amount > 1 {
		header = fmt.Sprintf("%s ×%d", name, stack.Amount)
	}

	lines := []string{detailStyle.Render(header)}
	width := a.width - 4
	if width < 20 {
		width = 60
	}
	for _, lore := range stack.Lore {
		lines = append(lines, loreStyle.Render(wordwrap.String(stripMarkup(lore), width)))
	}
	return strings.Join(lines, "\n")
}

func (a *App) viewStorage() string {
	lines := []string{storageHeaderStyle.Render("Storage")}

	for i := 0; i < a.storage.Len(); i++ {
		stack := a.storage.At(i)
		name := stripMarkup(stack.Name)
		if name == "" {
			name = stack.Item
		}
		line := fmt.Sprintf("  %s ×%d", name, stack.Amount)
		if a.focus == focusStorage && i == a.storageCursor {
			line = storageSelectedStyle.Render("▸" + line[1:])
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}
