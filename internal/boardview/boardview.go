// Package boardview renders a board as three side-by-side columns of cards,
// one column per status.
package boardview

import (
	"fmt"
	"strings"

	"github.com/amonks/todoboard/internal/markdown"
	"github.com/amonks/todoboard/internal/ui"
	"github.com/amonks/todoboard/todo"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

// DefaultWidth is used when no width is configured or detected.
const DefaultWidth = 96

// MinColumnWidth is the narrowest a column is drawn.
const MinColumnWidth = 20

const columnGap = 2

// Lister supplies the todos for one column.
type Lister interface {
	ListByStatus(status todo.Status) []todo.Todo
}

// Options controls board layout.
type Options struct {
	// Width is the total board width. Zero means DefaultWidth.
	Width int

	// Renderer styles the output. Nil means no color.
	Renderer *lipgloss.Renderer

	// Selected is the ID of a card to highlight, if any.
	Selected int64

	// Focused is the index of a column to highlight, or -1.
	Focused int
}

// Columns returns the todos of each status in board order.
func Columns(src Lister) [][]todo.Todo {
	statuses := todo.ValidStatuses()
	columns := make([][]todo.Todo, len(statuses))
	for i, status := range statuses {
		columns[i] = src.ListByStatus(status)
	}
	return columns
}

// Render draws the full board.
func Render(src Lister, opts Options) string {
	renderer := opts.Renderer
	if renderer == nil {
		renderer = ui.NewRenderer(&strings.Builder{}, false)
	}
	width := opts.Width
	if width <= 0 {
		width = DefaultWidth
	}

	statuses := todo.ValidStatuses()
	columnWidth := ColumnWidth(width, len(statuses))
	columns := Columns(src)

	rendered := make([]string, 0, len(statuses)*2)
	for i, status := range statuses {
		if i > 0 {
			rendered = append(rendered, strings.Repeat(" ", columnGap))
		}
		rendered = append(rendered, renderColumn(renderer, status, columns[i], columnWidth, opts.Focused == i, opts.Selected))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// ColumnWidth splits a board width between n columns.
func ColumnWidth(total, n int) int {
	if n <= 0 {
		return total
	}
	return max((total-columnGap*(n-1))/n, MinColumnWidth)
}

func renderColumn(renderer *lipgloss.Renderer, status todo.Status, todos []todo.Todo, width int, focused bool, selected int64) string {
	heading := fmt.Sprintf("%s (%d)", status, len(todos))
	headerStyle := renderer.NewStyle().
		Bold(true).
		Foreground(ui.StatusColor(status)).
		Width(width).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(ui.StatusColor(status))
	if focused {
		headerStyle = headerStyle.Underline(true)
		heading = "> " + heading
	}

	parts := []string{headerStyle.Render(heading)}
	if len(todos) == 0 {
		parts = append(parts, renderer.NewStyle().Foreground(ui.ColorMuted).Italic(true).Width(width).Render("No todos"))
	}
	for _, t := range todos {
		parts = append(parts, RenderCard(renderer, t, width, t.ID == selected))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// RenderCard draws one todo as a bordered card of the given outer width.
// Completed is only shown for done todos.
func RenderCard(renderer *lipgloss.Renderer, t todo.Todo, width int, selected bool) string {
	border := lipgloss.RoundedBorder()
	if selected {
		border = lipgloss.ThickBorder()
	}
	cardStyle := renderer.NewStyle().
		BorderStyle(border).
		BorderForeground(ui.StatusColor(t.Status)).
		Padding(0, 1).
		Width(max(width-2, 1))
	textWidth := max(width-4, 1)

	lines := []string{
		renderer.NewStyle().Bold(true).Render(wordwrap.String(t.Title, textWidth)),
	}
	if strings.TrimSpace(t.Description) != "" {
		lines = append(lines, markdown.Plain(textWidth, t.Description))
	}
	lines = append(lines,
		ui.Muted(renderer, "Status: ")+ui.FormatStatus(renderer, t.Status),
		ui.Muted(renderer, "Created: ")+t.CreateDate,
	)
	if t.IsDone() && t.CompletedDate != nil {
		lines = append(lines, ui.Muted(renderer, "Completed: ")+*t.CompletedDate)
	}
	return cardStyle.Render(strings.Join(lines, "\n"))
}
