// Package boardtui is the interactive board: an add form above three
// status columns, with per-card remove and move actions.
package boardtui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/amonks/todoboard/internal/boardview"
	"github.com/amonks/todoboard/todo"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Board is the store the TUI reads and mutates.
type Board interface {
	Add(title, description string) (todo.Todo, error)
	ChangeStatus(id int64, status todo.Status) (bool, error)
	Remove(id int64) bool
	ListByStatus(status todo.Status) []todo.Todo
	Subscribe(fn todo.Listener) (unsubscribe func())
	PersistError() error
}

type focusPane int

const (
	focusForm focusPane = iota
	focusBoard
)

type statusLevel int

const (
	statusNone statusLevel = iota
	statusInfo
	statusSuccess
	statusError
)

// activity is shared between the model copies and the store listener.
type activity struct {
	message string
	level   statusLevel
}

func (a *activity) set(message string, level statusLevel) {
	a.message = message
	a.level = level
}

func (a *activity) record(event todo.Event) {
	switch event.Kind {
	case todo.EventAdded:
		a.set(fmt.Sprintf("Added %q", event.Todo.Title), statusSuccess)
	case todo.EventStatusChanged:
		a.set(fmt.Sprintf("Moved %q to %s", event.Todo.Title, event.Todo.Status), statusSuccess)
	case todo.EventRemoved:
		a.set(fmt.Sprintf("Removed %q", event.Todo.Title), statusSuccess)
	}
}

type model struct {
	board       Board
	renderer    *lipgloss.Renderer
	styles      styles
	width       int
	height      int
	focus       focusPane
	form        addForm
	column      int
	rows        []int
	status      *activity
	unsubscribe func()
}

// Run starts the interactive board and blocks until the user quits.
func Run(ctx context.Context, board Board) error {
	if board == nil {
		return fmt.Errorf("board is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	m := newModel(board, lipgloss.DefaultRenderer())
	defer m.unsubscribe()

	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

func newModel(board Board, renderer *lipgloss.Renderer) model {
	status := &activity{}
	m := model{
		board:    board,
		renderer: renderer,
		styles:   newStyles(renderer),
		focus:    focusForm,
		form:     newAddForm(),
		rows:     make([]int, len(todo.ValidStatuses())),
		status:   status,
	}
	m.unsubscribe = board.Subscribe(status.record)
	m.form.focus(fieldTitle)
	return m
}

func (m model) Init() tea.Cmd {
	return m.form.focus(fieldTitle)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.form.setWidth(m.formWidth())
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.focus == focusForm {
			return m.handleFormKey(msg)
		}
		return m.handleBoardKey(msg)
	}

	if m.focus == focusForm {
		var cmd tea.Cmd
		m.form, cmd = m.form.update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.setFocus(focusBoard), nil
	case "tab":
		if m.form.field == fieldTitle {
			cmd := m.form.focus(fieldDescription)
			return m, cmd
		}
		return m.setFocus(focusBoard), nil
	case "shift+tab":
		if m.form.field == fieldDescription {
			cmd := m.form.focus(fieldTitle)
			return m, cmd
		}
		return m.setFocus(focusBoard), nil
	case "ctrl+s":
		return m.submit(), nil
	case "enter":
		if m.form.field == fieldTitle {
			return m.submit(), nil
		}
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

func (m model) submit() model {
	title, description := m.form.values()
	if _, err := m.board.Add(title, description); err != nil {
		m.status.set(fmt.Sprintf("Add failed: %v", err), statusError)
		return m
	}
	m.form.reset()
	m.form.focus(fieldTitle)
	m.checkPersist()
	return m
}

func (m model) handleBoardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	statuses := todo.ValidStatuses()
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "a", "n", "tab", "shift+tab":
		m = m.setFocus(focusForm)
		cmd := m.form.focus(fieldTitle)
		return m, cmd
	case "left", "h":
		m.column = (m.column + len(statuses) - 1) % len(statuses)
	case "right", "l":
		m.column = (m.column + 1) % len(statuses)
	case "up", "k":
		m.rows[m.column] = max(m.rows[m.column]-1, 0)
	case "down", "j":
		m.rows[m.column]++
	case "1", "2", "3":
		target := statuses[int(msg.Runes[0]-'1')]
		return m.moveSelected(target), nil
	case "x", "delete", "backspace":
		return m.removeSelected(), nil
	}
	m.clampRows()
	return m, nil
}

func (m model) setFocus(target focusPane) model {
	m.focus = target
	if target == focusBoard {
		m.form.blur()
		m.clampRows()
	}
	return m
}

func (m model) selected() (todo.Todo, bool) {
	if m.focus != focusBoard {
		return todo.Todo{}, false
	}
	items := m.board.ListByStatus(todo.ValidStatuses()[m.column])
	row := m.rows[m.column]
	if row < 0 || row >= len(items) {
		return todo.Todo{}, false
	}
	return items[row], true
}

func (m model) moveSelected(target todo.Status) model {
	item, ok := m.selected()
	if !ok {
		m.status.set("No todo selected", statusInfo)
		return m
	}
	if item.Status == target {
		m.status.set(fmt.Sprintf("%q is already %s", item.Title, target), statusInfo)
		return m
	}
	found, err := m.board.ChangeStatus(item.ID, target)
	if err != nil {
		m.status.set(fmt.Sprintf("Move failed: %v", err), statusError)
		return m
	}
	if !found {
		m.status.set(fmt.Sprintf("Todo %d no longer exists", item.ID), statusError)
	}
	m.clampRows()
	m.checkPersist()
	return m
}

func (m model) removeSelected() model {
	item, ok := m.selected()
	if !ok {
		m.status.set("No todo selected", statusInfo)
		return m
	}
	if !m.board.Remove(item.ID) {
		m.status.set(fmt.Sprintf("Todo %d no longer exists", item.ID), statusError)
	}
	m.clampRows()
	m.checkPersist()
	return m
}

func (m *model) clampRows() {
	for i, status := range todo.ValidStatuses() {
		count := len(m.board.ListByStatus(status))
		m.rows[i] = max(min(m.rows[i], count-1), 0)
	}
}

func (m model) checkPersist() {
	if err := m.board.PersistError(); err != nil {
		m.status.set(fmt.Sprintf("Not saved: %v", err), statusError)
	}
}

func (m model) formWidth() int {
	// pane border and padding
	return max(m.width-4, 1)
}

func (m model) View() string {
	if m.width == 0 {
		return "Loading board..."
	}

	var selectedID int64
	focusedColumn := -1
	if item, ok := m.selected(); ok {
		selectedID = item.ID
	}
	if m.focus == focusBoard {
		focusedColumn = m.column
	}

	board := boardview.Render(m.board, boardview.Options{
		Width:    m.width,
		Renderer: m.renderer,
		Selected: selectedID,
		Focused:  focusedColumn,
	})

	parts := []string{
		m.styles.title.Render("todoboard"),
		m.renderForm(),
		board,
		m.renderHelpLine(),
		m.renderStatusLine(),
	}
	return strings.Join(parts, "\n")
}

func (m model) renderForm() string {
	pane := m.styles.pane
	if m.focus == focusForm {
		pane = m.styles.paneActive
	}
	body := strings.Join([]string{
		m.styles.label.Render("Title"),
		m.form.title.View(),
		m.styles.label.Render("Description"),
		m.form.description.View(),
	}, "\n")
	return pane.Width(m.formWidth() + 2).Render(body)
}

func (m model) renderHelpLine() string {
	help := "enter: add  tab: next field  esc: board  ctrl+s: add  ctrl+c: quit"
	if m.focus == focusBoard {
		help = "←/→ column  ↑/↓ card  1 todo  2 in progress  3 done  x remove  a add  q quit"
	}
	return m.styles.help.Render(help)
}

func (m model) renderStatusLine() string {
	switch m.status.level {
	case statusError:
		return m.styles.statusError.Render(m.status.message)
	case statusSuccess:
		return m.styles.statusSuccess.Render(m.status.message)
	case statusInfo:
		return m.styles.statusInfo.Render(m.status.message)
	default:
		return ""
	}
}
