package boardview

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/amonks/todoboard/internal/kv"
	"github.com/amonks/todoboard/internal/ui"
	"github.com/amonks/todoboard/todo"
	"github.com/charmbracelet/lipgloss"
)

func newBoard(t *testing.T) *todo.Store {
	t.Helper()

	now := time.Date(2026, 10, 18, 15, 4, 5, 0, time.UTC)
	store, err := todo.Open(kv.NewMemory(), todo.OpenOptions{Now: func() time.Time { return now }})
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return store
}

func mustAdd(t *testing.T, store *todo.Store, title, description string) todo.Todo {
	t.Helper()

	item, err := store.Add(title, description)
	if err != nil {
		t.Fatalf("add %q: %v", title, err)
	}
	return item
}

func TestRender_ColumnsInStatusOrder(t *testing.T) {
	store := newBoard(t)
	mustAdd(t, store, "Buy milk", "2 liters")
	walk := mustAdd(t, store, "Walk dog", "")
	if _, err := store.ChangeStatus(walk.ID, todo.StatusDone); err != nil {
		t.Fatalf("change status: %v", err)
	}

	out := Render(store, Options{Width: 96, Focused: -1})

	first := strings.Split(out, "\n")[0]
	todoAt := strings.Index(first, "Todo (1)")
	progressAt := strings.Index(first, "In Progress (0)")
	doneAt := strings.Index(first, "Done (1)")
	if todoAt < 0 || progressAt <= todoAt || doneAt <= progressAt {
		t.Fatalf("expected headers in order, got %q", first)
	}
	if !strings.Contains(out, "No todos") {
		t.Errorf("expected empty column placeholder:\n%s", out)
	}
	if !strings.Contains(out, "Buy milk") || !strings.Contains(out, "2 liters") {
		t.Errorf("expected todo card:\n%s", out)
	}
}

func TestRender_FitsWidth(t *testing.T) {
	store := newBoard(t)
	mustAdd(t, store, "A rather long title that needs to wrap inside its card", "and a description that also goes on for a while")

	out := Render(store, Options{Width: 96, Focused: -1})

	for _, line := range strings.Split(out, "\n") {
		if w := lipgloss.Width(line); w > 96 {
			t.Fatalf("line width %d exceeds 96: %q", w, line)
		}
	}
}

func TestRender_PlainWithoutRenderer(t *testing.T) {
	store := newBoard(t)
	mustAdd(t, store, "Buy milk", "")

	out := Render(store, Options{Focused: -1})

	if strings.Contains(out, "\x1b[") {
		t.Fatalf("expected no ANSI escapes, got %q", out)
	}
}

func TestRender_FocusedColumn(t *testing.T) {
	store := newBoard(t)

	out := Render(store, Options{Width: 96, Focused: 1})

	if !strings.Contains(out, "> In Progress (0)") {
		t.Fatalf("expected focus marker on In Progress:\n%s", out)
	}
	if strings.Contains(out, "> Todo") {
		t.Fatalf("only the focused column is marked:\n%s", out)
	}
}

func TestRenderCard_CompletedOnlyWhenDone(t *testing.T) {
	renderer := ui.NewRenderer(&bytes.Buffer{}, false)
	completed := "10/18/2026, 3:04:05 PM"

	open := RenderCard(renderer, todo.Todo{ID: 1, Title: "Buy milk", Status: todo.StatusInProgress, CreateDate: completed}, 30, false)
	if strings.Contains(open, "Completed:") {
		t.Errorf("open card should not show Completed:\n%s", open)
	}
	if !strings.Contains(open, "Status: In Progress") || !strings.Contains(open, "Created: 10/18/2026") {
		t.Errorf("card missing fields:\n%s", open)
	}

	done := RenderCard(renderer, todo.Todo{ID: 1, Title: "Buy milk", Status: todo.StatusDone, CreateDate: completed, CompletedDate: &completed}, 40, false)
	if !strings.Contains(done, "Completed: 10/18/2026, 3:04:05 PM") {
		t.Errorf("done card should show Completed:\n%s", done)
	}
}

func TestRenderCard_SelectedBorder(t *testing.T) {
	renderer := ui.NewRenderer(&bytes.Buffer{}, false)
	item := todo.Todo{ID: 1, Title: "Buy milk", Status: todo.StatusTodo, CreateDate: "now"}

	if card := RenderCard(renderer, item, 30, false); !strings.HasPrefix(card, "╭") {
		t.Errorf("expected rounded border, got:\n%s", card)
	}
	if card := RenderCard(renderer, item, 30, true); !strings.HasPrefix(card, "┏") {
		t.Errorf("expected thick border for selection, got:\n%s", card)
	}
}

func TestColumnWidth(t *testing.T) {
	tests := []struct {
		total, n, want int
	}{
		{96, 3, 30},
		{100, 3, 32},
		{30, 3, MinColumnWidth},
		{50, 0, 50},
	}

	for _, tt := range tests {
		if got := ColumnWidth(tt.total, tt.n); got != tt.want {
			t.Errorf("ColumnWidth(%d, %d) = %d, want %d", tt.total, tt.n, got, tt.want)
		}
	}
}

func TestRenderCard_DescriptionLineEndings(t *testing.T) {
	renderer := ui.NewRenderer(&bytes.Buffer{}, false)
	item := todo.Todo{ID: 1, Title: "Buy milk", Description: "2 liters\r\noat milk\r\n", Status: todo.StatusTodo, CreateDate: "now"}

	card := RenderCard(renderer, item, 30, false)
	if strings.Contains(card, "\r") {
		t.Fatalf("card should not carry carriage returns: %q", card)
	}
	if !strings.Contains(card, "2 liters") || !strings.Contains(card, "oat milk") {
		t.Fatalf("card missing description:\n%s", card)
	}
}
