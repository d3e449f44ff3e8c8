package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/amonks/todoboard/internal/boardview"
	"github.com/amonks/todoboard/internal/ui"
	"github.com/amonks/todoboard/todo"
	"github.com/spf13/cobra"
)

func TestParseIDs(t *testing.T) {
	ids, err := parseIDs([]string{"1697040000000", " 42 "})
	if err != nil {
		t.Fatalf("parseIDs: %v", err)
	}
	if len(ids) != 2 || ids[0] != 1697040000000 || ids[1] != 42 {
		t.Fatalf("parseIDs = %v", ids)
	}

	if _, err := parseIDs([]string{"1", "abc"}); err == nil || !strings.Contains(err.Error(), `"abc"`) {
		t.Fatalf("expected error naming abc, got %v", err)
	}
}

func TestNotFoundError(t *testing.T) {
	if err := notFoundError(nil); err != nil {
		t.Fatalf("expected nil for no missing ids, got %v", err)
	}

	err := notFoundError([]int64{5, 7})
	if !errors.Is(err, todo.ErrTodoNotFound) {
		t.Fatalf("expected ErrTodoNotFound, got %v", err)
	}
	if err.Error() != "todo not found: 5, 7" {
		t.Fatalf("message = %q", err.Error())
	}
	var exitErr interface{ ExitCode() int }
	if !errors.As(err, &exitErr) || exitErr.ExitCode() != exitNotFound {
		t.Fatalf("expected exit code %d", exitNotFound)
	}
}

func TestShouldUseEditor(t *testing.T) {
	cases := []struct {
		name        string
		hasTitle    bool
		edit        bool
		noEdit      bool
		interactive bool
		want        bool
	}{
		{name: "edit flag wins", hasTitle: true, edit: true, want: true},
		{name: "edit flag off a terminal", edit: true, want: true},
		{name: "no-edit on a terminal", noEdit: true, interactive: true, want: false},
		{name: "title given on a terminal", hasTitle: true, interactive: true, want: false},
		{name: "no title on a terminal", interactive: true, want: true},
		{name: "no title when piped", want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := shouldUseEditor(tc.hasTitle, tc.edit, tc.noEdit, tc.interactive); got != tc.want {
				t.Fatalf("shouldUseEditor = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestResolveDescriptionFromStdin(t *testing.T) {
	got, err := resolveDescriptionFromStdin("inline", strings.NewReader("ignored"))
	if err != nil || got != "inline" {
		t.Fatalf("inline description = %q, %v", got, err)
	}

	got, err = resolveDescriptionFromStdin("-", strings.NewReader("line one\nline two\r\n"))
	if err != nil {
		t.Fatalf("stdin description: %v", err)
	}
	if got != "line one\nline two" {
		t.Fatalf("stdin description = %q", got)
	}
}

func TestEmptyListMessage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		filter   string
		statuses []todo.Status
		want     string
	}{
		{"empty board", 0, "", todo.ValidStatuses(), "No todos found."},
		{"empty board with filter", 0, "done", []todo.Status{todo.StatusDone}, "No todos found."},
		{"empty column", 3, "in-progress", []todo.Status{todo.StatusInProgress}, "No todos found with status In Progress."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := emptyListMessage(tt.total, tt.filter, tt.statuses); got != tt.want {
				t.Fatalf("emptyListMessage = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatTodoTable(t *testing.T) {
	completed := "10/11/2023, 4:00:00 PM"
	items := []todo.Todo{
		{ID: 1697040000000, Title: "Buy milk", Status: todo.StatusTodo, CreateDate: "10/11/2023, 3:00:00 PM"},
		{ID: 1697040000001, Title: "Walk\ndog", Status: todo.StatusDone, CreateDate: "10/11/2023, 3:05:00 PM", CompletedDate: &completed},
	}

	got := formatTodoTable(ui.NewRenderer(&bytes.Buffer{}, false), items)

	expected := "" +
		"ID             STATUS  TITLE     CREATED                 COMPLETED\n" +
		"1697040000000  Todo    Buy milk  10/11/2023, 3:00:00 PM  -\n" +
		"1697040000001  Done    Walk dog  10/11/2023, 3:05:00 PM  10/11/2023, 4:00:00 PM\n"
	if got != expected {
		t.Fatalf("unexpected table:\n%s\nwant:\n%s", got, expected)
	}
}

func TestBoardWidth(t *testing.T) {
	if got := boardWidth(80, 120); got != 80 {
		t.Errorf("flag width = %d, want 80", got)
	}
	if got := boardWidth(0, 120); got != 120 {
		t.Errorf("config width = %d, want 120", got)
	}
	if got := boardWidth(0, 0); got <= 0 {
		t.Errorf("fallback width = %d, want positive", got)
	}
	if boardview.DefaultWidth <= 0 {
		t.Fatal("default width must be positive")
	}
}

func TestFlagAliases(t *testing.T) {
	var description, status string
	cmd := &cobra.Command{Use: "test", RunE: func(*cobra.Command, []string) error { return nil }}
	cmd.Flags().StringVarP(&description, "description", "d", "", "")
	cmd.Flags().StringVar(&status, "status", "", "")
	addFlagAliases(cmd)

	if err := cmd.ParseFlags([]string{"--desc", "2 liters", "--state", "done"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if description != "2 liters" || status != "done" {
		t.Fatalf("description=%q status=%q", description, status)
	}

	if err := cmd.ParseFlags([]string{"--cols", "80"}); err == nil {
		t.Fatal("alias for an undefined flag should stay unknown")
	}
}
