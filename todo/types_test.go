package todo

import (
	"errors"
	"testing"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		input   string
		want    Status
		wantErr bool
	}{
		{input: "Todo", want: StatusTodo},
		{input: "todo", want: StatusTodo},
		{input: "TO-DO", want: StatusTodo},
		{input: "In Progress", want: StatusInProgress},
		{input: "in_progress", want: StatusInProgress},
		{input: "in-progress", want: StatusInProgress},
		{input: "  in   progress ", want: StatusInProgress},
		{input: "doing", want: StatusInProgress},
		{input: "Done", want: StatusDone},
		{input: "COMPLETED", want: StatusDone},
		{input: "", wantErr: true},
		{input: "blocked", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseStatus(tc.input)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidStatus) {
					t.Fatalf("expected ErrInvalidStatus, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestStatusIsValid(t *testing.T) {
	for _, status := range ValidStatuses() {
		if !status.IsValid() {
			t.Errorf("expected %q to be valid", status)
		}
	}
	for _, status := range []Status{"", "todo", "in_progress", "DONE"} {
		if status.IsValid() {
			t.Errorf("expected %q to be invalid", status)
		}
	}
}

func TestValidateTodo(t *testing.T) {
	completed := "10/18/2026, 3:04:05 PM"
	tests := []struct {
		name string
		todo Todo
		want error
	}{
		{name: "valid todo", todo: Todo{Title: "a", Status: StatusTodo}},
		{name: "valid done", todo: Todo{Title: "a", Status: StatusDone, CompletedDate: &completed}},
		{name: "blank title", todo: Todo{Title: " ", Status: StatusTodo}, want: ErrEmptyTitle},
		{name: "bad status", todo: Todo{Title: "a", Status: "nope"}, want: ErrInvalidStatus},
		{name: "done missing date", todo: Todo{Title: "a", Status: StatusDone}, want: ErrDoneMissingCompletedDate},
		{name: "in progress with date", todo: Todo{Title: "a", Status: StatusInProgress, CompletedDate: &completed}, want: ErrNotDoneHasCompletedDate},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateTodo(&tc.todo)
			if tc.want == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestEventKindString(t *testing.T) {
	if EventStatusChanged.String() != "status changed" {
		t.Fatalf("unexpected string %q", EventStatusChanged.String())
	}
	if EventKind(99).String() != "unknown" {
		t.Fatalf("unexpected string for unknown kind")
	}
}
