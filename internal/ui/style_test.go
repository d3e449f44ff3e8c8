package ui

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/amonks/todoboard/todo"
)

func TestColorEnabled(t *testing.T) {
	file, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatalf("create temp: %v", err)
	}
	defer file.Close()

	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "no color", env: map[string]string{"NO_COLOR": "1"}},
		{name: "dumb terminal", env: map[string]string{"TERM": "dumb"}},
		{name: "not a terminal", env: map[string]string{"TERM": "xterm-256color"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			getenv := func(key string) string { return tt.env[key] }
			if colorEnabled(getenv, file) {
				t.Fatal("expected color to be disabled")
			}
		})
	}
}

func TestStatusColor(t *testing.T) {
	tests := []struct {
		status todo.Status
		want   string
	}{
		{todo.StatusTodo, string(ColorTodo)},
		{todo.StatusInProgress, string(ColorInProgress)},
		{todo.StatusDone, string(ColorDone)},
		{todo.Status("Blocked"), string(ColorMuted)},
	}

	for _, tt := range tests {
		if got := string(StatusColor(tt.status)); got != tt.want {
			t.Errorf("StatusColor(%q) = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestFormatStatus_PlainWithoutColor(t *testing.T) {
	renderer := NewRenderer(&bytes.Buffer{}, false)

	if got := FormatStatus(renderer, todo.StatusInProgress); got != "In Progress" {
		t.Fatalf("FormatStatus = %q, want plain text", got)
	}
}

func TestFormatStatus_ColoredWhenEnabled(t *testing.T) {
	renderer := NewRenderer(&bytes.Buffer{}, true)

	got := FormatStatus(renderer, todo.StatusDone)
	if !strings.Contains(got, "\x1b[") || !strings.Contains(got, "Done") {
		t.Fatalf("FormatStatus = %q, want ANSI-styled Done", got)
	}
}
