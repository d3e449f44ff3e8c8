// Package todo implements the board's todo store.
//
// A Store owns an ordered, in-memory collection of todos and mirrors it into
// a single key-value slot after every mutation. The slot holds a JSON array
// of records and is read once, when the store is opened.
//
// The public API mirrors the board's actions:
//   - Add creates a todo in the Todo column
//   - ChangeStatus moves a todo between Todo, In Progress, and Done
//   - Remove deletes a todo
//   - ListByStatus returns one column in insertion order
package todo

import "strings"

// Status represents the column a todo sits in.
type Status string

const (
	// StatusTodo indicates the todo has not been started.
	StatusTodo Status = "Todo"

	// StatusInProgress indicates the todo is being worked on.
	StatusInProgress Status = "In Progress"

	// StatusDone indicates the todo is complete.
	StatusDone Status = "Done"
)

// ValidStatuses returns all valid status values in board order.
func ValidStatuses() []Status {
	return []Status{StatusTodo, StatusInProgress, StatusDone}
}

// IsValid returns true if the status is a known valid value.
func (s Status) IsValid() bool {
	for _, valid := range ValidStatuses() {
		if s == valid {
			return true
		}
	}
	return false
}

// ParseStatus accepts the stored literals and loose spellings such as
// "in_progress", "in-progress", "doing", or "DONE".
func ParseStatus(value string) (Status, error) {
	normalized := strings.ToLower(value)
	normalized = strings.NewReplacer("_", " ", "-", " ").Replace(normalized)
	normalized = strings.Join(strings.Fields(normalized), " ")

	switch normalized {
	case "todo", "to do":
		return StatusTodo, nil
	case "in progress", "inprogress", "progress", "doing", "started":
		return StatusInProgress, nil
	case "done", "complete", "completed":
		return StatusDone, nil
	}
	return "", invalidStatusError(value)
}

// DefaultKey is the slot name the collection is persisted under.
const DefaultKey = "todos"

// DefaultTimeFormat renders timestamps like "10/18/2026, 3:04:05 PM".
const DefaultTimeFormat = "1/2/2006, 3:04:05 PM"
