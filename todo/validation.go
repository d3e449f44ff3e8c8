package todo

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyTitle is returned when a todo title is empty after trimming.
	ErrEmptyTitle = errors.New("title cannot be empty")

	// ErrInvalidStatus is returned when an invalid status is provided.
	ErrInvalidStatus = errors.New("invalid status")

	// ErrTodoNotFound is returned when a todo with the given ID doesn't exist.
	ErrTodoNotFound = errors.New("todo not found")

	// ErrDuplicateID is returned when stored data holds two todos with one ID.
	ErrDuplicateID = errors.New("duplicate todo id")

	// ErrDoneMissingCompletedDate is returned when a done todo has no completedDate.
	ErrDoneMissingCompletedDate = errors.New("done todo must have completedDate")

	// ErrNotDoneHasCompletedDate is returned when a todo that is not done has a completedDate.
	ErrNotDoneHasCompletedDate = errors.New("todo that is not done cannot have completedDate")
)

// ValidateTitle checks if the title is valid.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	return nil
}

// ValidateTodo checks if a todo struct is valid.
func ValidateTodo(t *Todo) error {
	if err := ValidateTitle(t.Title); err != nil {
		return err
	}

	if !t.Status.IsValid() {
		return invalidStatusError(string(t.Status))
	}

	if t.Status == StatusDone && t.CompletedDate == nil {
		return ErrDoneMissingCompletedDate
	}
	if t.Status != StatusDone && t.CompletedDate != nil {
		return ErrNotDoneHasCompletedDate
	}

	return nil
}

func invalidStatusError(value string) error {
	return fmt.Errorf("%w %q: must be %s", ErrInvalidStatus, value, validStatusList())
}

func validStatusList() string {
	valid := ValidStatuses()
	values := make([]string, 0, len(valid))
	for _, status := range valid {
		values = append(values, string(status))
	}
	return strings.Join(values, ", ")
}
