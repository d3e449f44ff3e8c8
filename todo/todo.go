package todo

// Todo represents a single card on the board.
type Todo struct {
	// ID is the creation instant in milliseconds, bumped when needed so that
	// it is unique within the store.
	ID int64 `json:"id"`

	// Title is the short summary of the todo. It is stored as entered.
	Title string `json:"title"`

	// Description provides additional context about the todo.
	Description string `json:"description"`

	// Status is the column the todo sits in.
	Status Status `json:"status"`

	// CreateDate is the display-formatted creation time.
	CreateDate string `json:"createDate"`

	// CompletedDate is the display-formatted time the todo last entered Done.
	// It is nil whenever Status is not Done.
	CompletedDate *string `json:"completedDate"`
}

// IsDone reports whether the todo is in the Done column.
func (t Todo) IsDone() bool {
	return t.Status == StatusDone
}

func (t Todo) clone() Todo {
	if t.CompletedDate != nil {
		completed := *t.CompletedDate
		t.CompletedDate = &completed
	}
	return t
}

func cloneTodos(todos []Todo) []Todo {
	if len(todos) == 0 {
		return nil
	}
	cloned := make([]Todo, len(todos))
	for i := range todos {
		cloned[i] = todos[i].clone()
	}
	return cloned
}
