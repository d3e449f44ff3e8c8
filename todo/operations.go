package todo

// Add appends a new todo in the Todo column and persists the collection.
// A title that is empty after trimming returns ErrEmptyTitle and changes
// nothing.
func (s *Store) Add(title, description string) (Todo, error) {
	if err := ValidateTitle(title); err != nil {
		return Todo{}, err
	}

	now := s.now()
	todo := Todo{
		ID:          s.ids.next(now),
		Title:       title,
		Description: description,
		Status:      StatusTodo,
		CreateDate:  now.Format(s.timeFormat),
	}
	s.todos = append(s.todos, todo)

	s.persist()
	s.notify(Event{Kind: EventAdded, Todo: todo.clone()})
	return todo.clone(), nil
}

// ChangeStatus sets the status of the todo with the given ID and persists the
// collection. Entering Done stamps completedDate with the current time, even
// when the todo was already done; any other status clears it. It returns
// false without writing when no todo has that ID.
func (s *Store) ChangeStatus(id int64, status Status) (bool, error) {
	if !status.IsValid() {
		return false, invalidStatusError(string(status))
	}

	i := s.indexOf(id)
	if i < 0 {
		return false, nil
	}

	previous := s.todos[i].Status
	s.todos[i].Status = status
	if status == StatusDone {
		completed := s.timestamp()
		s.todos[i].CompletedDate = &completed
	} else {
		s.todos[i].CompletedDate = nil
	}

	s.persist()
	s.notify(Event{Kind: EventStatusChanged, Todo: s.todos[i].clone(), Previous: previous})
	return true, nil
}

// Remove deletes the todo with the given ID and persists the collection.
// It returns false without writing when no todo has that ID.
func (s *Store) Remove(id int64) bool {
	i := s.indexOf(id)
	if i < 0 {
		return false
	}

	removed := s.todos[i]
	s.todos = append(s.todos[:i], s.todos[i+1:]...)

	s.persist()
	s.notify(Event{Kind: EventRemoved, Todo: removed, Previous: removed.Status})
	return true
}

// ListByStatus returns the todos with the given status in insertion order.
func (s *Store) ListByStatus(status Status) []Todo {
	var result []Todo
	for _, todo := range s.todos {
		if todo.Status == status {
			result = append(result, todo.clone())
		}
	}
	return result
}

// All returns every todo in insertion order.
func (s *Store) All() []Todo {
	return cloneTodos(s.todos)
}

// Get returns the todo with the given ID.
func (s *Store) Get(id int64) (Todo, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return Todo{}, false
	}
	return s.todos[i].clone(), true
}

// Len returns the number of todos in the store.
func (s *Store) Len() int {
	return len(s.todos)
}
