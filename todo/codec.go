package todo

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

const todoSchemaURL = "todo.schema.json"

// todoSchema describes one persisted record. completedDate is a string
// exactly when status is Done.
const todoSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["id", "title", "status", "createDate"],
  "properties": {
    "id": {"type": "integer"},
    "title": {"type": "string", "pattern": "\\S"},
    "description": {"type": "string"},
    "status": {"enum": ["Todo", "In Progress", "Done"]},
    "createDate": {"type": "string"},
    "completedDate": {"type": ["string", "null"]}
  },
  "if": {"properties": {"status": {"const": "Done"}}},
  "then": {
    "required": ["completedDate"],
    "properties": {"completedDate": {"type": "string"}}
  },
  "else": {
    "properties": {"completedDate": {"type": "null"}}
  }
}`

var compiledTodoSchema = jsonschema.MustCompileString(todoSchemaURL, todoSchema)

// encodeTodos serializes the full collection. An empty collection encodes as [].
func encodeTodos(todos []Todo) ([]byte, error) {
	if todos == nil {
		todos = []Todo{}
	}
	data, err := json.Marshal(todos)
	if err != nil {
		return nil, fmt.Errorf("marshal todos: %w", err)
	}
	return data, nil
}

// decodeTodos parses a persisted collection. Empty input and a JSON null
// both decode to an empty collection. Data that is not a JSON array is an
// error; records inside the array that fail validation are dropped and
// reported in skipped.
func decodeTodos(data []byte) (todos []Todo, skipped []error, err error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	var records []json.RawMessage
	if err := dec.Decode(&records); err != nil {
		return nil, nil, fmt.Errorf("parse todos: %w", err)
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return nil, nil, fmt.Errorf("parse todos: unexpected data after array")
	}

	seen := make(map[int64]struct{}, len(records))
	for i, raw := range records {
		todo, err := decodeTodo(raw)
		if err != nil {
			skipped = append(skipped, fmt.Errorf("record %d: %w", i, err))
			continue
		}
		if _, ok := seen[todo.ID]; ok {
			skipped = append(skipped, fmt.Errorf("record %d: %w: %d", i, ErrDuplicateID, todo.ID))
			continue
		}
		seen[todo.ID] = struct{}{}
		todos = append(todos, todo)
	}

	return todos, skipped, nil
}

func decodeTodo(raw json.RawMessage) (Todo, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return Todo{}, err
	}
	if err := compiledTodoSchema.Validate(doc); err != nil {
		return Todo{}, err
	}

	var todo Todo
	if err := json.Unmarshal(raw, &todo); err != nil {
		return Todo{}, err
	}
	if err := ValidateTodo(&todo); err != nil {
		return Todo{}, err
	}
	return todo, nil
}
