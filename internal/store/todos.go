package store

import (
	"time"

	"github.com/google/uuid"
)

const todosFile = "todos.json"

// Todo is a one-off task, unlike habits which recur daily.
type Todo struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Completed   bool       `json:"completed"`
	Priority    string     `json:"priority"`
	DueDate     string     `json:"dueDate,omitempty"` // YYYY-MM-DD
	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

type todosDoc struct {
	Todos []Todo `json:"todos"`
}

// ListTodos returns every todo.
func (s *Store) ListTodos() ([]Todo, error) {
	var doc todosDoc
	if err := s.readDoc(todosFile, &doc); err != nil {
		return nil, err
	}
	if doc.Todos == nil {
		doc.Todos = []Todo{}
	}
	return doc.Todos, nil
}

// GetTodo returns a todo by id, or nil if absent.
func (s *Store) GetTodo(id string) (*Todo, error) {
	todos, err := s.ListTodos()
	if err != nil {
		return nil, err
	}
	for i := range todos {
		if todos[i].ID == id {
			return &todos[i], nil
		}
	}
	return nil, nil
}

// AddTodo creates a todo with a fresh id.
func (s *Store) AddTodo(t Todo) (*Todo, error) {
	var doc todosDoc
	if err := s.readDoc(todosFile, &doc); err != nil {
		return nil, err
	}

	t.ID = uuid.NewString()
	t.Completed = false
	t.CompletedAt = nil
	if t.Priority == "" {
		t.Priority = "medium"
	}
	t.CreatedAt = s.now()

	doc.Todos = append(doc.Todos, t)
	if err := s.writeDoc(todosFile, &doc); err != nil {
		return nil, err
	}
	return &t, nil
}

// UpdateTodo applies a JSON patch. Marking a todo completed stamps
// completedAt; unmarking clears it.
func (s *Store) UpdateTodo(id string, patch []byte) (*Todo, error) {
	var doc todosDoc
	if err := s.readDoc(todosFile, &doc); err != nil {
		return nil, err
	}

	for i := range doc.Todos {
		if doc.Todos[i].ID != id {
			continue
		}
		prev := doc.Todos[i]
		if err := mergePatch(&doc.Todos[i], patch); err != nil {
			return nil, err
		}
		doc.Todos[i].ID = prev.ID
		doc.Todos[i].CreatedAt = prev.CreatedAt

		if doc.Todos[i].Completed && !prev.Completed {
			now := s.now()
			doc.Todos[i].CompletedAt = &now
		} else if !doc.Todos[i].Completed {
			doc.Todos[i].CompletedAt = nil
		}

		if err := s.writeDoc(todosFile, &doc); err != nil {
			return nil, err
		}
		return &doc.Todos[i], nil
	}
	return nil, nil
}

// DeleteTodo removes a todo permanently.
func (s *Store) DeleteTodo(id string) error {
	var doc todosDoc
	if err := s.readDoc(todosFile, &doc); err != nil {
		return err
	}
	kept := doc.Todos[:0]
	for _, t := range doc.Todos {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	doc.Todos = kept
	return s.writeDoc(todosFile, &doc)
}
