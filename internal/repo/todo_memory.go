package repo

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rogerio-castellano/todo-tracker/internal/db"
	"github.com/rogerio-castellano/todo-tracker/internal/models"
)

// InMemoryTodoRepository is an in-memory implementation of TodoRepository.
// It checks owners against users the way the foreign key does in SQL.
type InMemoryTodoRepository struct {
	mu     sync.Mutex
	users  *InMemoryUserRepository
	todos  []models.Todo
	nextID int
}

// NewInMemoryTodoRepository creates a repository whose owners live in users.
func NewInMemoryTodoRepository(users *InMemoryUserRepository) *InMemoryTodoRepository {
	return &InMemoryTodoRepository{
		users:  users,
		todos:  []models.Todo{},
		nextID: 1,
	}
}

func (r *InMemoryTodoRepository) Create(_ context.Context, userID int, title, body string) (models.Todo, error) {
	if !r.users.exists(userID) {
		return models.Todo{}, fmt.Errorf("%w: user %d", db.ErrForeignKeyViolation, userID)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	t := models.Todo{
		ID:           r.nextID,
		UserID:       userID,
		Title:        title,
		Body:         body,
		CreationTime: time.Now().UTC(),
	}
	r.nextID++
	r.todos = append(r.todos, t)
	return t, nil
}

func (r *InMemoryTodoRepository) List(_ context.Context, userID int, page Page) ([]models.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	owned := []models.Todo{}
	for _, t := range r.todos {
		if t.UserID == userID {
			owned = append(owned, t)
		}
	}

	// If offset is greater than the number of owned todos, return empty slice
	if page.Offset >= len(owned) {
		return []models.Todo{}, nil
	}

	end := min(page.Offset+page.Limit, len(owned))
	return owned[page.Offset:end], nil
}

func (r *InMemoryTodoRepository) Edit(_ context.Context, userID, todoID int, patch models.TodoPatch) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, t := range r.todos {
		if t.ID != todoID || t.UserID != userID {
			continue
		}
		if patch.Title != nil {
			t.Title = *patch.Title
		}
		if patch.Body != nil {
			t.Body = *patch.Body
		}
		if patch.Done != nil {
			t.Done = *patch.Done
		}
		r.todos[i] = t
		return nil
	}
	return ErrTodoNotFound
}

func (r *InMemoryTodoRepository) Delete(_ context.Context, userID, todoID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, t := range r.todos {
		if t.ID == todoID && t.UserID == userID {
			r.todos = append(r.todos[:i], r.todos[i+1:]...)
			return nil
		}
	}
	return ErrTodoNotFound
}

func (r *InMemoryTodoRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.todos = []models.Todo{}
	r.nextID = 1
}
