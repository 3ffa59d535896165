package repo

import (
	"context"

	"github.com/rogerio-castellano/todo-tracker/internal/models"
)

// TodoRepository scopes every operation to the owning user id.
type TodoRepository interface {
	// Create inserts a todo for userID. An unknown user is reported as
	// db.ErrForeignKeyViolation.
	Create(ctx context.Context, userID int, title, body string) (models.Todo, error)
	// List returns the user's todos in ascending id order.
	List(ctx context.Context, userID int, page Page) ([]models.Todo, error)
	// Edit applies the non-nil fields of patch. ErrTodoNotFound when no row matched.
	Edit(ctx context.Context, userID, todoID int, patch models.TodoPatch) error
	// Delete removes the todo. ErrTodoNotFound when no row matched.
	Delete(ctx context.Context, userID, todoID int) error
}
