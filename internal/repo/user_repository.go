package repo

import (
	"context"

	"github.com/rogerio-castellano/todo-tracker/internal/models"
)

type UserRepository interface {
	// Create stores a user whose password is already hashed. A taken username is
	// reported as db.ErrUniqueViolation.
	Create(ctx context.Context, u models.User) (models.User, error)
	GetByUsername(ctx context.Context, username string) (models.User, error)
}
