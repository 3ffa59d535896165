package repo

import (
	"context"
	"fmt"
	"sync"

	"github.com/rogerio-castellano/todo-tracker/internal/db"
	"github.com/rogerio-castellano/todo-tracker/internal/models"
)

type InMemoryUserRepository struct {
	mu     sync.RWMutex
	users  []models.User
	nextID int
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{
		users:  []models.User{},
		nextID: 1,
	}
}

func (r *InMemoryUserRepository) Create(_ context.Context, u models.User) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Username == u.Username {
			return models.User{}, fmt.Errorf("%w: username %q already exists", db.ErrUniqueViolation, u.Username)
		}
	}

	u.ID = r.nextID
	r.nextID++
	r.users = append(r.users, u)
	return u, nil
}

func (r *InMemoryUserRepository) GetByUsername(_ context.Context, username string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Username == username {
			return user, nil
		}
	}
	return models.User{}, ErrUserNotFound
}

func (r *InMemoryUserRepository) exists(id int) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.ID == id {
			return true
		}
	}
	return false
}

func (r *InMemoryUserRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.users = []models.User{}
	r.nextID = 1
}
