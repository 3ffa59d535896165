// Package auth verifies and persists username/password pairs.
package auth

import (
	"context"
	"errors"

	"github.com/rogerio-castellano/todo-tracker/internal/apierr"
	"github.com/rogerio-castellano/todo-tracker/internal/models"
	"github.com/rogerio-castellano/todo-tracker/internal/repo"
	"golang.org/x/crypto/bcrypt"
)

// maxPasswordBytes is the longest input bcrypt hashes without truncating.
const maxPasswordBytes = 72

// CredentialStore hashes passwords with bcrypt before they reach the user repository.
type CredentialStore struct {
	users repo.UserRepository
	cost  int

	// dummyHash is compared against when the username is unknown so both
	// failures spend the same bcrypt work.
	dummyHash []byte
}

func NewCredentialStore(users repo.UserRepository, cost int) *CredentialStore {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	dummy, err := bcrypt.GenerateFromPassword([]byte("todo-tracker-dummy"), cost)
	if err != nil {
		// only an out-of-range cost fails here; fall back to one bcrypt accepts
		cost = bcrypt.DefaultCost
		dummy, _ = bcrypt.GenerateFromPassword([]byte("todo-tracker-dummy"), cost)
	}
	return &CredentialStore{users: users, cost: cost, dummyHash: dummy}
}

// Register creates a user. A taken username surfaces as db.ErrUniqueViolation, which
// apierr.Translate turns into UserExists.
func (s *CredentialStore) Register(ctx context.Context, username, password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return apierr.ErrWrongFormat
		}
		return err
	}

	_, err = s.users.Create(ctx, models.User{
		Username:     username,
		PasswordHash: string(hashed),
	})
	return err
}

// Login returns the user id for a matching pair. Any failed verification yields
// apierr.ErrLogin, whether or not the username exists.
func (s *CredentialStore) Login(ctx context.Context, username, password string) (int, error) {
	if len(password) > maxPasswordBytes {
		return 0, apierr.ErrLogin
	}

	user, err := s.users.GetByUsername(ctx, username)
	if errors.Is(err, repo.ErrUserNotFound) {
		_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
		return 0, apierr.ErrLogin
	}
	if err != nil {
		return 0, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return 0, apierr.ErrLogin
	}
	return user.ID, nil
}
