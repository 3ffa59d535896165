package repo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/rogerio-castellano/todo-tracker/internal/db"
	"github.com/rogerio-castellano/todo-tracker/internal/models"
)

type SQLUserRepository struct {
	db     *sql.DB
	driver string
}

func NewSQLUserRepository(conn *sql.DB, driver string) *SQLUserRepository {
	return &SQLUserRepository{db: conn, driver: driver}
}

func (r *SQLUserRepository) Create(ctx context.Context, u models.User) (models.User, error) {
	query := db.Rebind(r.driver, `INSERT INTO users (username, password_hash) VALUES ($1, $2) RETURNING id`)

	err := r.db.QueryRowContext(ctx, query, u.Username, u.PasswordHash).Scan(&u.ID)
	if err != nil {
		return models.User{}, db.Classify(err)
	}
	return u, nil
}

func (r *SQLUserRepository) GetByUsername(ctx context.Context, username string) (models.User, error) {
	query := db.Rebind(r.driver, `SELECT id, username, password_hash FROM users WHERE username = $1`)

	var u models.User
	err := r.db.QueryRowContext(ctx, query, username).Scan(&u.ID, &u.Username, &u.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	return u, err
}
