package repo

import (
	"context"
	"database/sql"

	"github.com/rogerio-castellano/todo-tracker/internal/db"
	"github.com/rogerio-castellano/todo-tracker/internal/models"
)

// SQLTodoRepository runs one statement per operation against Postgres or SQLite.
type SQLTodoRepository struct {
	db     *sql.DB
	driver string
}

func NewSQLTodoRepository(conn *sql.DB, driver string) *SQLTodoRepository {
	return &SQLTodoRepository{db: conn, driver: driver}
}

func (r *SQLTodoRepository) Create(ctx context.Context, userID int, title, body string) (models.Todo, error) {
	query := db.Rebind(r.driver, `INSERT INTO todos (user_id, title, body) VALUES ($1, $2, $3) RETURNING id, done, creation_time`)

	t := models.Todo{UserID: userID, Title: title, Body: body}
	var created db.Timestamp
	err := r.db.QueryRowContext(ctx, query, userID, title, body).Scan(&t.ID, &t.Done, &created)
	if err != nil {
		return models.Todo{}, db.Classify(err)
	}
	t.CreationTime = created.Time
	return t, nil
}

func (r *SQLTodoRepository) List(ctx context.Context, userID int, page Page) ([]models.Todo, error) {
	query := db.Rebind(r.driver, `
		SELECT id, user_id, title, body, done, creation_time
		FROM todos
		WHERE user_id = $1
		ORDER BY id
		LIMIT $2 OFFSET $3`)

	rows, err := r.db.QueryContext(ctx, query, userID, page.Limit, page.Offset)
	if err != nil {
		return nil, db.Classify(err)
	}
	defer rows.Close()

	todos := []models.Todo{}
	for rows.Next() {
		var t models.Todo
		var created db.Timestamp
		if err := rows.Scan(&t.ID, &t.UserID, &t.Title, &t.Body, &t.Done, &created); err != nil {
			return nil, err
		}
		t.CreationTime = created.Time
		todos = append(todos, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return todos, nil
}

func (r *SQLTodoRepository) Edit(ctx context.Context, userID, todoID int, patch models.TodoPatch) error {
	query := db.Rebind(r.driver, `
		UPDATE todos
		SET title = COALESCE($1, title), body = COALESCE($2, body), done = COALESCE($3, done)
		WHERE id = $4 AND user_id = $5`)

	res, err := r.db.ExecContext(ctx, query, patch.Title, patch.Body, patch.Done, todoID, userID)
	if err != nil {
		return db.Classify(err)
	}
	return requireRow(res)
}

func (r *SQLTodoRepository) Delete(ctx context.Context, userID, todoID int) error {
	query := db.Rebind(r.driver, `DELETE FROM todos WHERE id = $1 AND user_id = $2`)

	res, err := r.db.ExecContext(ctx, query, todoID, userID)
	if err != nil {
		return db.Classify(err)
	}
	return requireRow(res)
}

func requireRow(res sql.Result) error {
	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrTodoNotFound
	}
	return nil
}
