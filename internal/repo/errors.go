package repo

import "errors"

var (
	// ErrUserNotFound is returned when no user has the requested username.
	ErrUserNotFound = errors.New("user not found")
	// ErrTodoNotFound is returned when no todo matches both the todo id and the owner id.
	ErrTodoNotFound = errors.New("todo not found")
)
