// Package apierr holds the stable error taxonomy returned to clients.
//
// Codes and messages are part of the wire contract: changing one requires an API
// version bump.
package apierr

import (
	"errors"

	"github.com/rogerio-castellano/todo-tracker/internal/db"
)

const (
	CodeDbError     = 5000
	CodeUserExists  = 5001
	CodeLoginError  = 5003
	CodeNoUser      = 5004
	CodeEditError   = 5005
	CodeDeleteError = 5007
	CodeWrongFormat = 5008
	CodeWrongPath   = 5009
)

// ResponseError is the {code, error} body sent with every failed request.
type ResponseError struct {
	Code    int    `json:"code"`
	Message string `json:"error"`
}

func (e *ResponseError) Error() string {
	return e.Message
}

var (
	ErrDb          = &ResponseError{Code: CodeDbError, Message: "Database error"}
	ErrUserExists  = &ResponseError{Code: CodeUserExists, Message: "The user already exists"}
	ErrLogin       = &ResponseError{Code: CodeLoginError, Message: "Username or password is incorrect"}
	ErrNoUser      = &ResponseError{Code: CodeNoUser, Message: "The provided user does not exist"}
	ErrEdit        = &ResponseError{Code: CodeEditError, Message: "User or todo does not exist"}
	ErrDelete      = &ResponseError{Code: CodeDeleteError, Message: "The todo or user does not exist"}
	ErrWrongFormat = &ResponseError{Code: CodeWrongFormat, Message: "Invalid JSON format"}
	ErrWrongPath   = &ResponseError{Code: CodeWrongPath, Message: "Invalid path"}
)

// Translate maps any error coming out of an operation to a member of the taxonomy.
// Errors already in the taxonomy pass through; storage failures are matched by
// category; everything else collapses into ErrDb.
func Translate(err error) *ResponseError {
	var respErr *ResponseError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &respErr):
		return respErr
	case errors.Is(err, db.ErrForeignKeyViolation):
		return ErrNoUser
	case errors.Is(err, db.ErrUniqueViolation):
		return ErrUserExists
	default:
		return ErrDb
	}
}
