package apierr

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/rogerio-castellano/todo-tracker/internal/db"
)

var taxonomy = []*ResponseError{
	ErrDb,
	ErrUserExists,
	ErrLogin,
	ErrNoUser,
	ErrEdit,
	ErrDelete,
	ErrWrongFormat,
	ErrWrongPath,
}

func TestCodeTable(t *testing.T) {
	want := map[int]string{
		5000: "Database error",
		5001: "The user already exists",
		5003: "Username or password is incorrect",
		5004: "The provided user does not exist",
		5005: "User or todo does not exist",
		5007: "The todo or user does not exist",
		5008: "Invalid JSON format",
		5009: "Invalid path",
	}

	if len(taxonomy) != len(want) {
		t.Fatalf("expected %d taxonomy members, got %d", len(want), len(taxonomy))
	}
	for _, e := range taxonomy {
		msg, ok := want[e.Code]
		if !ok {
			t.Errorf("unexpected code %d", e.Code)
			continue
		}
		if e.Message != msg {
			t.Errorf("code %d: expected message %q, got %q", e.Code, msg, e.Message)
		}
	}
}

func TestResponseErrorJSON(t *testing.T) {
	b, err := json.Marshal(ErrDelete)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	expected := `{"code":5007,"error":"The todo or user does not exist"}`
	if string(b) != expected {
		t.Errorf("expected %s, got %s", expected, b)
	}
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want *ResponseError
	}{
		{name: "nil", err: nil, want: nil},
		{name: "foreign key", err: fmt.Errorf("%w: insert or update violates fk", db.ErrForeignKeyViolation), want: ErrNoUser},
		{name: "unique", err: fmt.Errorf("%w: duplicate key", db.ErrUniqueViolation), want: ErrUserExists},
		{name: "connection lost", err: errors.New("connection refused"), want: ErrDb},
		{name: "taxonomy member", err: ErrLogin, want: ErrLogin},
		{name: "wrapped taxonomy member", err: fmt.Errorf("edit todo 3: %w", ErrEdit), want: ErrEdit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Translate(tt.err)
			if got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
