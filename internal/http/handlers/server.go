package handlers

import (
	"context"

	"github.com/rogerio-castellano/todo-tracker/internal/activity"
	"github.com/rogerio-castellano/todo-tracker/internal/repo"
)

// CredentialStore registers users and verifies their passwords.
type CredentialStore interface {
	Register(ctx context.Context, username, password string) error
	Login(ctx context.Context, username, password string) (int, error)
}

// Pinger reports whether the store is reachable. *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

var (
	credentials CredentialStore
	todoRepo    repo.TodoRepository
	recorder    activity.Recorder = activity.Nop{}
	store       Pinger

	defaultPageSize = 50
	maxPageSize     = 100
)

func SetCredentialStore(c CredentialStore) {
	credentials = c
}

func SetTodoRepo(r repo.TodoRepository) {
	todoRepo = r
}

// SetActivityRecorder installs the feed written after successful todo changes.
// A nil recorder disables it.
func SetActivityRecorder(r activity.Recorder) {
	if r == nil {
		r = activity.Nop{}
	}
	recorder = r
}

func SetStore(p Pinger) {
	store = p
}

func SetPageSizes(defaultSize, maxSize int) {
	defaultPageSize = defaultSize
	maxPageSize = maxSize
}
