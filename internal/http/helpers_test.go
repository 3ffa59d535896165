package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/rogerio-castellano/todo-tracker/internal/activity"
	"github.com/rogerio-castellano/todo-tracker/internal/apierr"
	"github.com/rogerio-castellano/todo-tracker/internal/auth"
	"github.com/rogerio-castellano/todo-tracker/internal/http/handlers"
	"github.com/rogerio-castellano/todo-tracker/internal/repo"
)

var (
	memUsers = repo.NewInMemoryUserRepository()
	memTodos = repo.NewInMemoryTodoRepository(memUsers)
)

// setupMemoryRepos empties the shared in-memory repositories and wires the handlers to them.
func setupMemoryRepos(t *testing.T) {
	t.Helper()
	memTodos.Clear()
	memUsers.Clear()

	handlers.SetCredentialStore(auth.NewCredentialStore(memUsers, bcrypt.MinCost))
	handlers.SetTodoRepo(memTodos)
	handlers.SetPageSizes(50, 100)
	handlers.SetActivityRecorder(activity.Nop{})
	handlers.SetStore(nil)
}

func post(r http.Handler, path string, payload any) *httptest.ResponseRecorder {
	var body []byte
	switch p := payload.(type) {
	case string:
		body = []byte(p)
	default:
		body, _ = json.Marshal(p)
	}

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func expectAccepted(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	if w.Code != http.StatusAccepted {
		t.Fatalf("expected 202 Accepted, got %d: %s", w.Code, w.Body.String())
	}
	if out == nil {
		return
	}
	if err := json.NewDecoder(w.Body).Decode(out); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
}

func expectError(t *testing.T, w *httptest.ResponseRecorder, want *apierr.ResponseError) {
	t.Helper()
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 Bad Request, got %d: %s", w.Code, w.Body.String())
	}

	var resp apierr.ResponseError
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp != *want {
		t.Errorf("expected %+v, got %+v", *want, resp)
	}
}

func registerAndLogin(t *testing.T, r http.Handler, username, password string) int {
	t.Helper()
	creds := handlers.CredentialsRequest{Username: username, Password: password}
	expectAccepted(t, post(r, "/register", creds), nil)

	var login handlers.LoginResult
	expectAccepted(t, post(r, "/login", creds), &login)
	return login.ID
}

func createTodo(t *testing.T, r http.Handler, userID int, title, body string) handlers.CreateTodoResult {
	t.Helper()
	var created handlers.CreateTodoResult
	expectAccepted(t, post(r, "/create", handlers.CreateTodoRequest{UserID: userID, Title: title, Body: body}), &created)
	return created
}

func listTodos(t *testing.T, r http.Handler, payload any) []handlers.TodoResponse {
	t.Helper()
	var result handlers.TodosResult
	expectAccepted(t, post(r, "/get", payload), &result)
	return result.Todos
}
