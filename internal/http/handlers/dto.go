package handlers

import "time"

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type CreateTodoRequest struct {
	UserID int    `json:"user_id"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

type GetTodosRequest struct {
	UserID int  `json:"user_id"`
	Offset *int `json:"offset,omitempty"`
	Count  *int `json:"count,omitempty"`
}

// EditTodoRequest leaves a field unchanged when it is absent or null.
type EditTodoRequest struct {
	UserID int     `json:"user_id"`
	TodoID int     `json:"todo_id"`
	Title  *string `json:"title,omitempty"`
	Body   *string `json:"body,omitempty"`
	Done   *bool   `json:"done,omitempty"`
}

type DeleteTodoRequest struct {
	UserID int `json:"user_id"`
	TodoID int `json:"todo_id"`
}

type EmptyResult struct{}

type LoginResult struct {
	ID int `json:"id"`
}

type CreateTodoResult struct {
	ID           int       `json:"id"`
	CreationTime time.Time `json:"creation_time"`
}

type TodoResponse struct {
	ID           int       `json:"id"`
	Title        string    `json:"title"`
	Body         string    `json:"body"`
	Done         bool      `json:"done"`
	CreationTime time.Time `json:"creation_time"`
}

type TodosResult struct {
	Todos []TodoResponse `json:"todos"`
}

type HealthResult struct {
	Status string `json:"status"`
}
