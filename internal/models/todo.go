package models

import "time"

// Todo is an item owned by exactly one user. CreationTime is set by the store.
type Todo struct {
	ID           int       `json:"id"`
	UserID       int       `json:"-"`
	Title        string    `json:"title"`
	Body         string    `json:"body"`
	Done         bool      `json:"done"`
	CreationTime time.Time `json:"creation_time"`
}

// TodoPatch carries the fields of a partial update. A nil field keeps its stored value.
type TodoPatch struct {
	Title *string
	Body  *string
	Done  *bool
}
