package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"

	"github.com/rogerio-castellano/todo-tracker/internal/activity"
	"github.com/rogerio-castellano/todo-tracker/internal/apierr"
	"github.com/rogerio-castellano/todo-tracker/internal/models"
	"github.com/rogerio-castellano/todo-tracker/internal/repo"
)

// CreateTodoHandler godoc
// @Summary Create a todo for a user
// @Tags todos
// @Accept json
// @Produce json
// @Param todo body CreateTodoRequest true "Todo to add"
// @Success 202 {object} CreateTodoResult
// @Failure 400 {object} apierr.ResponseError "WrongFormat, NoUser or DbError"
// @Router /create [post]
func CreateTodoHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateTodoRequest
	if err := readJSON(w, r, createRequestSchema, &req); err != nil {
		writeFormatError(w, r, err)
		return
	}

	created, err := todoRepo.Create(r.Context(), req.UserID, req.Title, req.Body)
	if err != nil {
		writeError(w, r, err)
		return
	}

	recordActivity(r, req.UserID, activity.OpCreate, created.ID)
	writeAccepted(w, r, CreateTodoResult{
		ID:           created.ID,
		CreationTime: created.CreationTime,
	})
}

// GetTodosHandler godoc
// @Summary List a user's todos
// @Description Todos are ordered by ascending id. count defaults to 50 and is capped at 100.
// @Tags todos
// @Accept json
// @Produce json
// @Param query body GetTodosRequest true "Owner and page window"
// @Success 202 {object} TodosResult
// @Failure 400 {object} apierr.ResponseError "WrongFormat or DbError"
// @Router /get [post]
func GetTodosHandler(w http.ResponseWriter, r *http.Request) {
	var req GetTodosRequest
	if err := readJSON(w, r, getRequestSchema, &req); err != nil {
		writeFormatError(w, r, err)
		return
	}

	page := repo.NewPage(req.Offset, req.Count, defaultPageSize, maxPageSize)
	todos, err := todoRepo.List(r.Context(), req.UserID, page)
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := TodosResult{Todos: make([]TodoResponse, len(todos))}
	for i, t := range todos {
		resp.Todos[i] = TodoResponse{
			ID:           t.ID,
			Title:        t.Title,
			Body:         t.Body,
			Done:         t.Done,
			CreationTime: t.CreationTime,
		}
	}
	writeAccepted(w, r, resp)
}

// EditTodoHandler godoc
// @Summary Partially update a todo
// @Description Absent or null fields keep their stored value.
// @Tags todos
// @Accept json
// @Produce json
// @Param todo body EditTodoRequest true "Fields to change"
// @Success 202 {object} EmptyResult
// @Failure 400 {object} apierr.ResponseError "WrongFormat, EditError or DbError"
// @Router /edit [post]
func EditTodoHandler(w http.ResponseWriter, r *http.Request) {
	var req EditTodoRequest
	if err := readJSON(w, r, editRequestSchema, &req); err != nil {
		writeFormatError(w, r, err)
		return
	}

	patch := models.TodoPatch{Title: req.Title, Body: req.Body, Done: req.Done}
	if err := todoRepo.Edit(r.Context(), req.UserID, req.TodoID, patch); err != nil {
		if errors.Is(err, repo.ErrTodoNotFound) {
			err = apierr.ErrEdit
		}
		writeError(w, r, err)
		return
	}

	recordActivity(r, req.UserID, activity.OpEdit, req.TodoID)
	writeAccepted(w, r, EmptyResult{})
}

// DeleteTodoHandler godoc
// @Summary Delete a todo
// @Tags todos
// @Accept json
// @Produce json
// @Param todo body DeleteTodoRequest true "Owner and todo id"
// @Success 202 {object} EmptyResult
// @Failure 400 {object} apierr.ResponseError "WrongFormat, DeleteError or DbError"
// @Router /delete [post]
func DeleteTodoHandler(w http.ResponseWriter, r *http.Request) {
	var req DeleteTodoRequest
	if err := readJSON(w, r, deleteRequestSchema, &req); err != nil {
		writeFormatError(w, r, err)
		return
	}

	if err := todoRepo.Delete(r.Context(), req.UserID, req.TodoID); err != nil {
		if errors.Is(err, repo.ErrTodoNotFound) {
			err = apierr.ErrDelete
		}
		writeError(w, r, err)
		return
	}

	recordActivity(r, req.UserID, activity.OpDelete, req.TodoID)
	writeAccepted(w, r, EmptyResult{})
}

// recordActivity is best effort: a feed failure never changes the response.
func recordActivity(r *http.Request, userID int, op string, todoID int) {
	event := activity.Event{Op: op, TodoID: todoID, At: time.Now().UTC()}
	if err := recorder.Record(r.Context(), userID, event); err != nil {
		log.FromContext(r.Context()).Warn("failed to record activity", "op", op, "user_id", userID, "todo_id", todoID, "err", err)
	}
}
