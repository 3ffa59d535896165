package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/rogerio-castellano/todo-tracker/docs"
	"github.com/rogerio-castellano/todo-tracker/internal/http/handlers"
)

func NewRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(RequestLogger)
	r.Use(Recoverer)

	r.Post("/register", handlers.RegisterHandler)
	r.Post("/login", handlers.LoginHandler)
	r.Post("/create", handlers.CreateTodoHandler)
	r.Post("/get", handlers.GetTodosHandler)
	r.Post("/edit", handlers.EditTodoHandler)
	r.Post("/delete", handlers.DeleteTodoHandler)

	r.Get("/healthz", handlers.HealthHandler)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.NotFound(handlers.WrongPathHandler)
	r.MethodNotAllowed(handlers.WrongPathHandler)
	return r
}
