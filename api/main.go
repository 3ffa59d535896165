package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/redis/go-redis/v9"

	"github.com/rogerio-castellano/todo-tracker/internal/activity"
	"github.com/rogerio-castellano/todo-tracker/internal/auth"
	"github.com/rogerio-castellano/todo-tracker/internal/config"
	"github.com/rogerio-castellano/todo-tracker/internal/db"
	api "github.com/rogerio-castellano/todo-tracker/internal/http"
	"github.com/rogerio-castellano/todo-tracker/internal/http/handlers"
	"github.com/rogerio-castellano/todo-tracker/internal/logger"
	"github.com/rogerio-castellano/todo-tracker/internal/repo"
)

// @title Todo Tracker API
// @version 1.0
// @description JSON API for registering users and managing their todo lists.
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration", "err", err)
	}
	l := logger.New(cfg.Log.Level, cfg.Log.Format)
	l.Info("Loaded configuration", "config", cfg.String())

	database, err := db.Connect(cfg.Database.Driver, cfg.Database.URL)
	if err != nil {
		l.Fatal("Could not connect to database", "err", err)
	}
	defer database.Close()

	if cfg.Database.EnsureSchema {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		err := db.EnsureSchema(ctx, database, cfg.Database.Driver)
		cancel()
		if err != nil {
			l.Fatal("Could not prepare schema", "err", err)
		}
	}

	users := repo.NewSQLUserRepository(database, cfg.Database.Driver)
	handlers.SetCredentialStore(auth.NewCredentialStore(users, cfg.Auth.BcryptCost))
	handlers.SetTodoRepo(repo.NewSQLTodoRepository(database, cfg.Database.Driver))
	handlers.SetPageSizes(cfg.Todos.DefaultPageSize, cfg.Todos.MaxPageSize)
	handlers.SetStore(database)

	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
		defer rdb.Close()

		if err := rdb.Ping(context.Background()).Err(); err != nil {
			l.Warn("Redis unreachable, activity feed will log failures", "addr", cfg.Redis.Addr, "err", err)
		}
		handlers.SetActivityRecorder(activity.NewRedisFeed(rdb, activity.DefaultLimit))
	}

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           api.NewRouter(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		l.Info("Server running", "addr", cfg.HTTP.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			l.Fatal("Server failed", "err", err)
		}
	}()

	<-ctx.Done()
	l.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		l.Error("Graceful shutdown failed", "err", err)
	}
}
