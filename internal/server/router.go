// Package server assembles the HTTP routes of the API.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/BuzzLyutic/todo-api/internal/handler"
	"github.com/BuzzLyutic/todo-api/internal/repo"
	"github.com/BuzzLyutic/todo-api/internal/service"
)

// NewRouter wires services and handlers on top of store.
func NewRouter(store *repo.Store, logger *zap.Logger, maxPageSize int) http.Handler {
	todoHandler := handler.NewToDoHandler(service.NewToDoService(store.ToDos), logger, maxPageSize)
	userHandler := handler.NewUserHandler(service.NewUserService(store.Users), logger, maxPageSize)
	healthHandler := handler.NewHealthHandler(store, logger)

	r := chi.NewRouter() // Создаем роутер
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(handler.RequestLogger(logger))
	r.Use(handler.Recoverer(logger))

	r.Get("/health", healthHandler.Check)

	r.Route("/api/todos", func(r chi.Router) {
		r.Get("/", todoHandler.List)
		r.Post("/", todoHandler.Create)
		r.Get("/{id}", todoHandler.Get)
		r.Put("/{id}", todoHandler.Update)
		r.Delete("/{id}", todoHandler.Delete)
	})

	r.Route("/api/users", func(r chi.Router) {
		r.Get("/", userHandler.List)
		r.Post("/", userHandler.Create)
		r.Get("/{id}", userHandler.Get)
		r.Put("/{id}", userHandler.Update)
		r.Delete("/{id}", userHandler.Delete)
	})

	return r
}
