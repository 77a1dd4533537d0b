// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/taskmaster/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/taskmaster/internal/adapters/http/middleware"
)

// Handlers bundles every HTTP handler the router mounts.
type Handlers struct {
	TaskLists     *handlers.TaskListHandler
	Tasks         *handlers.TaskHandler
	Relations     *handlers.RelationHandler
	Comments      *handlers.CommentHandler
	Notifications *handlers.NotificationHandler
	Users         *handlers.UserHandler
	Search        *handlers.SearchHandler
	Health        *handlers.HealthHandler
}

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given. Every route under
// /api/v1 except account registration additionally requires a caller
// identity; the health endpoints stay outside the prefix and unauthenticated
// so probes keep working when the upstream gateway is down.
func NewRouter(h Handlers, middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", h.Health.Liveness)
	r.Get("/health/ready", h.Health.Readiness)

	// API v1 routes.
	r.Route("/api/v1", func(r chi.Router) {
		// Registration is the one endpoint callable without an identity.
		r.Post("/users", h.Users.CreateUser)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Identity())

			// Task list CRUD.
			r.Get("/task-lists", h.TaskLists.ListTaskLists)
			r.Post("/task-lists", h.TaskLists.CreateTaskList)
			r.Get("/task-lists/{id}", h.TaskLists.GetTaskList)
			r.Patch("/task-lists/{id}", h.TaskLists.UpdateTaskList)
			r.Delete("/task-lists/{id}", h.TaskLists.DeleteTaskList)

			// Task CRUD.
			r.Get("/tasks", h.Tasks.ListTasks)
			r.Post("/tasks", h.Tasks.CreateTask)
			r.Get("/tasks/{id}", h.Tasks.GetTask)
			r.Patch("/tasks/{id}", h.Tasks.UpdateTask)
			r.Delete("/tasks/{id}", h.Tasks.DeleteTask)

			// Share grants.
			r.Get("/relations", h.Relations.ListRelations)
			r.Post("/relations", h.Relations.CreateRelation)
			r.Get("/relations/{id}", h.Relations.GetRelation)
			r.Patch("/relations/{id}", h.Relations.UpdateRelation)
			r.Delete("/relations/{id}", h.Relations.DeleteRelation)

			// Task comments.
			r.Get("/task-comments", h.Comments.ListTaskComments)
			r.Post("/task-comments", h.Comments.CreateTaskComment)
			r.Get("/task-comments/{id}", h.Comments.GetTaskComment)
			r.Patch("/task-comments/{id}", h.Comments.UpdateTaskComment)
			r.Delete("/task-comments/{id}", h.Comments.DeleteTaskComment)

			// List comments.
			r.Get("/list-comments", h.Comments.ListListComments)
			r.Post("/list-comments", h.Comments.CreateListComment)
			r.Get("/list-comments/{id}", h.Comments.GetListComment)
			r.Patch("/list-comments/{id}", h.Comments.UpdateListComment)
			r.Delete("/list-comments/{id}", h.Comments.DeleteListComment)

			// Notifications (read-only; reading marks them seen).
			r.Get("/notifications", h.Notifications.ListNotifications)
			r.Get("/notifications/{id}", h.Notifications.GetNotification)

			// Cross-model search.
			r.Get("/search", h.Search.Search)
		})
	})

	return r
}
