// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"task-tracker/internal/transport/http/middleware"
	"task-tracker/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Handler serves the HTTP API using service layer interfaces.
type Handler struct {
	log *zap.SugaredLogger
	uc  usecase.InterfaceUsecase
}

// NewHandler constructs an HTTP handler set with service dependencies.
func NewHandler(log *zap.SugaredLogger, usecase usecase.InterfaceUsecase) *Handler {
	return &Handler{
		log: log,
		uc:  usecase,
	}
}

// RegisterRoutes mounts all API routes. Everything except signup and login
// sits behind the auth guard.
func RegisterRoutes(app *fiber.App, h *Handler, authGuard fiber.Handler) {
	authGroup := app.Group("/auth")
	authGroup.Post("/signup", h.PostSignup)
	authGroup.Post("/login", h.PostLogin)
	authGroup.Post("/logout", authGuard, h.PostLogout)

	teams := app.Group("/teams", authGuard)
	teams.Post("/", h.PostTeamCreate)
	teams.Get("/", h.GetTeams)
	teams.Get("/:id", h.GetTeam)
	teams.Post("/:id/members", h.PostTeamMemberAdd)
	teams.Delete("/:id/members/:userID", h.DeleteTeamMember)
	teams.Delete("/:id", h.DeleteTeam)

	tasks := app.Group("/tasks", authGuard)
	tasks.Post("/", h.PostTaskCreate)
	tasks.Get("/", h.GetTasks)
	tasks.Get("/completed", h.GetCompletedTasks)
	tasks.Get("/search", h.GetTaskSearch)
	tasks.Get("/:id", h.GetTask)
	tasks.Put("/:id", h.PutTask)
	tasks.Delete("/:id", h.DeleteTask)
	tasks.Post("/:id/accept", h.PostTaskAccept)
	tasks.Post("/:id/complete", h.PostTaskComplete)
	tasks.Post("/:id/comments", h.PostTaskComment)

	stats := app.Group("/stats", authGuard)
	stats.Get("/", h.GetStats)
	stats.Get("/users/:id", h.GetUserStats)
}

func requesterID(c *fiber.Ctx) uuid.UUID {
	return middleware.UserID(c)
}
