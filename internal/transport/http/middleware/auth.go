package middleware

import (
	"errors"
	"net/http"
	"strings"

	"task-tracker/internal/api"
	"task-tracker/internal/auth"
	"task-tracker/internal/entities"
	"task-tracker/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Locals keys set by the auth guard.
const (
	UserIDKey    = "user_id"
	SessionIDKey = "session_id"
)

// Auth verifies the bearer token and the backing session row, then stashes
// the requester identity in locals.
func Auth(tokens *auth.TokenManager, sessions usecase.AuthUsecaseInterface) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		const prefix = "Bearer "
		if !strings.HasPrefix(header, prefix) {
			return unauthenticated(c, "missing bearer token")
		}

		userID, sessionID, err := tokens.Parse(strings.TrimPrefix(header, prefix))
		if err != nil {
			return unauthenticated(c, "invalid token")
		}

		if err := sessions.CheckSession(c.Context(), sessionID); err != nil {
			if errors.Is(err, entities.ErrUnauthenticated) {
				return unauthenticated(c, "session expired or revoked")
			}
			return internalError(c)
		}

		c.Locals(UserIDKey, userID)
		c.Locals(SessionIDKey, sessionID)
		return c.Next()
	}
}

// UserID extracts the authenticated user id from locals.
func UserID(c *fiber.Ctx) uuid.UUID {
	id, _ := c.Locals(UserIDKey).(uuid.UUID)
	return id
}

// SessionID extracts the authenticated session id from locals.
func SessionID(c *fiber.Ctx) uuid.UUID {
	id, _ := c.Locals(SessionIDKey).(uuid.UUID)
	return id
}

func unauthenticated(c *fiber.Ctx, msg string) error {
	var resp api.ErrorResponse
	resp.Error.Code = api.UNAUTHENTICATED
	resp.Error.Message = msg
	return c.Status(http.StatusUnauthorized).JSON(resp)
}

func internalError(c *fiber.Ctx) error {
	var resp api.ErrorResponse
	resp.Error.Code = api.INTERNAL
	resp.Error.Message = "internal error"
	return c.Status(http.StatusInternalServerError).JSON(resp)
}
