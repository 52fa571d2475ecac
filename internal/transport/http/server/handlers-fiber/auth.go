package handlers_fiber

import (
	"net/http"

	"task-tracker/internal/api"
	"task-tracker/internal/mapper"
	"task-tracker/internal/transport/http/middleware"

	"github.com/gofiber/fiber/v2"
)

// PostSignup registers a new account.
func (h *Handler) PostSignup(c *fiber.Ctx) error {
	var body api.SignupRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDARGUMENT, "invalid body"))
	}

	user, err := h.uc.SignUp(c.Context(), body.Username, body.Password)
	if err != nil {
		h.log.Infow("signup rejected", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(struct {
		User api.User `json:"user"`
	}{User: mapper.ToAPIUser(*user)})
}

// PostLogin verifies credentials and issues a bearer token.
func (h *Handler) PostLogin(c *fiber.Ctx) error {
	var body api.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDARGUMENT, "invalid body"))
	}

	token, user, err := h.uc.LogIn(c.Context(), body.Username, body.Password)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(api.LoginResponse{
		Token: token,
		User:  mapper.ToAPIUser(*user),
	})
}

// PostLogout revokes the current session.
func (h *Handler) PostLogout(c *fiber.Ctx) error {
	if err := h.uc.LogOut(c.Context(), middleware.SessionID(c)); err != nil {
		h.log.Errorw("failed to log out", "error", err.Error())
		return writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}
