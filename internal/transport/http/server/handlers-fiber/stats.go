package handlers_fiber

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// GetStats returns aggregated task statistics.
func (h *Handler) GetStats(c *fiber.Ctx) error {
	stats, err := h.uc.Stats(c.Context())
	if err != nil {
		h.log.Errorw("failed to get stats", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(stats)
}

// GetUserStats returns counters and recent tasks for one user.
func (h *Handler) GetUserStats(c *fiber.Ctx) error {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	stats, err := h.uc.UserStats(c.Context(), userID, c.QueryInt("limit"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(stats)
}
