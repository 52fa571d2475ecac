package handlers_fiber

import (
	"net/http"

	"task-tracker/internal/api"
	"task-tracker/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// PostTeamCreate creates a team led by the requester.
func (h *Handler) PostTeamCreate(c *fiber.Ctx) error {
	var body api.CreateTeamRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDARGUMENT, "invalid body"))
	}

	team, err := h.uc.CreateTeam(c.Context(), body.Name, requesterID(c))
	if err != nil {
		h.log.Infow("team create rejected", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(struct {
		Team api.Team `json:"team"`
	}{Team: mapper.ToAPITeam(*team)})
}

// GetTeams returns teams the requester belongs to.
func (h *Handler) GetTeams(c *fiber.Ctx) error {
	teams, err := h.uc.MyTeams(c.Context(), requesterID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(struct {
		Teams []api.Team `json:"teams"`
	}{Teams: mapper.ToAPITeamList(teams)})
}

// GetTeam returns team detail with members. Members and the leader only.
func (h *Handler) GetTeam(c *fiber.Ctx) error {
	teamID, err := parseIDParam(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	team, err := h.uc.Team(c.Context(), teamID, requesterID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPITeam(*team))
}

// PostTeamMemberAdd enrolls a user by username. Leader only.
func (h *Handler) PostTeamMemberAdd(c *fiber.Ctx) error {
	teamID, err := parseIDParam(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	var body api.AddMemberRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDARGUMENT, "invalid body"))
	}

	team, err := h.uc.AddTeamMember(c.Context(), teamID, requesterID(c), body.Username)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPITeam(*team))
}

// DeleteTeamMember removes a member. Leader only; the leader is irremovable.
func (h *Handler) DeleteTeamMember(c *fiber.Ctx) error {
	teamID, err := parseIDParam(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	memberID, err := parseIDParam(c, "userID")
	if err != nil {
		return writeError(c, err)
	}

	team, err := h.uc.RemoveTeamMember(c.Context(), teamID, requesterID(c), memberID)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPITeam(*team))
}

// DeleteTeam removes a team. Leader only.
func (h *Handler) DeleteTeam(c *fiber.Ctx) error {
	teamID, err := parseIDParam(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	if err := h.uc.DeleteTeam(c.Context(), teamID, requesterID(c)); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}
