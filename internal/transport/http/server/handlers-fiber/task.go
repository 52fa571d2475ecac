package handlers_fiber

import (
	"net/http"

	"task-tracker/internal/api"
	"task-tracker/internal/entities"
	"task-tracker/internal/mapper"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// PostTaskCreate persists a new planned task with the requester auto-assigned.
func (h *Handler) PostTaskCreate(c *fiber.Ctx) error {
	var body api.CreateTaskRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDARGUMENT, "invalid body"))
	}

	teamID, err := parseUUIDPtr(body.TeamID)
	if err != nil {
		return writeError(c, err)
	}

	task, err := h.uc.CreateTask(c.Context(), entities.Task{
		Title:       body.Title,
		Description: body.Description,
		CreatorID:   requesterID(c),
		TeamID:      teamID,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(struct {
		Task api.Task `json:"task"`
	}{Task: mapper.ToAPITask(*task)})
}

// GetTasks lists the requester's open tasks.
func (h *Handler) GetTasks(c *fiber.Ctx) error {
	tasks, err := h.uc.OpenTasks(c.Context(), requesterID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(struct {
		Tasks []api.TaskShort `json:"tasks"`
	}{Tasks: mapper.ToAPITaskShortList(tasks)})
}

// GetCompletedTasks lists the requester's completed tasks.
func (h *Handler) GetCompletedTasks(c *fiber.Ctx) error {
	tasks, err := h.uc.CompletedTasks(c.Context(), requesterID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(struct {
		Tasks []api.TaskShort `json:"tasks"`
	}{Tasks: mapper.ToAPITaskShortList(tasks)})
}

// GetTaskSearch filters visible tasks by query string.
func (h *Handler) GetTaskSearch(c *fiber.Ctx) error {
	tasks, err := h.uc.SearchTasks(c.Context(), requesterID(c), c.Query("q"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(struct {
		Tasks []api.TaskShort `json:"tasks"`
	}{Tasks: mapper.ToAPITaskShortList(tasks)})
}

// GetTask returns task detail with comments.
func (h *Handler) GetTask(c *fiber.Ctx) error {
	taskID, err := parseIDParam(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	task, err := h.uc.Task(c.Context(), taskID, requesterID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPITask(*task))
}

// PutTask edits a planned task. Creator only.
func (h *Handler) PutTask(c *fiber.Ctx) error {
	taskID, err := parseIDParam(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	var body api.UpdateTaskRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDARGUMENT, "invalid body"))
	}

	teamID, err := parseUUIDPtr(body.TeamID)
	if err != nil {
		return writeError(c, err)
	}
	assignees := make([]uuid.UUID, 0, len(body.Assignees))
	for _, raw := range body.Assignees {
		id, err := uuid.Parse(raw)
		if err != nil {
			return writeError(c, entities.ErrInvalidArgument)
		}
		assignees = append(assignees, id)
	}

	task, err := h.uc.EditTask(c.Context(), entities.TaskUpdate{
		ID:          taskID,
		Title:       body.Title,
		Description: body.Description,
		TeamID:      teamID,
		Assignees:   assignees,
	}, requesterID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPITask(*task))
}

// DeleteTask removes a planned task. Creator only.
func (h *Handler) DeleteTask(c *fiber.Ctx) error {
	taskID, err := parseIDParam(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	if err := h.uc.DeleteTask(c.Context(), taskID, requesterID(c)); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// PostTaskAccept marks a planned task in progress. Assignees only.
func (h *Handler) PostTaskAccept(c *fiber.Ctx) error {
	taskID, err := parseIDParam(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	task, err := h.uc.AcceptTask(c.Context(), taskID, requesterID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPITask(*task))
}

// PostTaskComplete marks an in-progress task completed. Creator or assignee.
func (h *Handler) PostTaskComplete(c *fiber.Ctx) error {
	taskID, err := parseIDParam(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	task, err := h.uc.CompleteTask(c.Context(), taskID, requesterID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPITask(*task))
}

// PostTaskComment appends a comment to a visible task.
func (h *Handler) PostTaskComment(c *fiber.Ctx) error {
	taskID, err := parseIDParam(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	var body api.CommentRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDARGUMENT, "invalid body"))
	}

	comment, err := h.uc.CommentTask(c.Context(), taskID, requesterID(c), body.Body)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(struct {
		Comment api.Comment `json:"comment"`
	}{Comment: mapper.ToAPIComment(*comment)})
}
