package handlers_fiber

import (
	"errors"
	"net/http"

	"task-tracker/internal/api"
	"task-tracker/internal/entities"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	code := api.INTERNAL
	msg := "internal error"

	switch {
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		code = api.INVALIDARGUMENT
		msg = err.Error()
	case errors.Is(err, entities.ErrInvalidCredentials):
		status = http.StatusUnauthorized
		code = api.INVALIDCREDENTIALS
		msg = "invalid username or password"
	case errors.Is(err, entities.ErrUnauthenticated):
		status = http.StatusUnauthorized
		code = api.UNAUTHENTICATED
		msg = "authentication required"
	case errors.Is(err, entities.ErrPermissionDenied):
		status = http.StatusForbidden
		code = api.PERMISSIONDENIED
		msg = "operation not permitted"
	case errors.Is(err, entities.ErrUserNotFound),
		errors.Is(err, entities.ErrTeamNotFound),
		errors.Is(err, entities.ErrTaskNotFound):
		status = http.StatusNotFound
		code = api.NOTFOUND
		msg = "resource not found"
	case errors.Is(err, entities.ErrUsernameTaken):
		status = http.StatusConflict
		code = api.USERNAMETAKEN
		msg = "username already exists"
	case errors.Is(err, entities.ErrTeamExists):
		status = http.StatusConflict
		code = api.TEAMEXISTS
		msg = "team name already exists"
	}

	return c.Status(status).JSON(errorResponse(code, msg))
}

func errorResponse(code api.ErrorResponseErrorCode, msg string) api.ErrorResponse {
	var resp api.ErrorResponse
	resp.Error.Code = code
	resp.Error.Message = msg
	return resp
}

func parseIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, entities.ErrInvalidArgument
	}
	return id, nil
}

func parseUUIDPtr(src *string) (*uuid.UUID, error) {
	if src == nil || *src == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*src)
	if err != nil {
		return nil, entities.ErrInvalidArgument
	}
	return &id, nil
}
