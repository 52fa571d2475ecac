// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"task-tracker/internal/api"
	"task-tracker/internal/entities"

	"github.com/google/uuid"
)

// ToAPIUser maps entities.User to transport model.
func ToAPIUser(u entities.User) api.User {
	return api.User{
		ID:        u.ID.String(),
		Username:  u.Username,
		CreatedAt: u.CreatedAt,
	}
}

// ToAPITeam maps entities.Team to transport model.
func ToAPITeam(team entities.Team) api.Team {
	members := make([]api.User, 0, len(team.Members))
	for _, m := range team.Members {
		members = append(members, ToAPIUser(m))
	}

	return api.Team{
		ID:       team.ID.String(),
		Name:     team.Name,
		LeaderID: team.LeaderID.String(),
		Members:  members,
	}
}

// ToAPITeamList maps a slice of teams to transport models.
func ToAPITeamList(teams []entities.Team) []api.Team {
	res := make([]api.Team, 0, len(teams))
	for _, t := range teams {
		res = append(res, ToAPITeam(t))
	}
	return res
}

// ToAPIComment maps entities.Comment to transport model.
func ToAPIComment(c entities.Comment) api.Comment {
	return api.Comment{
		ID:        c.ID.String(),
		AuthorID:  c.AuthorID.String(),
		Body:      c.Body,
		CreatedAt: c.CreatedAt,
	}
}

// ToAPITask maps entities.Task to transport model.
func ToAPITask(task entities.Task) api.Task {
	assignees := make([]string, 0, len(task.Assignees))
	for _, id := range task.Assignees {
		assignees = append(assignees, id.String())
	}

	comments := make([]api.Comment, 0, len(task.Comments))
	for _, c := range task.Comments {
		comments = append(comments, ToAPIComment(c))
	}

	return api.Task{
		ID:            task.ID.String(),
		Title:         task.Title,
		Description:   task.Description,
		CreatorID:     task.CreatorID.String(),
		TeamID:        uuidPtrToString(task.TeamID),
		Status:        string(task.Status),
		Assignees:     assignees,
		AcceptedBy:    uuidPtrToString(task.AcceptedBy),
		CreatedAt:     task.CreatedAt,
		AcceptedDate:  task.AcceptedDate,
		CompletedDate: task.CompletedDate,
		Comments:      comments,
	}
}

// ToAPITaskShort maps entities.TaskShort to transport model.
func ToAPITaskShort(t entities.TaskShort) api.TaskShort {
	return api.TaskShort{
		ID:        t.ID.String(),
		Title:     t.Title,
		CreatorID: t.CreatorID.String(),
		Status:    string(t.Status),
		CreatedAt: t.CreatedAt,
	}
}

// ToAPITaskShortList maps a slice of entities.TaskShort to transport slice.
func ToAPITaskShortList(list []entities.TaskShort) []api.TaskShort {
	res := make([]api.TaskShort, 0, len(list))
	for _, t := range list {
		res = append(res, ToAPITaskShort(t))
	}
	return res
}

func uuidPtrToString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
