// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"task-tracker/internal/entities"

	"github.com/google/uuid"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// UserInterface exposes account operations.
type UserInterface interface {
	CreateUser(ctx context.Context, user entities.User) (*entities.User, error)
	GetUserByUsername(ctx context.Context, username string) (*entities.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*entities.User, error)
}

// SessionInterface exposes login session storage.
type SessionInterface interface {
	CreateSession(ctx context.Context, session entities.Session) error
	SessionExists(ctx context.Context, id uuid.UUID) (bool, error)
	DeleteSession(ctx context.Context, id uuid.UUID) error
}

// TeamInterface exposes team-related operations. Mutations carry the
// requester id and enforce the leader-only rule inside the transaction.
type TeamInterface interface {
	CreateTeam(ctx context.Context, team entities.Team) (*entities.Team, error)
	GetTeam(ctx context.Context, id uuid.UUID) (*entities.Team, error)
	ListUserTeams(ctx context.Context, userID uuid.UUID) ([]entities.Team, error)
	AddTeamMember(ctx context.Context, teamID, requesterID uuid.UUID, username string) (*entities.Team, error)
	RemoveTeamMember(ctx context.Context, teamID, requesterID, memberID uuid.UUID) (*entities.Team, error)
	DeleteTeam(ctx context.Context, teamID, requesterID uuid.UUID) error
	IsTeamMember(ctx context.Context, teamID, userID uuid.UUID) (bool, error)
}

// TaskInterface exposes task lifecycle operations. Transition methods
// enforce the creator/assignee/status predicates under a row lock.
type TaskInterface interface {
	CreateTask(ctx context.Context, task entities.Task) (*entities.Task, error)
	GetTask(ctx context.Context, id uuid.UUID) (*entities.Task, error)
	UpdateTask(ctx context.Context, upd entities.TaskUpdate, requesterID uuid.UUID) (*entities.Task, error)
	DeleteTask(ctx context.Context, taskID, requesterID uuid.UUID) error
	AcceptTask(ctx context.Context, taskID, requesterID uuid.UUID) (*entities.Task, error)
	CompleteTask(ctx context.Context, taskID, requesterID uuid.UUID) (*entities.Task, error)
	ListOpenTasks(ctx context.Context, userID uuid.UUID) ([]entities.TaskShort, error)
	ListCompletedTasks(ctx context.Context, userID uuid.UUID) ([]entities.TaskShort, error)
	SearchTasks(ctx context.Context, userID uuid.UUID, query string) ([]entities.TaskShort, error)
}

// CommentInterface exposes task comment operations.
type CommentInterface interface {
	CreateComment(ctx context.Context, comment entities.Comment) (*entities.Comment, error)
	ListComments(ctx context.Context, taskID uuid.UUID) ([]entities.Comment, error)
}

// StatsInterface exposes aggregated statistics operations.
type StatsInterface interface {
	Stats(ctx context.Context) (entities.Stats, error)
	UserStats(ctx context.Context, userID uuid.UUID, limit int) (entities.UserStats, error)
}
