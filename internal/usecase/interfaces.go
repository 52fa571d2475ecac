package usecase

import (
	"context"

	"task-tracker/internal/entities"

	"github.com/google/uuid"
)

// AuthUsecaseInterface abstracts account and session operations for the delivery layer.
type AuthUsecaseInterface interface {
	SignUp(ctx context.Context, username, password string) (*entities.User, error)
	LogIn(ctx context.Context, username, password string) (string, *entities.User, error)
	LogOut(ctx context.Context, sessionID uuid.UUID) error
	CheckSession(ctx context.Context, sessionID uuid.UUID) error
}

// TeamUsecaseInterface abstracts team-related operations.
type TeamUsecaseInterface interface {
	CreateTeam(ctx context.Context, name string, leaderID uuid.UUID) (*entities.Team, error)
	Team(ctx context.Context, teamID, requesterID uuid.UUID) (*entities.Team, error)
	MyTeams(ctx context.Context, userID uuid.UUID) ([]entities.Team, error)
	AddTeamMember(ctx context.Context, teamID, requesterID uuid.UUID, username string) (*entities.Team, error)
	RemoveTeamMember(ctx context.Context, teamID, requesterID, memberID uuid.UUID) (*entities.Team, error)
	DeleteTeam(ctx context.Context, teamID, requesterID uuid.UUID) error
}

// TaskUsecaseInterface abstracts task lifecycle operations.
type TaskUsecaseInterface interface {
	CreateTask(ctx context.Context, task entities.Task) (*entities.Task, error)
	Task(ctx context.Context, taskID, requesterID uuid.UUID) (*entities.Task, error)
	EditTask(ctx context.Context, upd entities.TaskUpdate, requesterID uuid.UUID) (*entities.Task, error)
	DeleteTask(ctx context.Context, taskID, requesterID uuid.UUID) error
	AcceptTask(ctx context.Context, taskID, requesterID uuid.UUID) (*entities.Task, error)
	CompleteTask(ctx context.Context, taskID, requesterID uuid.UUID) (*entities.Task, error)
	OpenTasks(ctx context.Context, userID uuid.UUID) ([]entities.TaskShort, error)
	CompletedTasks(ctx context.Context, userID uuid.UUID) ([]entities.TaskShort, error)
	SearchTasks(ctx context.Context, userID uuid.UUID, query string) ([]entities.TaskShort, error)
	CommentTask(ctx context.Context, taskID, authorID uuid.UUID, body string) (*entities.Comment, error)
}

// StatsUsecaseInterface abstracts statistics operations.
type StatsUsecaseInterface interface {
	Stats(ctx context.Context) (entities.Stats, error)
	UserStats(ctx context.Context, userID uuid.UUID, limit int) (entities.UserStats, error)
}
