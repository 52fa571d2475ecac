package domain

import (
	"context"
	"errors"
	"testing"
	"time"

	"task-tracker/internal/auth"
	"task-tracker/internal/entities"
	"task-tracker/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type repoMock struct{ mock.Mock }

var _ repository.Repository = (*repoMock)(nil)

func (m *repoMock) OnStart(_ context.Context) error { return nil }
func (m *repoMock) OnStop(_ context.Context) error  { return nil }

func (m *repoMock) CreateUser(ctx context.Context, user entities.User) (*entities.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *repoMock) GetUserByUsername(ctx context.Context, username string) (*entities.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *repoMock) GetUser(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *repoMock) CreateSession(ctx context.Context, session entities.Session) error {
	return m.Called(ctx, session).Error(0)
}

func (m *repoMock) SessionExists(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *repoMock) DeleteSession(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *repoMock) CreateTeam(ctx context.Context, team entities.Team) (*entities.Team, error) {
	args := m.Called(ctx, team)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Team), args.Error(1)
}

func (m *repoMock) GetTeam(ctx context.Context, id uuid.UUID) (*entities.Team, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Team), args.Error(1)
}

func (m *repoMock) ListUserTeams(ctx context.Context, userID uuid.UUID) ([]entities.Team, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Team), args.Error(1)
}

func (m *repoMock) AddTeamMember(ctx context.Context, teamID, requesterID uuid.UUID, username string) (*entities.Team, error) {
	args := m.Called(ctx, teamID, requesterID, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Team), args.Error(1)
}

func (m *repoMock) RemoveTeamMember(ctx context.Context, teamID, requesterID, memberID uuid.UUID) (*entities.Team, error) {
	args := m.Called(ctx, teamID, requesterID, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Team), args.Error(1)
}

func (m *repoMock) DeleteTeam(ctx context.Context, teamID, requesterID uuid.UUID) error {
	return m.Called(ctx, teamID, requesterID).Error(0)
}

func (m *repoMock) IsTeamMember(ctx context.Context, teamID, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, teamID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *repoMock) CreateTask(ctx context.Context, task entities.Task) (*entities.Task, error) {
	args := m.Called(ctx, task)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Task), args.Error(1)
}

func (m *repoMock) GetTask(ctx context.Context, id uuid.UUID) (*entities.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Task), args.Error(1)
}

func (m *repoMock) UpdateTask(ctx context.Context, upd entities.TaskUpdate, requesterID uuid.UUID) (*entities.Task, error) {
	args := m.Called(ctx, upd, requesterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Task), args.Error(1)
}

func (m *repoMock) DeleteTask(ctx context.Context, taskID, requesterID uuid.UUID) error {
	return m.Called(ctx, taskID, requesterID).Error(0)
}

func (m *repoMock) AcceptTask(ctx context.Context, taskID, requesterID uuid.UUID) (*entities.Task, error) {
	args := m.Called(ctx, taskID, requesterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Task), args.Error(1)
}

func (m *repoMock) CompleteTask(ctx context.Context, taskID, requesterID uuid.UUID) (*entities.Task, error) {
	args := m.Called(ctx, taskID, requesterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Task), args.Error(1)
}

func (m *repoMock) ListOpenTasks(ctx context.Context, userID uuid.UUID) ([]entities.TaskShort, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.TaskShort), args.Error(1)
}

func (m *repoMock) ListCompletedTasks(ctx context.Context, userID uuid.UUID) ([]entities.TaskShort, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.TaskShort), args.Error(1)
}

func (m *repoMock) SearchTasks(ctx context.Context, userID uuid.UUID, query string) ([]entities.TaskShort, error) {
	args := m.Called(ctx, userID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.TaskShort), args.Error(1)
}

func (m *repoMock) CreateComment(ctx context.Context, comment entities.Comment) (*entities.Comment, error) {
	args := m.Called(ctx, comment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Comment), args.Error(1)
}

func (m *repoMock) ListComments(ctx context.Context, taskID uuid.UUID) ([]entities.Comment, error) {
	args := m.Called(ctx, taskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Comment), args.Error(1)
}

func (m *repoMock) Stats(ctx context.Context) (entities.Stats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return entities.Stats{}, args.Error(1)
	}
	return args.Get(0).(entities.Stats), args.Error(1)
}

func (m *repoMock) UserStats(ctx context.Context, userID uuid.UUID, limit int) (entities.UserStats, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return entities.UserStats{}, args.Error(1)
	}
	return args.Get(0).(entities.UserStats), args.Error(1)
}

func newTestUsecase(repo repository.Repository) *Usecase {
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	return New(zap.NewNop().Sugar(), context.Background(), repo, tokens, time.Second, 8)
}

func TestUsecase_SignUpValidation(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	_, err := uc.SignUp(context.Background(), "", "longenough")
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	_, err = uc.SignUp(context.Background(), "alice", "short")
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	repo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
}

func TestUsecase_SignUpHashesPassword(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	repo.On("CreateUser", mock.Anything, mock.MatchedBy(func(u entities.User) bool {
		return u.Username == "alice" &&
			u.PasswordHash != "correct horse battery" &&
			auth.CheckPassword(u.PasswordHash, "correct horse battery")
	})).Return(&entities.User{ID: uuid.New(), Username: "alice"}, nil)

	user, err := uc.SignUp(context.Background(), "alice", "correct horse battery")
	require.NoError(t, err)
	require.Equal(t, "alice", user.Username)
	repo.AssertExpectations(t)
}

func TestUsecase_LogInUnknownUser(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	repo.On("GetUserByUsername", mock.Anything, "ghost").Return(nil, entities.ErrUserNotFound)

	_, _, err := uc.LogIn(context.Background(), "ghost", "whatever1")
	require.ErrorIs(t, err, entities.ErrInvalidCredentials)
	repo.AssertNotCalled(t, "CreateSession", mock.Anything, mock.Anything)
}

func TestUsecase_LogInStorageErrorIsNotCredentialFailure(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	storageErr := errors.New("connection refused")
	repo.On("GetUserByUsername", mock.Anything, "alice").Return(nil, storageErr)

	_, _, err := uc.LogIn(context.Background(), "alice", "whatever1")
	require.ErrorIs(t, err, storageErr)
	require.NotErrorIs(t, err, entities.ErrInvalidCredentials)
	repo.AssertNotCalled(t, "CreateSession", mock.Anything, mock.Anything)
}

func TestUsecase_LogInWrongPassword(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	hash, err := auth.HashPassword("the-real-one")
	require.NoError(t, err)
	repo.On("GetUserByUsername", mock.Anything, "alice").
		Return(&entities.User{ID: uuid.New(), Username: "alice", PasswordHash: hash}, nil)

	_, _, err = uc.LogIn(context.Background(), "alice", "not-the-one")
	require.ErrorIs(t, err, entities.ErrInvalidCredentials)
	repo.AssertNotCalled(t, "CreateSession", mock.Anything, mock.Anything)
}

func TestUsecase_LogInIssuesToken(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	userID := uuid.New()
	hash, err := auth.HashPassword("the-real-one")
	require.NoError(t, err)
	repo.On("GetUserByUsername", mock.Anything, "alice").
		Return(&entities.User{ID: userID, Username: "alice", PasswordHash: hash}, nil)
	repo.On("CreateSession", mock.Anything, mock.MatchedBy(func(s entities.Session) bool {
		return s.UserID == userID && s.ID != uuid.Nil
	})).Return(nil)

	token, user, err := uc.LogIn(context.Background(), "alice", "the-real-one")
	require.NoError(t, err)
	require.Equal(t, userID, user.ID)

	gotUser, _, err := uc.tokens.Parse(token)
	require.NoError(t, err)
	require.Equal(t, userID, gotUser)
	repo.AssertExpectations(t)
}

func TestUsecase_CheckSessionRevoked(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	sessionID := uuid.New()
	repo.On("SessionExists", mock.Anything, sessionID).Return(false, nil)

	err := uc.CheckSession(context.Background(), sessionID)
	require.ErrorIs(t, err, entities.ErrUnauthenticated)
}

func TestUsecase_CreateTeamValidation(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	_, err := uc.CreateTeam(context.Background(), "   ", uuid.New())
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	repo.AssertNotCalled(t, "CreateTeam", mock.Anything, mock.Anything)
}

func TestUsecase_TeamDetailNonMemberDenied(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	leaderID := uuid.New()
	teamID := uuid.New()
	repo.On("GetTeam", mock.Anything, teamID).Return(&entities.Team{
		ID:       teamID,
		Name:     "backend",
		LeaderID: leaderID,
		Members:  []entities.User{{ID: leaderID, Username: "alice"}},
	}, nil)

	_, err := uc.Team(context.Background(), teamID, uuid.New())
	require.ErrorIs(t, err, entities.ErrPermissionDenied)

	team, err := uc.Team(context.Background(), teamID, leaderID)
	require.NoError(t, err)
	require.Equal(t, "backend", team.Name)
}

func TestUsecase_CreateTaskValidation(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	_, err := uc.CreateTask(context.Background(), entities.Task{Title: "  ", CreatorID: uuid.New()})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	repo.AssertNotCalled(t, "CreateTask", mock.Anything, mock.Anything)
}

func TestUsecase_CreateTaskDefaults(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	creatorID := uuid.New()
	repo.On("CreateTask", mock.Anything, mock.MatchedBy(func(task entities.Task) bool {
		return task.Status == entities.StatusPlanned &&
			len(task.Assignees) == 1 &&
			task.Assignees[0] == creatorID &&
			task.Title == "write the report"
	})).Return(&entities.Task{ID: uuid.New(), Title: "write the report", CreatorID: creatorID, Status: entities.StatusPlanned}, nil)

	task, err := uc.CreateTask(context.Background(), entities.Task{
		Title:     "  write the report  ",
		CreatorID: creatorID,
	})
	require.NoError(t, err)
	require.Equal(t, entities.StatusPlanned, task.Status)
	repo.AssertExpectations(t)
}

func TestUsecase_TaskDetailVisibility(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	creatorID := uuid.New()
	assigneeID := uuid.New()
	memberID := uuid.New()
	outsiderID := uuid.New()
	teamID := uuid.New()
	taskID := uuid.New()

	repo.On("GetTask", mock.Anything, taskID).Return(&entities.Task{
		ID:        taskID,
		Title:     "demo",
		CreatorID: creatorID,
		TeamID:    &teamID,
		Status:    entities.StatusPlanned,
		Assignees: []uuid.UUID{assigneeID},
	}, nil)
	repo.On("IsTeamMember", mock.Anything, teamID, memberID).Return(true, nil)
	repo.On("IsTeamMember", mock.Anything, teamID, outsiderID).Return(false, nil)
	repo.On("ListComments", mock.Anything, taskID).Return([]entities.Comment{}, nil)

	for _, allowed := range []uuid.UUID{creatorID, assigneeID, memberID} {
		task, err := uc.Task(context.Background(), taskID, allowed)
		require.NoError(t, err)
		require.Equal(t, taskID, task.ID)
	}

	_, err := uc.Task(context.Background(), taskID, outsiderID)
	require.ErrorIs(t, err, entities.ErrPermissionDenied)
}

func TestUsecase_CommentBlankBodyRejected(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	_, err := uc.CommentTask(context.Background(), uuid.New(), uuid.New(), "   \t\n")
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	repo.AssertNotCalled(t, "GetTask", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "CreateComment", mock.Anything, mock.Anything)
}

func TestUsecase_CommentOutsiderDenied(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	taskID := uuid.New()
	repo.On("GetTask", mock.Anything, taskID).Return(&entities.Task{
		ID:        taskID,
		CreatorID: uuid.New(),
		Status:    entities.StatusPlanned,
		Assignees: []uuid.UUID{uuid.New()},
	}, nil)

	_, err := uc.CommentTask(context.Background(), taskID, uuid.New(), "hello")
	require.ErrorIs(t, err, entities.ErrPermissionDenied)
	repo.AssertNotCalled(t, "CreateComment", mock.Anything, mock.Anything)
}

func TestUsecase_CommentAssigneeAllowed(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	taskID := uuid.New()
	assigneeID := uuid.New()
	repo.On("GetTask", mock.Anything, taskID).Return(&entities.Task{
		ID:        taskID,
		CreatorID: uuid.New(),
		Status:    entities.StatusInProgress,
		Assignees: []uuid.UUID{assigneeID},
	}, nil)
	repo.On("CreateComment", mock.Anything, mock.MatchedBy(func(c entities.Comment) bool {
		return c.TaskID == taskID && c.AuthorID == assigneeID && c.Body == "on it"
	})).Return(&entities.Comment{ID: uuid.New(), TaskID: taskID, AuthorID: assigneeID, Body: "on it"}, nil)

	comment, err := uc.CommentTask(context.Background(), taskID, assigneeID, "on it")
	require.NoError(t, err)
	require.Equal(t, "on it", comment.Body)
	repo.AssertExpectations(t)
}

func TestUsecase_EditTaskValidation(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	_, err := uc.EditTask(context.Background(), entities.TaskUpdate{ID: uuid.New(), Title: ""}, uuid.New())
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	repo.AssertNotCalled(t, "UpdateTask", mock.Anything, mock.Anything, mock.Anything)
}

func TestUsecase_SearchValidation(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	_, err := uc.SearchTasks(context.Background(), uuid.New(), "  ")
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	repo.AssertNotCalled(t, "SearchTasks", mock.Anything, mock.Anything, mock.Anything)
}

func TestUsecase_AcceptDelegates(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	taskID := uuid.New()
	userID := uuid.New()
	repo.On("AcceptTask", mock.Anything, taskID, userID).
		Return(&entities.Task{ID: taskID, Status: entities.StatusInProgress, AcceptedBy: &userID}, nil)

	task, err := uc.AcceptTask(context.Background(), taskID, userID)
	require.NoError(t, err)
	require.Equal(t, entities.StatusInProgress, task.Status)
	repo.AssertExpectations(t)
}

func TestUsecase_UserStatsValidation(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	_, err := uc.UserStats(context.Background(), uuid.Nil, 0)
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
}
