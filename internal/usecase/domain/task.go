// Package domain contains application usecases orchestrating domain logic by task.
package domain

import (
	"context"
	"fmt"
	"strings"

	"task-tracker/internal/entities"

	"github.com/google/uuid"
)

// CreateTask persists a new task. Any authenticated user may create one;
// it starts planned with the creator as sole assignee.
func (u *Usecase) CreateTask(ctx context.Context, task entities.Task) (*entities.Task, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	task.Title = strings.TrimSpace(task.Title)
	if task.Title == "" {
		return nil, fmt.Errorf("%w: title is required", entities.ErrInvalidArgument)
	}
	if task.CreatorID == uuid.Nil {
		return nil, fmt.Errorf("%w: creator is required", entities.ErrInvalidArgument)
	}

	task.ID = uuid.New()
	task.Status = entities.StatusPlanned
	task.Assignees = []uuid.UUID{task.CreatorID}

	res, err := u.repo.CreateTask(ctx, task)
	if err != nil {
		return nil, err
	}
	u.log.Infow("task create", "task_id", res.ID)
	return res, nil
}

// Task returns the task detail with comments. Visible to the creator,
// assignees and members of the owning team.
func (u *Usecase) Task(ctx context.Context, taskID, requesterID uuid.UUID) (*entities.Task, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	task, err := u.repo.GetTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if err := u.requireTaskAccess(ctx, task, requesterID); err != nil {
		return nil, err
	}

	comments, err := u.repo.ListComments(ctx, taskID)
	if err != nil {
		return nil, err
	}
	task.Comments = comments

	return task, nil
}

// EditTask updates a planned task. Creator-only, enforced in storage.
func (u *Usecase) EditTask(ctx context.Context, upd entities.TaskUpdate, requesterID uuid.UUID) (*entities.Task, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	upd.Title = strings.TrimSpace(upd.Title)
	if upd.Title == "" {
		return nil, fmt.Errorf("%w: title is required", entities.ErrInvalidArgument)
	}
	return u.repo.UpdateTask(ctx, upd, requesterID)
}

// DeleteTask removes a planned task. Creator-only, enforced in storage.
func (u *Usecase) DeleteTask(ctx context.Context, taskID, requesterID uuid.UUID) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.DeleteTask(ctx, taskID, requesterID)
}

// AcceptTask marks a planned task in progress. Assignee-only, enforced in storage.
func (u *Usecase) AcceptTask(ctx context.Context, taskID, requesterID uuid.UUID) (*entities.Task, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.AcceptTask(ctx, taskID, requesterID)
}

// CompleteTask marks an in-progress task completed. Creator or assignee, enforced in storage.
func (u *Usecase) CompleteTask(ctx context.Context, taskID, requesterID uuid.UUID) (*entities.Task, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.CompleteTask(ctx, taskID, requesterID)
}

// OpenTasks lists non-completed tasks the user created or is assigned to.
func (u *Usecase) OpenTasks(ctx context.Context, userID uuid.UUID) ([]entities.TaskShort, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.ListOpenTasks(ctx, userID)
}

// CompletedTasks lists completed tasks the user created or is assigned to.
func (u *Usecase) CompletedTasks(ctx context.Context, userID uuid.UUID) ([]entities.TaskShort, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.ListCompletedTasks(ctx, userID)
}

// SearchTasks filters visible tasks by a non-empty query string.
func (u *Usecase) SearchTasks(ctx context.Context, userID uuid.UUID, query string) ([]entities.TaskShort, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: query is required", entities.ErrInvalidArgument)
	}
	return u.repo.SearchTasks(ctx, userID, query)
}

// CommentTask appends a comment. The audience mirrors the detail view;
// a blank body is rejected before anything is written.
func (u *Usecase) CommentTask(ctx context.Context, taskID, authorID uuid.UUID, body string) (*entities.Comment, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if strings.TrimSpace(body) == "" {
		return nil, fmt.Errorf("%w: comment body is required", entities.ErrInvalidArgument)
	}

	task, err := u.repo.GetTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if err := u.requireTaskAccess(ctx, task, authorID); err != nil {
		return nil, err
	}

	return u.repo.CreateComment(ctx, entities.Comment{
		ID:       uuid.New(),
		TaskID:   taskID,
		AuthorID: authorID,
		Body:     body,
	})
}

// requireTaskAccess applies the shared visibility predicate: creator,
// assignee, or member of the owning team.
func (u *Usecase) requireTaskAccess(ctx context.Context, task *entities.Task, userID uuid.UUID) error {
	if task.CreatorID == userID || task.IsAssignee(userID) {
		return nil
	}
	if task.TeamID != nil {
		member, err := u.repo.IsTeamMember(ctx, *task.TeamID, userID)
		if err != nil {
			return err
		}
		if member {
			return nil
		}
	}
	return entities.ErrPermissionDenied
}
