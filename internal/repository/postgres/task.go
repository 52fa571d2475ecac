package postgres

import (
	"context"
	"errors"
	"fmt"

	"task-tracker/internal/entities"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	insertTaskQuery = `
INSERT INTO tasks(id, title, description, creator_id, team_id, status)
VALUES ($1, $2, $3, $4, $5, 'PLAN')
RETURNING created_at`
	insertAssigneeQuery = `INSERT INTO task_assignees(task_id, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`
	selectTaskQuery     = `
SELECT id, title, description, creator_id, team_id, status, accepted_by, created_at, accepted_date, completed_date
FROM tasks WHERE id=$1`
	selectTaskForUpdateQuery = `
SELECT id, title, description, creator_id, team_id, status, accepted_by, created_at, accepted_date, completed_date
FROM tasks WHERE id=$1 FOR UPDATE`
	selectAssigneesQuery = `SELECT user_id FROM task_assignees WHERE task_id=$1`
	deleteAssigneesQuery = `DELETE FROM task_assignees WHERE task_id=$1`
	updateTaskQuery      = `UPDATE tasks SET title=$2, description=$3, team_id=$4 WHERE id=$1`
	deleteTaskQuery      = `DELETE FROM tasks WHERE id=$1`
	acceptTaskQuery      = `
UPDATE tasks SET status='PROG', accepted_date=CURRENT_DATE, accepted_by=$2
WHERE id=$1
RETURNING accepted_date`
	completeTaskQuery = `
UPDATE tasks SET status='COMP', completed_date=CURRENT_DATE
WHERE id=$1
RETURNING completed_date`
	listTasksQuery = `
SELECT DISTINCT t.id, t.title, t.creator_id, t.status, t.created_at
FROM tasks t
LEFT JOIN task_assignees a ON a.task_id = t.id
WHERE (t.creator_id = $1 OR a.user_id = $1) AND (CASE WHEN $2 THEN t.status = 'COMP' ELSE t.status <> 'COMP' END)
ORDER BY t.created_at DESC`
	searchTasksQuery = `
SELECT DISTINCT t.id, t.title, t.creator_id, t.status, t.created_at
FROM tasks t
LEFT JOIN task_assignees a ON a.task_id = t.id
LEFT JOIN team_members m ON m.team_id = t.team_id AND m.user_id = $1
WHERE (t.creator_id = $1 OR a.user_id = $1 OR m.user_id IS NOT NULL)
  AND (t.title ILIKE '%' || $2 || '%' OR t.description ILIKE '%' || $2 || '%')
ORDER BY t.created_at DESC`
	selectTeamLeaderQuery = `SELECT leader_id FROM teams WHERE id=$1`
)

// CreateTask persists a planned task and auto-assigns the creator. When a
// team is given, the creator must lead it.
func (p *Postgres) CreateTask(ctx context.Context, task entities.Task) (*entities.Task, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if task.TeamID != nil {
		if err := p.requireTeamLeader(ctx, tx, *task.TeamID, task.CreatorID); err != nil {
			return nil, err
		}
	}

	if err := tx.QueryRow(ctx, insertTaskQuery, task.ID, task.Title, task.Description, task.CreatorID, task.TeamID).
		Scan(&task.CreatedAt); err != nil {
		p.log.Errorw("failed to insert task", "error", err, "task_id", task.ID)
		return nil, fmt.Errorf("insert task: %w", err)
	}

	if _, err := tx.Exec(ctx, insertAssigneeQuery, task.ID, task.CreatorID); err != nil {
		return nil, fmt.Errorf("assign creator: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	task.Status = entities.StatusPlanned
	task.Assignees = []uuid.UUID{task.CreatorID}
	p.log.Infow("task created", "task_id", task.ID, "creator_id", task.CreatorID)
	return &task, nil
}

// GetTask fetches a task with its assignee set.
func (p *Postgres) GetTask(ctx context.Context, id uuid.UUID) (*entities.Task, error) {
	var task entities.Task
	err := p.db.QueryRow(ctx, selectTaskQuery, id).Scan(
		&task.ID, &task.Title, &task.Description, &task.CreatorID, &task.TeamID,
		&task.Status, &task.AcceptedBy, &task.CreatedAt, &task.AcceptedDate, &task.CompletedDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrTaskNotFound
		}
		return nil, fmt.Errorf("get task: %w", err)
	}

	assignees, err := p.readAssignees(ctx, p.db, id)
	if err != nil {
		return nil, err
	}
	task.Assignees = assignees

	return &task, nil
}

// UpdateTask edits title, description, team and assignee set. Creator-only
// and only while the task is still planned.
func (p *Postgres) UpdateTask(ctx context.Context, upd entities.TaskUpdate, requesterID uuid.UUID) (*entities.Task, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	task, err := p.lockTask(ctx, tx, upd.ID)
	if err != nil {
		return nil, err
	}
	if task.CreatorID != requesterID || task.Status != entities.StatusPlanned {
		return nil, entities.ErrPermissionDenied
	}

	if upd.TeamID != nil {
		if err := p.requireTeamLeader(ctx, tx, *upd.TeamID, requesterID); err != nil {
			return nil, err
		}
	}

	if _, err := tx.Exec(ctx, updateTaskQuery, upd.ID, upd.Title, upd.Description, upd.TeamID); err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}

	assignees := upd.Assignees
	if len(assignees) == 0 {
		assignees = []uuid.UUID{task.CreatorID}
	}
	if _, err := tx.Exec(ctx, deleteAssigneesQuery, upd.ID); err != nil {
		return nil, fmt.Errorf("clear assignees: %w", err)
	}
	for _, userID := range assignees {
		if _, err := tx.Exec(ctx, insertAssigneeQuery, upd.ID, userID); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23503" {
				return nil, entities.ErrUserNotFound
			}
			return nil, fmt.Errorf("insert assignee: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	p.log.Infow("task updated", "task_id", upd.ID)
	return p.GetTask(ctx, upd.ID)
}

// DeleteTask removes a planned task. Creator-only.
func (p *Postgres) DeleteTask(ctx context.Context, taskID, requesterID uuid.UUID) error {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	task, err := p.lockTask(ctx, tx, taskID)
	if err != nil {
		return err
	}
	if task.CreatorID != requesterID || task.Status != entities.StatusPlanned {
		return entities.ErrPermissionDenied
	}

	if _, err := tx.Exec(ctx, deleteTaskQuery, taskID); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}

	p.log.Infow("task deleted", "task_id", taskID)
	return nil
}

// AcceptTask moves PLAN -> PROG. Assignee-only; stamps accepted_date and accepted_by.
func (p *Postgres) AcceptTask(ctx context.Context, taskID, requesterID uuid.UUID) (*entities.Task, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	task, err := p.lockTask(ctx, tx, taskID)
	if err != nil {
		return nil, err
	}

	assignees, err := p.readAssignees(ctx, tx, taskID)
	if err != nil {
		return nil, err
	}
	task.Assignees = assignees

	if !task.IsAssignee(requesterID) || task.Status != entities.StatusPlanned {
		return nil, entities.ErrPermissionDenied
	}

	if err := tx.QueryRow(ctx, acceptTaskQuery, taskID, requesterID).Scan(&task.AcceptedDate); err != nil {
		return nil, fmt.Errorf("accept task: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	task.Status = entities.StatusInProgress
	task.AcceptedBy = &requesterID
	p.log.Infow("task accepted", "task_id", taskID, "accepted_by", requesterID)
	return task, nil
}

// CompleteTask moves PROG -> COMP. Creator or assignee; stamps completed_date.
func (p *Postgres) CompleteTask(ctx context.Context, taskID, requesterID uuid.UUID) (*entities.Task, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	task, err := p.lockTask(ctx, tx, taskID)
	if err != nil {
		return nil, err
	}

	assignees, err := p.readAssignees(ctx, tx, taskID)
	if err != nil {
		return nil, err
	}
	task.Assignees = assignees

	allowed := task.CreatorID == requesterID || task.IsAssignee(requesterID)
	if !allowed || task.Status != entities.StatusInProgress {
		return nil, entities.ErrPermissionDenied
	}

	if err := tx.QueryRow(ctx, completeTaskQuery, taskID).Scan(&task.CompletedDate); err != nil {
		return nil, fmt.Errorf("complete task: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	task.Status = entities.StatusCompleted
	p.log.Infow("task completed", "task_id", taskID, "completed_by", requesterID)
	return task, nil
}

// ListOpenTasks returns non-completed tasks the user created or is assigned to.
func (p *Postgres) ListOpenTasks(ctx context.Context, userID uuid.UUID) ([]entities.TaskShort, error) {
	return p.listTasks(ctx, userID, false)
}

// ListCompletedTasks returns completed tasks the user created or is assigned to.
func (p *Postgres) ListCompletedTasks(ctx context.Context, userID uuid.UUID) ([]entities.TaskShort, error) {
	return p.listTasks(ctx, userID, true)
}

// SearchTasks filters visible tasks by case-insensitive substring over title
// and description. Visibility mirrors the detail view: creator, assignee, or
// member of the owning team.
func (p *Postgres) SearchTasks(ctx context.Context, userID uuid.UUID, query string) ([]entities.TaskShort, error) {
	rows, err := p.db.Query(ctx, searchTasksQuery, userID, query)
	if err != nil {
		return nil, fmt.Errorf("search tasks: %w", err)
	}
	return scanTaskShorts(rows)
}

func (p *Postgres) listTasks(ctx context.Context, userID uuid.UUID, completed bool) ([]entities.TaskShort, error) {
	rows, err := p.db.Query(ctx, listTasksQuery, userID, completed)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return scanTaskShorts(rows)
}

func scanTaskShorts(rows pgx.Rows) ([]entities.TaskShort, error) {
	defer rows.Close()

	tasks := make([]entities.TaskShort, 0)
	for rows.Next() {
		var t entities.TaskShort
		if err := rows.Scan(&t.ID, &t.Title, &t.CreatorID, &t.Status, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}
	return tasks, nil
}

func (p *Postgres) lockTask(ctx context.Context, tx pgx.Tx, taskID uuid.UUID) (*entities.Task, error) {
	var task entities.Task
	err := tx.QueryRow(ctx, selectTaskForUpdateQuery, taskID).Scan(
		&task.ID, &task.Title, &task.Description, &task.CreatorID, &task.TeamID,
		&task.Status, &task.AcceptedBy, &task.CreatedAt, &task.AcceptedDate, &task.CompletedDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrTaskNotFound
		}
		return nil, fmt.Errorf("get task: %w", err)
	}
	return &task, nil
}

type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func (p *Postgres) readAssignees(ctx context.Context, q querier, taskID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := q.Query(ctx, selectAssigneesQuery, taskID)
	if err != nil {
		return nil, fmt.Errorf("select assignees: %w", err)
	}
	defer rows.Close()

	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan assignee: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate assignees: %w", err)
	}
	return ids, nil
}

func (p *Postgres) requireTeamLeader(ctx context.Context, tx pgx.Tx, teamID, userID uuid.UUID) error {
	var leaderID uuid.UUID
	if err := tx.QueryRow(ctx, selectTeamLeaderQuery, teamID).Scan(&leaderID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.ErrTeamNotFound
		}
		return fmt.Errorf("team lookup: %w", err)
	}
	if leaderID != userID {
		return entities.ErrPermissionDenied
	}
	return nil
}
