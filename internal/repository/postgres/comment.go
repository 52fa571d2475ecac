package postgres

import (
	"context"
	"errors"
	"fmt"

	"task-tracker/internal/entities"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	insertCommentQuery = `
INSERT INTO comments(id, task_id, author_id, body)
VALUES ($1, $2, $3, $4)
RETURNING created_at`
	selectCommentsQuery = `
SELECT id, task_id, author_id, body, created_at
FROM comments
WHERE task_id=$1
ORDER BY created_at`
)

// CreateComment appends an immutable comment to a task.
func (p *Postgres) CreateComment(ctx context.Context, comment entities.Comment) (*entities.Comment, error) {
	err := p.db.QueryRow(ctx, insertCommentQuery, comment.ID, comment.TaskID, comment.AuthorID, comment.Body).
		Scan(&comment.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, entities.ErrTaskNotFound
		}
		p.log.Errorw("failed to insert comment", "error", err, "task_id", comment.TaskID)
		return nil, fmt.Errorf("insert comment: %w", err)
	}

	p.log.Infow("comment added", "task_id", comment.TaskID, "author_id", comment.AuthorID)
	return &comment, nil
}

// ListComments returns a task's comments oldest first.
func (p *Postgres) ListComments(ctx context.Context, taskID uuid.UUID) ([]entities.Comment, error) {
	rows, err := p.db.Query(ctx, selectCommentsQuery, taskID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	comments := make([]entities.Comment, 0)
	for rows.Next() {
		var c entities.Comment
		if err := rows.Scan(&c.ID, &c.TaskID, &c.AuthorID, &c.Body, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate comments: %w", err)
	}
	return comments, nil
}
