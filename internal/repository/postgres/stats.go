package postgres

import (
	"context"
	"fmt"

	"task-tracker/internal/entities"

	"github.com/google/uuid"
)

const (
	statsByStatusQuery = `SELECT status, COUNT(*) FROM tasks GROUP BY status`
	statsByTeamQuery   = `
SELECT tm.name, COUNT(*)
FROM tasks t
JOIN teams tm ON tm.id = t.team_id
WHERE t.status <> 'COMP'
GROUP BY tm.name`
	statsByUserQuery = `SELECT user_id, COUNT(*) FROM task_assignees GROUP BY user_id`

	userExistsQuery       = `SELECT EXISTS(SELECT 1 FROM users WHERE id=$1)`
	userCreatedCntQuery   = `SELECT COUNT(*) FROM tasks WHERE creator_id=$1`
	userAssignedCntQuery  = `SELECT COUNT(*) FROM task_assignees WHERE user_id=$1`
	userCompletedCntQuery = `
SELECT COUNT(DISTINCT t.id)
FROM tasks t
LEFT JOIN task_assignees a ON a.task_id = t.id
WHERE t.status = 'COMP' AND (t.creator_id=$1 OR a.user_id=$1)`
	userRecentTasksQuery = `
SELECT DISTINCT t.id, t.title, t.creator_id, t.status, t.created_at
FROM tasks t
LEFT JOIN task_assignees a ON a.task_id = t.id
WHERE t.creator_id=$1 OR a.user_id=$1
ORDER BY t.created_at DESC
LIMIT $2`
)

// Stats returns task counts grouped by status, open-task load per team and
// assignment counts per user.
func (p *Postgres) Stats(ctx context.Context) (entities.Stats, error) {
	res := entities.Stats{}

	rows, err := p.db.Query(ctx, statsByStatusQuery)
	if err != nil {
		return res, fmt.Errorf("stats by status: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var s entities.StatusStat
		if err := rows.Scan(&s.Status, &s.TaskCount); err != nil {
			return res, fmt.Errorf("scan status stat: %w", err)
		}
		res.ByStatus = append(res.ByStatus, s)
	}
	if err := rows.Err(); err != nil {
		return res, fmt.Errorf("iterate status stat: %w", err)
	}

	rows2, err := p.db.Query(ctx, statsByTeamQuery)
	if err != nil {
		return res, fmt.Errorf("stats by team: %w", err)
	}
	defer rows2.Close()
	for rows2.Next() {
		var s entities.TeamStat
		if err := rows2.Scan(&s.TeamName, &s.OpenTasks); err != nil {
			return res, fmt.Errorf("scan team stat: %w", err)
		}
		res.ByTeam = append(res.ByTeam, s)
	}
	if err := rows2.Err(); err != nil {
		return res, fmt.Errorf("iterate team stat: %w", err)
	}

	rows3, err := p.db.Query(ctx, statsByUserQuery)
	if err != nil {
		return res, fmt.Errorf("stats by user: %w", err)
	}
	defer rows3.Close()
	for rows3.Next() {
		var s entities.UserStat
		if err := rows3.Scan(&s.UserID, &s.AssignCnt); err != nil {
			return res, fmt.Errorf("scan user stat: %w", err)
		}
		res.ByUser = append(res.ByUser, s)
	}
	if err := rows3.Err(); err != nil {
		return res, fmt.Errorf("iterate user stat: %w", err)
	}

	return res, nil
}

// UserStats returns created/assigned/completed counters and recent tasks for one user.
func (p *Postgres) UserStats(ctx context.Context, userID uuid.UUID, limit int) (entities.UserStats, error) {
	res := entities.UserStats{UserID: userID}

	var exists bool
	if err := p.db.QueryRow(ctx, userExistsQuery, userID).Scan(&exists); err != nil {
		return res, fmt.Errorf("user lookup: %w", err)
	}
	if !exists {
		return res, entities.ErrUserNotFound
	}

	if err := p.db.QueryRow(ctx, userCreatedCntQuery, userID).Scan(&res.CreatedCnt); err != nil {
		return res, fmt.Errorf("created count: %w", err)
	}
	if err := p.db.QueryRow(ctx, userAssignedCntQuery, userID).Scan(&res.AssignedCnt); err != nil {
		return res, fmt.Errorf("assigned count: %w", err)
	}
	if err := p.db.QueryRow(ctx, userCompletedCntQuery, userID).Scan(&res.CompletedCnt); err != nil {
		return res, fmt.Errorf("completed count: %w", err)
	}

	rows, err := p.db.Query(ctx, userRecentTasksQuery, userID, limit)
	if err != nil {
		return res, fmt.Errorf("recent tasks: %w", err)
	}
	recent, err := scanTaskShorts(rows)
	if err != nil {
		return res, err
	}
	res.RecentTasks = recent

	return res, nil
}
