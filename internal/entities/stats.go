// Package entities contains core business entities.
package entities

import "github.com/google/uuid"

// Stats aggregates counters by status, team and user.
type Stats struct {
	ByStatus []StatusStat `json:"by_status"`
	ByTeam   []TeamStat   `json:"by_team"`
	ByUser   []UserStat   `json:"by_user"`
}

// StatusStat describes task counts grouped by status.
type StatusStat struct {
	Status    TaskStatus `json:"status"`
	TaskCount int64      `json:"task_count"`
}

// TeamStat is the open-task load of one team.
type TeamStat struct {
	TeamName  string `json:"team_name"`
	OpenTasks int64  `json:"open_tasks"`
}

// UserStat contains assignment count per user.
type UserStat struct {
	UserID    uuid.UUID `json:"user_id"`
	AssignCnt int64     `json:"assign_cnt"`
}

// UserStats contains aggregated data for a single user.
type UserStats struct {
	UserID       uuid.UUID   `json:"user_id"`
	CreatedCnt   int64       `json:"created_cnt"`
	AssignedCnt  int64       `json:"assigned_cnt"`
	CompletedCnt int64       `json:"completed_cnt"`
	RecentTasks  []TaskShort `json:"recent_tasks"`
}
