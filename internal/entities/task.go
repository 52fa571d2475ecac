// Package entities contains core business entities.
package entities

import (
	"time"

	"github.com/google/uuid"
)

// TaskStatus enumerates task lifecycle states.
type TaskStatus string

const (
	// StatusPlanned marks a task as planned.
	StatusPlanned TaskStatus = "PLAN"
	// StatusInProgress marks a task as accepted and in progress.
	StatusInProgress TaskStatus = "PROG"
	// StatusCompleted marks a task as completed.
	StatusCompleted TaskStatus = "COMP"
)

// Task is a domain model of a tracked task.
//
// A task starts in PLAN with the creator as sole assignee. An assignee
// accepts it into PROG; the creator or an assignee completes it into COMP.
type Task struct {
	ID            uuid.UUID
	Title         string
	Description   string
	CreatorID     uuid.UUID
	TeamID        *uuid.UUID
	Status        TaskStatus
	Assignees     []uuid.UUID
	AcceptedBy    *uuid.UUID
	CreatedAt     *time.Time
	AcceptedDate  *time.Time
	CompletedDate *time.Time
	Comments      []Comment
}

// IsAssignee reports whether the user is in the task's assignee set.
func (t Task) IsAssignee(userID uuid.UUID) bool {
	for _, id := range t.Assignees {
		if id == userID {
			return true
		}
	}
	return false
}

// TaskShort is a compact projection for task listings.
type TaskShort struct {
	ID        uuid.UUID
	Title     string
	CreatorID uuid.UUID
	Status    TaskStatus
	CreatedAt *time.Time
}

// TaskUpdate carries the editable fields of a task.
type TaskUpdate struct {
	ID          uuid.UUID
	Title       string
	Description string
	TeamID      *uuid.UUID
	Assignees   []uuid.UUID
}
