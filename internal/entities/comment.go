// Package entities contains core business entities.
package entities

import (
	"time"

	"github.com/google/uuid"
)

// Comment is an immutable note attached to a task.
type Comment struct {
	ID        uuid.UUID
	TaskID    uuid.UUID
	AuthorID  uuid.UUID
	Body      string
	CreatedAt *time.Time
}
