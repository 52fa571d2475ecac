// Package domain contains application usecases orchestrating domain logic by statistics.
package domain

import (
	"context"
	"fmt"

	"task-tracker/internal/entities"

	"github.com/google/uuid"
)

// Stats returns aggregated task statistics.
func (u *Usecase) Stats(ctx context.Context) (entities.Stats, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	return u.repo.Stats(ctx)
}

// UserStats returns per-user counters and recent tasks.
func (u *Usecase) UserStats(ctx context.Context, userID uuid.UUID, limit int) (entities.UserStats, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if userID == uuid.Nil {
		return entities.UserStats{}, fmt.Errorf("%w: user_id is required", entities.ErrInvalidArgument)
	}
	if limit <= 0 {
		limit = 10
	}
	return u.repo.UserStats(ctx, userID, limit)
}
