package domain

import (
	"context"
	"time"

	"task-tracker/internal/auth"
	"task-tracker/internal/repository"

	"go.uber.org/zap"
)

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	ctx            context.Context
	log            *zap.SugaredLogger
	repo           repository.Repository
	tokens         *auth.TokenManager
	timeout        time.Duration
	minPasswordLen int
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	tokens *auth.TokenManager,
	timeout time.Duration,
	minPasswordLen int,
) *Usecase {
	return &Usecase{
		ctx:            ctx,
		log:            log,
		repo:           repo,
		tokens:         tokens,
		timeout:        timeout,
		minPasswordLen: minPasswordLen,
	}
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
