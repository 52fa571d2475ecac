package usecase

import (
	"context"
	"time"

	"task-tracker/internal/auth"
	"task-tracker/internal/repository"
	"task-tracker/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	AuthUsecaseInterface
	TeamUsecaseInterface
	TaskUsecaseInterface
	StatsUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(log *zap.SugaredLogger, ctx context.Context, repo repository.Repository, tokens *auth.TokenManager, timeout time.Duration, minPasswordLen int) InterfaceUsecase {
	return domain.New(log, ctx, repo, tokens, timeout, minPasswordLen)
}
