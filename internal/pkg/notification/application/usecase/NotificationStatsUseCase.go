package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	notification "github.com/abhikr1871/E-Cell/internal/pkg/notification/domain"
	repository "github.com/abhikr1871/E-Cell/internal/pkg/notification/persistence/repository/port"
)

// NotificationStatsUseCase aggregates a user's notification log into totals.
type NotificationStatsUseCase struct {
	Repo repository.NotificationRepository
	Log  *zap.Logger
}

func NewNotificationStatsUseCase(repo repository.NotificationRepository, log *zap.Logger) *NotificationStatsUseCase {
	return &NotificationStatsUseCase{Repo: repo, Log: log}
}

func (uc *NotificationStatsUseCase) Execute(ctx context.Context, userID string) (*notification.Stats, error) {
	if userID == "" {
		return nil, notification.ErrMissingRecipient
	}

	stats, err := uc.Repo.Stats(ctx, userID)
	if err != nil {
		uc.Log.Error("failed to load notification stats",
			zap.String("userId", userID),
			zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return stats, nil
}
