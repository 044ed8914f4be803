package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	notification "github.com/abhikr1871/E-Cell/internal/pkg/notification/domain"
	repository "github.com/abhikr1871/E-Cell/internal/pkg/notification/persistence/repository/port"
)

// ListUnreadNotificationsUseCase returns a user's unread notifications,
// flattened across chatboxes, newest first.
type ListUnreadNotificationsUseCase struct {
	Repo repository.NotificationRepository
	Log  *zap.Logger
}

func NewListUnreadNotificationsUseCase(repo repository.NotificationRepository, log *zap.Logger) *ListUnreadNotificationsUseCase {
	return &ListUnreadNotificationsUseCase{Repo: repo, Log: log}
}

func (uc *ListUnreadNotificationsUseCase) Execute(ctx context.Context, userID string) ([]notification.Notification, error) {
	if userID == "" {
		return nil, notification.ErrMissingRecipient
	}

	items, err := uc.Repo.ListUnreadForUser(ctx, userID)
	if err != nil {
		uc.Log.Error("failed to list unread notifications",
			zap.String("userId", userID),
			zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return items, nil
}
