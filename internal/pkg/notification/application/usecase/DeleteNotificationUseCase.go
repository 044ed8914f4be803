package usecase

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	notification "github.com/abhikr1871/E-Cell/internal/pkg/notification/domain"
	repository "github.com/abhikr1871/E-Cell/internal/pkg/notification/persistence/repository/port"
)

// DeleteNotificationUseCase removes one notification from a chatbox's log.
type DeleteNotificationUseCase struct {
	Repo repository.NotificationRepository
	Log  *zap.Logger
}

func NewDeleteNotificationUseCase(repo repository.NotificationRepository, log *zap.Logger) *DeleteNotificationUseCase {
	return &DeleteNotificationUseCase{Repo: repo, Log: log}
}

func (uc *DeleteNotificationUseCase) Execute(ctx context.Context, notifID, chatboxID string) error {
	if notifID == "" {
		return ErrMissingNotifID
	}
	if chatboxID == "" {
		return notification.ErrMissingChatbox
	}

	if err := uc.Repo.DeleteNotification(ctx, notifID, chatboxID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return err
		}
		uc.Log.Error("failed to delete notification",
			zap.String("notifId", notifID),
			zap.String("chatboxId", chatboxID),
			zap.Error(err))
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}
