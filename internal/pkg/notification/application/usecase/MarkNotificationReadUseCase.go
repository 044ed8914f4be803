package usecase

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	notification "github.com/abhikr1871/E-Cell/internal/pkg/notification/domain"
	repository "github.com/abhikr1871/E-Cell/internal/pkg/notification/persistence/repository/port"
)

// ErrMissingNotifID is returned when a read-mark or delete arrives without a
// notification id.
var ErrMissingNotifID = errors.New("notification: notifId is required")

// MarkNotificationReadUseCase flips one notification to read. Idempotent for
// already-read entries; unknown ids surface repository.ErrNotFound.
type MarkNotificationReadUseCase struct {
	Repo repository.NotificationRepository
	Log  *zap.Logger
}

func NewMarkNotificationReadUseCase(repo repository.NotificationRepository, log *zap.Logger) *MarkNotificationReadUseCase {
	return &MarkNotificationReadUseCase{Repo: repo, Log: log}
}

func (uc *MarkNotificationReadUseCase) Execute(ctx context.Context, notifID, chatboxID string) error {
	if notifID == "" {
		return ErrMissingNotifID
	}
	if chatboxID == "" {
		return notification.ErrMissingChatbox
	}

	if err := uc.Repo.MarkNotificationRead(ctx, notifID, chatboxID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return err
		}
		uc.Log.Error("failed to mark notification read",
			zap.String("notifId", notifID),
			zap.String("chatboxId", chatboxID),
			zap.Error(err))
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}
