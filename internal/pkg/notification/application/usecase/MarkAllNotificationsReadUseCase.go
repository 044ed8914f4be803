package usecase

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	notification "github.com/abhikr1871/E-Cell/internal/pkg/notification/domain"
	repository "github.com/abhikr1871/E-Cell/internal/pkg/notification/persistence/repository/port"
)

// MarkAllNotificationsReadUseCase marks every unread notification addressed
// to the user in one chatbox. A chatbox with no unread entries succeeds with
// zero updates; a chatbox record that does not exist at all is a not-found.
type MarkAllNotificationsReadUseCase struct {
	Repo repository.NotificationRepository
	Log  *zap.Logger
}

func NewMarkAllNotificationsReadUseCase(repo repository.NotificationRepository, log *zap.Logger) *MarkAllNotificationsReadUseCase {
	return &MarkAllNotificationsReadUseCase{Repo: repo, Log: log}
}

func (uc *MarkAllNotificationsReadUseCase) Execute(ctx context.Context, chatboxID, userID string) (int64, error) {
	if chatboxID == "" {
		return 0, notification.ErrMissingChatbox
	}
	if userID == "" {
		return 0, notification.ErrMissingRecipient
	}

	updated, err := uc.Repo.MarkAllNotificationsRead(ctx, chatboxID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, err
		}
		uc.Log.Error("failed to mark notifications read",
			zap.String("chatboxId", chatboxID),
			zap.String("userId", userID),
			zap.Error(err))
		return 0, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return updated, nil
}
