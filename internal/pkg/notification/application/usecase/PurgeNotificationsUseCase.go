package usecase

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	repository "github.com/abhikr1871/E-Cell/internal/pkg/notification/persistence/repository/port"
)

// DefaultRetentionDays is how long notifications are kept when the caller
// does not specify a window.
const DefaultRetentionDays = 30

// PurgeNotificationsUseCase deletes notifications older than the retention
// window. Run from the background worker; the API only enqueues it.
type PurgeNotificationsUseCase struct {
	Repo repository.NotificationRepository
	Log  *zap.Logger
}

func NewPurgeNotificationsUseCase(repo repository.NotificationRepository, log *zap.Logger) *PurgeNotificationsUseCase {
	return &PurgeNotificationsUseCase{Repo: repo, Log: log}
}

func (uc *PurgeNotificationsUseCase) Execute(ctx context.Context, olderThanDays int) (int64, error) {
	if olderThanDays <= 0 {
		olderThanDays = DefaultRetentionDays
	}
	cutoff := time.Now().UTC().AddDate(0, 0, -olderThanDays)

	deleted, err := uc.Repo.PurgeOlderThan(ctx, cutoff)
	if err != nil {
		uc.Log.Error("failed to purge notifications",
			zap.Time("cutoff", cutoff),
			zap.Error(err))
		return 0, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	uc.Log.Info("purged notifications",
		zap.Int64("deleted", deleted),
		zap.Time("cutoff", cutoff))
	return deleted, nil
}
