package task

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	queueport "github.com/abhikr1871/E-Cell/internal/infrastructure/queue/port"
	"github.com/abhikr1871/E-Cell/internal/pkg/notification/application/usecase"
)

// PurgeNotificationsTaskType identifies the retention-cleanup job.
const PurgeNotificationsTaskType = "notification:purge"

// PurgeQueue is the logical queue the cleanup job runs on.
const PurgeQueue = "notifications"

// PurgeNotificationsPayload parameterizes one purge run. Zero OlderThanDays
// falls back to the default retention window.
type PurgeNotificationsPayload struct {
	OlderThanDays int `json:"olderThanDays"`
}

// EnqueuePurge schedules a purge run and returns the task id.
func EnqueuePurge(ctx context.Context, client queueport.Client, olderThanDays int) (string, error) {
	payload, err := json.Marshal(PurgeNotificationsPayload{OlderThanDays: olderThanDays})
	if err != nil {
		return "", err
	}
	return client.Enqueue(ctx, queueport.Task{
		Type:    PurgeNotificationsTaskType,
		Payload: payload,
	}, queueport.EnqueueOption{
		Queue:     PurgeQueue,
		MaxRetry:  3,
		Retention: 24 * time.Hour,
	})
}

// RegisterPurgeNotificationsTask wires the purge handler into the worker
// server. A malformed payload is dropped, not retried.
func RegisterPurgeNotificationsTask(srv queueport.Server, purge *usecase.PurgeNotificationsUseCase, log *zap.Logger) {
	srv.Register(PurgeNotificationsTaskType, func(ctx context.Context, t queueport.Task) error {
		var p PurgeNotificationsPayload
		if len(t.Payload) > 0 {
			if err := json.Unmarshal(t.Payload, &p); err != nil {
				log.Error("malformed purge payload", zap.Error(err))
				return nil
			}
		}
		_, err := purge.Execute(ctx, p.OlderThanDays)
		return err
	})
}
