package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	notification "github.com/abhikr1871/E-Cell/internal/pkg/notification/domain"
	repository "github.com/abhikr1871/E-Cell/internal/pkg/notification/persistence/repository/port"
)

// Pusher delivers a live copy of a freshly stored notification to its
// recipient when they are reachable. Implemented by the realtime hub.
type Pusher interface {
	NotifyUser(userID string, payload []byte) bool
	IsOnline(userID string) bool
}

// SendNotificationInput is a direct notification create, used for system and
// alert entries that do not originate from a chat message.
type SendNotificationInput struct {
	ChatboxID string
	ToUser    string
	FromUser  string
	Message   string
	Type      notification.Type
	Priority  notification.Priority
}

// SendNotificationUseCase validates and stores a notification, then pushes a
// live copy when the recipient has an active connection. Storage is the
// source of truth; the push is best-effort.
type SendNotificationUseCase struct {
	Repo repository.NotificationRepository
	Push Pusher // optional
	Log  *zap.Logger
}

func NewSendNotificationUseCase(repo repository.NotificationRepository, push Pusher, log *zap.Logger) *SendNotificationUseCase {
	return &SendNotificationUseCase{Repo: repo, Push: push, Log: log}
}

func (uc *SendNotificationUseCase) Execute(ctx context.Context, in SendNotificationInput) (*notification.Notification, error) {
	n, err := notification.New(notification.Notification{
		ChatboxID: in.ChatboxID,
		ToUser:    in.ToUser,
		FromUser:  in.FromUser,
		Message:   in.Message,
		Type:      in.Type,
		Metadata:  notification.Metadata{Priority: in.Priority},
	})
	if err != nil {
		return nil, err
	}

	saved, err := uc.Repo.SaveNotification(ctx, *n)
	if err != nil {
		uc.Log.Error("failed to persist notification",
			zap.String("chatboxId", in.ChatboxID),
			zap.String("toUser", in.ToUser),
			zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	if uc.Push != nil && uc.Push.IsOnline(saved.ToUser) {
		if payload, err := encodeLivePush(saved); err == nil {
			uc.Push.NotifyUser(saved.ToUser, payload)
		}
	}
	return saved, nil
}

func encodeLivePush(n *notification.Notification) ([]byte, error) {
	return json.Marshal(struct {
		Type      string    `json:"type"`
		Kind      string    `json:"kind"`
		NotifID   string    `json:"notifId"`
		FromUser  string    `json:"fromUserId"`
		Message   string    `json:"message"`
		ChatboxID string    `json:"chatboxId"`
		Timestamp time.Time `json:"timestamp"`
	}{
		Type:      "notification",
		Kind:      string(n.Type),
		NotifID:   n.NotifID,
		FromUser:  n.FromUser,
		Message:   n.Message,
		ChatboxID: n.ChatboxID,
		Timestamp: n.CreatedAt,
	})
}
