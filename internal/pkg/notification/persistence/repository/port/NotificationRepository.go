package repository

import (
	"context"
	"errors"
	"time"

	notification "github.com/abhikr1871/E-Cell/internal/pkg/notification/domain"
)

// ErrNotFound is returned when a notification (or its chatbox record) does
// not exist.
var ErrNotFound = errors.New("notification repository: not found")

// NotificationRepository defines persistence for the delivery-notification
// log, kept independent of the message log. SaveNotification is upsert-style:
// the per-chatbox record is created atomically with its first notification,
// never via read-then-write at the application layer.
type NotificationRepository interface {
	// SaveNotification upserts the chatbox's notification record and
	// appends the notification, returning it with its server-assigned id.
	SaveNotification(ctx context.Context, n notification.Notification) (*notification.Notification, error)

	// MarkNotificationRead sets read/readAt on one notification.
	MarkNotificationRead(ctx context.Context, notifID, chatboxID string) error

	// MarkAllNotificationsRead marks every unread notification addressed
	// to the user in the chatbox. ErrNotFound when the chatbox record is
	// absent; zero matching rows on an existing record is success.
	MarkAllNotificationsRead(ctx context.Context, chatboxID, userID string) (int64, error)

	// DeleteNotification removes one notification.
	DeleteNotification(ctx context.Context, notifID, chatboxID string) error

	// ListUnreadForUser returns unread notifications addressed to the
	// user, flattened across all their chatboxes, newest first.
	ListUnreadForUser(ctx context.Context, userID string) ([]notification.Notification, error)

	// Stats aggregates the user's notification log.
	Stats(ctx context.Context, userID string) (*notification.Stats, error)

	// PurgeOlderThan removes notifications created before cutoff and
	// returns how many were deleted.
	PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
