package adapter

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	notification "github.com/abhikr1871/E-Cell/internal/pkg/notification/domain"
	port "github.com/abhikr1871/E-Cell/internal/pkg/notification/persistence/repository/port"
)

// PgNotificationRepository persists the notification log in Postgres, one
// parent record per chatbox plus child notification rows.
type PgNotificationRepository struct {
	pool *pgxpool.Pool
}

var _ port.NotificationRepository = (*PgNotificationRepository)(nil)

func NewPgNotificationRepository(pool *pgxpool.Pool) *PgNotificationRepository {
	return &PgNotificationRepository{pool: pool}
}

// SaveNotification upserts the parent record and appends the notification in
// one transaction. ON CONFLICT keeps two concurrent first notifications for
// the same chatbox from racing into parallel records.
func (r *PgNotificationRepository) SaveNotification(ctx context.Context, n notification.Notification) (*notification.Notification, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgNotificationRepository: nil pool")
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO chat_notification_box (chatbox_id, users, last_notification_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (chatbox_id)
		DO UPDATE SET last_notification_at = NOW(), updated_at = NOW()
	`, n.ChatboxID, []string{n.ToUser, n.FromUser})
	if err != nil {
		return nil, err
	}

	err = tx.QueryRow(ctx, `
		INSERT INTO chat_notification
			(chatbox_id, to_user, from_user, message, notif_type, read, message_id, message_preview, priority, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), NULLIF($8, ''), $9, $10)
		RETURNING notif_id::text, created_at
	`, n.ChatboxID, n.ToUser, n.FromUser, n.Message, n.Type, n.Read,
		n.Metadata.MessageID, n.Metadata.MessagePreview, n.Metadata.Priority, n.CreatedAt,
	).Scan(&n.NotifID, &n.CreatedAt)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *PgNotificationRepository) MarkNotificationRead(ctx context.Context, notifID, chatboxID string) error {
	if r == nil || r.pool == nil {
		return errors.New("PgNotificationRepository: nil pool")
	}

	ct, err := r.pool.Exec(ctx, `
		UPDATE chat_notification
		SET read = TRUE, read_at = NOW()
		WHERE notif_id = $1::uuid AND chatbox_id = $2 AND read = FALSE
	`, notifID, chatboxID)
	if err != nil {
		return err
	}
	if ct.RowsAffected() > 0 {
		return nil
	}

	var exists bool
	if err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM chat_notification WHERE notif_id = $1::uuid AND chatbox_id = $2)`,
		notifID, chatboxID,
	).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return port.ErrNotFound
	}
	return nil
}

func (r *PgNotificationRepository) MarkAllNotificationsRead(ctx context.Context, chatboxID, userID string) (int64, error) {
	if r == nil || r.pool == nil {
		return 0, errors.New("PgNotificationRepository: nil pool")
	}

	var exists bool
	if err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM chat_notification_box WHERE chatbox_id = $1)`, chatboxID,
	).Scan(&exists); err != nil {
		return 0, err
	}
	if !exists {
		return 0, port.ErrNotFound
	}

	ct, err := r.pool.Exec(ctx, `
		UPDATE chat_notification
		SET read = TRUE, read_at = NOW()
		WHERE chatbox_id = $1 AND to_user = $2 AND read = FALSE
	`, chatboxID, userID)
	if err != nil {
		return 0, err
	}
	return ct.RowsAffected(), nil
}

func (r *PgNotificationRepository) DeleteNotification(ctx context.Context, notifID, chatboxID string) error {
	if r == nil || r.pool == nil {
		return errors.New("PgNotificationRepository: nil pool")
	}

	ct, err := r.pool.Exec(ctx,
		`DELETE FROM chat_notification WHERE notif_id = $1::uuid AND chatbox_id = $2`,
		notifID, chatboxID)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}

func (r *PgNotificationRepository) ListUnreadForUser(ctx context.Context, userID string) ([]notification.Notification, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgNotificationRepository: nil pool")
	}

	rows, err := r.pool.Query(ctx, `
		SELECT notif_id::text, chatbox_id, to_user, from_user, message, notif_type,
		       read, read_at, COALESCE(message_id, ''), COALESCE(message_preview, ''), priority, created_at
		FROM chat_notification
		WHERE to_user = $1 AND read = FALSE
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []notification.Notification
	for rows.Next() {
		var n notification.Notification
		if err := rows.Scan(
			&n.NotifID, &n.ChatboxID, &n.ToUser, &n.FromUser, &n.Message, &n.Type,
			&n.Read, &n.ReadAt, &n.Metadata.MessageID, &n.Metadata.MessagePreview,
			&n.Metadata.Priority, &n.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return out, nil
}

func (r *PgNotificationRepository) Stats(ctx context.Context, userID string) (*notification.Stats, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgNotificationRepository: nil pool")
	}

	stats := &notification.Stats{}
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE read = FALSE)
		FROM chat_notification
		WHERE to_user = $1
	`, userID).Scan(&stats.TotalNotifications, &stats.UnreadCount)
	if err != nil {
		return nil, err
	}
	stats.ReadCount = stats.TotalNotifications - stats.UnreadCount

	err = r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM chat_notification_box WHERE $1 = ANY(users)`, userID,
	).Scan(&stats.ActiveChatboxes)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *PgNotificationRepository) PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	if r == nil || r.pool == nil {
		return 0, errors.New("PgNotificationRepository: nil pool")
	}

	ct, err := r.pool.Exec(ctx,
		`DELETE FROM chat_notification WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, err
	}
	return ct.RowsAffected(), nil
}
