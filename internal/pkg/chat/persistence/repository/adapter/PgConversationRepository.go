package adapter

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	chat "github.com/abhikr1871/E-Cell/internal/pkg/chat/domain"
	port "github.com/abhikr1871/E-Cell/internal/pkg/chat/persistence/repository/port"
)

// PgConversationRepository persists the message log in Postgres.
type PgConversationRepository struct {
	pool *pgxpool.Pool
}

var _ port.ConversationRepository = (*PgConversationRepository)(nil)

func NewPgConversationRepository(pool *pgxpool.Pool) *PgConversationRepository {
	return &PgConversationRepository{pool: pool}
}

// SaveMessage upserts the chatbox row and appends the message in one
// transaction. ON CONFLICT makes the lazy chatbox creation safe against two
// concurrent first messages for the same key.
func (r *PgConversationRepository) SaveMessage(ctx context.Context, box chat.Chatbox, m chat.Message) (*chat.Message, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgConversationRepository: nil pool")
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO chatbox (chatbox_id, sender_id, receiver_id, last_activity)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (chatbox_id)
		DO UPDATE SET last_activity = NOW(), updated_at = NOW()
	`, box.ChatboxID, box.SenderID, box.ReceiverID)
	if err != nil {
		return nil, err
	}

	err = tx.QueryRow(ctx, `
		INSERT INTO chat_message (chatbox_id, sender_id, body, sender_name, receiver_name, msg_type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id::text, created_at
	`, box.ChatboxID, m.SenderID, m.Body, m.SenderName, m.ReceiverName, m.MsgType, m.CreatedAt).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	m.ChatboxID = box.ChatboxID
	return &m, nil
}

// MarkMessageRead flips the read flag exactly once. The read=FALSE guard
// keeps readAt/readBy immutable after the first transition; marking an
// already-read message is a successful no-op.
func (r *PgConversationRepository) MarkMessageRead(ctx context.Context, messageID, readerID string) error {
	if r == nil || r.pool == nil {
		return errors.New("PgConversationRepository: nil pool")
	}

	ct, err := r.pool.Exec(ctx, `
		UPDATE chat_message
		SET read = TRUE, read_at = NOW(), read_by = $2
		WHERE id = $1::uuid AND read = FALSE
	`, messageID, readerID)
	if err != nil {
		return err
	}
	if ct.RowsAffected() > 0 {
		return nil
	}

	var exists bool
	if err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM chat_message WHERE id = $1::uuid)`, messageID,
	).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return port.ErrNotFound
	}
	return nil
}

func (r *PgConversationRepository) MarkAllMessagesRead(ctx context.Context, chatboxID, readerID string) (int64, error) {
	if r == nil || r.pool == nil {
		return 0, errors.New("PgConversationRepository: nil pool")
	}

	ct, err := r.pool.Exec(ctx, `
		UPDATE chat_message
		SET read = TRUE, read_at = NOW(), read_by = $2
		WHERE chatbox_id = $1 AND read = FALSE AND sender_id <> $2
	`, chatboxID, readerID)
	if err != nil {
		return 0, err
	}
	return ct.RowsAffected(), nil
}

func (r *PgConversationRepository) GetChatHistory(ctx context.Context, chatboxID string, page, limit int) (*chat.HistoryPage, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgConversationRepository: nil pool")
	}
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 50
	}

	var total int
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM chat_message WHERE chatbox_id = $1`, chatboxID,
	).Scan(&total); err != nil {
		return nil, err
	}

	result := &chat.HistoryPage{
		Messages:      []chat.Message{},
		CurrentPage:   page,
		TotalPages:    (total + limit - 1) / limit,
		TotalMessages: total,
	}
	result.HasMore = page < result.TotalPages
	if total == 0 {
		return result, nil
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id::text, chatbox_id, sender_id, body, sender_name, receiver_name,
		       msg_type, read, read_at, read_by, edited, edited_at, created_at
		FROM chat_message
		WHERE chatbox_id = $1
		ORDER BY seq DESC
		LIMIT $2 OFFSET $3
	`, chatboxID, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var msg chat.Message
		if err := rows.Scan(
			&msg.ID, &msg.ChatboxID, &msg.SenderID, &msg.Body, &msg.SenderName, &msg.ReceiverName,
			&msg.MsgType, &msg.Read, &msg.ReadAt, &msg.ReadBy, &msg.Edited, &msg.EditedAt, &msg.CreatedAt,
		); err != nil {
			return nil, err
		}
		result.Messages = append(result.Messages, msg)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return result, nil
}

func (r *PgConversationRepository) ListUserChats(ctx context.Context, userID string) ([]chat.ChatSummary, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgConversationRepository: nil pool")
	}

	rows, err := r.pool.Query(ctx, `
		SELECT c.chatbox_id, c.sender_id, c.receiver_id,
		       m.body, m.created_at, m.sender_name,
		       (SELECT COUNT(*) FROM chat_message u
		        WHERE u.chatbox_id = c.chatbox_id AND u.read = FALSE AND u.sender_id <> $1) AS unread
		FROM chatbox c
		LEFT JOIN LATERAL (
			SELECT body, created_at, sender_name
			FROM chat_message
			WHERE chatbox_id = c.chatbox_id
			ORDER BY seq DESC
			LIMIT 1
		) m ON TRUE
		WHERE c.sender_id = $1 OR c.receiver_id = $1
		ORDER BY c.last_activity DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var chats []chat.ChatSummary
	for rows.Next() {
		var (
			box    chat.Chatbox
			body   *string
			sentAt *time.Time
			sender *string
			unread int
		)
		if err := rows.Scan(&box.ChatboxID, &box.SenderID, &box.ReceiverID,
			&body, &sentAt, &sender, &unread); err != nil {
			return nil, err
		}

		summary := chat.ChatSummary{
			ChatboxID:   box.ChatboxID,
			OtherUserID: box.OtherParticipant(userID),
			UnreadCount: unread,
		}
		if body != nil {
			summary.LastMessage = &chat.LastMessagePreview{
				Body:       *body,
				Timestamp:  *sentAt,
				SenderName: *sender,
			}
		}
		chats = append(chats, summary)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return chats, nil
}

func (r *PgConversationRepository) CountUnread(ctx context.Context, userID string) (int, error) {
	if r == nil || r.pool == nil {
		return 0, errors.New("PgConversationRepository: nil pool")
	}

	var count int
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM chat_message m
		JOIN chatbox c ON c.chatbox_id = m.chatbox_id
		WHERE (c.sender_id = $1 OR c.receiver_id = $1)
		  AND m.read = FALSE AND m.sender_id <> $1
	`, userID).Scan(&count)
	return count, err
}
