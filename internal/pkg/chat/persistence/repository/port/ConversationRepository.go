package repository

import (
	"context"
	"errors"

	chat "github.com/abhikr1871/E-Cell/internal/pkg/chat/domain"
)

// ErrNotFound is returned when a read-mark targets a message that does not
// exist.
var ErrNotFound = errors.New("chat repository: message not found")

// ConversationRepository defines persistence for the append-only message
// log. SaveMessage must be atomic with respect to chatbox existence: two
// near-simultaneous first messages for the same key must never produce two
// chatbox records.
type ConversationRepository interface {
	// SaveMessage upserts the chatbox, appends the message, bumps
	// last_activity, and returns the persisted message with its
	// server-assigned id and timestamp.
	SaveMessage(ctx context.Context, box chat.Chatbox, m chat.Message) (*chat.Message, error)

	// MarkMessageRead sets the read flag, timestamp and reader on one
	// message. Marking an already-read message is a no-op; a missing id
	// yields ErrNotFound.
	MarkMessageRead(ctx context.Context, messageID, readerID string) error

	// MarkAllMessagesRead marks every unread message in the chatbox not
	// authored by the reader. Idempotent; returns how many rows changed.
	MarkAllMessagesRead(ctx context.Context, chatboxID, readerID string) (int64, error)

	// GetChatHistory returns the requested page of messages, newest page
	// first, with page metadata. An absent chatbox yields an empty page
	// with zero total pages.
	GetChatHistory(ctx context.Context, chatboxID string, page, limit int) (*chat.HistoryPage, error)

	// ListUserChats returns one summary per chatbox the user participates
	// in, ordered by last activity.
	ListUserChats(ctx context.Context, userID string) ([]chat.ChatSummary, error)

	// CountUnread counts unread messages addressed to the user across all
	// their chatboxes.
	CountUnread(ctx context.Context, userID string) (int, error)
}
