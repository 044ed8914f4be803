package chat

import (
	"errors"
	"strings"
	"time"
)

// MessageType represents type of message content
// 0=text, 1=image, 2=file
type MessageType int16

const (
	MessageTypeText  MessageType = 0
	MessageTypeImage MessageType = 1
	MessageTypeFile  MessageType = 2
)

// MaxMessageLength bounds the message body in characters.
const MaxMessageLength = 1000

// Field-specific validation errors for inbound messages.
var (
	ErrMissingSender       = errors.New("chat: sender id is required")
	ErrMissingReceiver     = errors.New("chat: receiver id is required")
	ErrEmptyMessage        = errors.New("chat: message cannot be empty")
	ErrMessageTooLong      = errors.New("chat: message too long (max 1000 characters)")
	ErrMissingSenderName   = errors.New("chat: sender name is required")
	ErrMissingReceiverName = errors.New("chat: receiver name is required")
	ErrMissingChatboxID    = errors.New("chat: chatbox id is required")
)

// Message is an entry in a chatbox's append-only log. Its position in the
// log is immutable; Read flips false->true exactly once and ReadAt/ReadBy are
// set at that same transition.
type Message struct {
	ID           string      `db:"id"`
	ChatboxID    string      `db:"chatbox_id"`
	SenderID     string      `db:"sender_id"`
	Body         string      `db:"body"`
	SenderName   string      `db:"sender_name"`
	ReceiverName string      `db:"receiver_name"`
	MsgType      MessageType `db:"msg_type"`
	Read         bool        `db:"read"`
	ReadAt       *time.Time  `db:"read_at"`
	ReadBy       *string     `db:"read_by"`
	Edited       bool        `db:"edited"`
	EditedAt     *time.Time  `db:"edited_at"`
	CreatedAt    time.Time   `db:"created_at"`
}

// NewMessage validates and normalizes an inbound message. The body is
// trimmed; empty-after-trim and oversize bodies are rejected before anything
// reaches a store.
func NewMessage(m Message) (*Message, error) {
	if m.SenderID == "" {
		return nil, ErrMissingSender
	}
	if m.SenderName == "" {
		return nil, ErrMissingSenderName
	}
	if m.ReceiverName == "" {
		return nil, ErrMissingReceiverName
	}

	m.Body = strings.TrimSpace(m.Body)
	if m.Body == "" {
		return nil, ErrEmptyMessage
	}
	if len([]rune(m.Body)) > MaxMessageLength {
		return nil, ErrMessageTooLong
	}

	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}

	return &m, nil
}

// Preview returns the first max characters of body, appending an ellipsis
// when truncated. Used for notification text and chat-list previews.
func Preview(body string, max int) string {
	runes := []rune(body)
	if len(runes) <= max {
		return body
	}
	return string(runes[:max]) + "..."
}
