package notification

import (
	"errors"
	"time"
)

// Type categorizes a notification entry. The log is shared with non-chat
// entries, so the kind travels with each record.
type Type string

const (
	TypeChat   Type = "chat"
	TypeSystem Type = "system"
	TypeAlert  Type = "alert"
)

// Priority is advisory metadata for consumers; it has no delivery semantics
// server-side.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// MaxNotificationLength bounds the notification text.
const MaxNotificationLength = 500

var (
	ErrMissingRecipient = errors.New("notification: toUser is required")
	ErrMissingSender    = errors.New("notification: fromUser is required")
	ErrMissingMessage   = errors.New("notification: message is required")
	ErrMissingChatbox   = errors.New("notification: chatboxId is required")
	ErrMessageTooLong   = errors.New("notification: message too long (max 500 characters)")
)

// Metadata links a notification back to the message that produced it.
type Metadata struct {
	MessageID      string   `json:"messageId,omitempty"`
	MessagePreview string   `json:"messagePreview,omitempty"`
	Priority       Priority `json:"priority"`
}

// Notification is a durable record of an attempted delivery, kept in a log
// independent of the message log. ToUser/FromUser always belong to the
// chatbox's participant pair.
type Notification struct {
	NotifID   string     `db:"notif_id"`
	ChatboxID string     `db:"chatbox_id"`
	ToUser    string     `db:"to_user"`
	FromUser  string     `db:"from_user"`
	Message   string     `db:"message"`
	Type      Type       `db:"notif_type"`
	Read      bool       `db:"read"`
	ReadAt    *time.Time `db:"read_at"`
	CreatedAt time.Time  `db:"created_at"`
	Metadata  Metadata
}

// New validates a notification and applies defaults (type chat, medium
// priority, current timestamp).
func New(n Notification) (*Notification, error) {
	if n.ToUser == "" {
		return nil, ErrMissingRecipient
	}
	if n.FromUser == "" {
		return nil, ErrMissingSender
	}
	if n.Message == "" {
		return nil, ErrMissingMessage
	}
	if n.ChatboxID == "" {
		return nil, ErrMissingChatbox
	}
	if len([]rune(n.Message)) > MaxNotificationLength {
		return nil, ErrMessageTooLong
	}

	if n.Type == "" {
		n.Type = TypeChat
	}
	if n.Metadata.Priority == "" {
		n.Metadata.Priority = PriorityMedium
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}

	return &n, nil
}

// Stats aggregates a user's notification log.
type Stats struct {
	TotalNotifications int `json:"totalNotifications"`
	UnreadCount        int `json:"unreadCount"`
	ReadCount          int `json:"readCount"`
	ActiveChatboxes    int `json:"activeChatboxes"`
}
