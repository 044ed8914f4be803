package chat

import (
	"sort"
	"time"
)

// ChatboxID derives the canonical conversation key for a pair of users.
// The ids are sorted before joining so both participants compute the same
// key without a handshake, regardless of who initiated the conversation.
func ChatboxID(userA, userB string) string {
	pair := []string{userA, userB}
	sort.Strings(pair)
	return pair[0] + "_" + pair[1]
}

// Chatbox is the durable conversation record between exactly two users.
// Created lazily on the first message; mutated only by appending messages.
type Chatbox struct {
	ChatboxID    string    `db:"chatbox_id"`
	SenderID     string    `db:"sender_id"`
	ReceiverID   string    `db:"receiver_id"`
	LastActivity time.Time `db:"last_activity"`
	IsActive     bool      `db:"is_active"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

// OtherParticipant returns the counterpart of userID in this chatbox.
func (c Chatbox) OtherParticipant(userID string) string {
	if c.SenderID == userID {
		return c.ReceiverID
	}
	return c.SenderID
}

// LastMessagePreview summarizes the most recent message of a chatbox.
type LastMessagePreview struct {
	Body       string    `json:"message"`
	Timestamp  time.Time `json:"timestamp"`
	SenderName string    `json:"senderName"`
}

// ChatSummary is one entry of a user's chat list: the conversation key, the
// counterpart, the latest message and how many unread messages are addressed
// to this user.
type ChatSummary struct {
	ChatboxID   string              `json:"chatboxId"`
	OtherUserID string              `json:"otherUserId"`
	LastMessage *LastMessagePreview `json:"lastMessage"`
	UnreadCount int                 `json:"unreadCount"`
}

// HistoryPage is a window over a chatbox's message log. Page 1 holds the
// newest messages; messages within a page are ordered newest to oldest.
type HistoryPage struct {
	Messages      []Message `json:"messages"`
	CurrentPage   int       `json:"currentPage"`
	TotalPages    int       `json:"totalPages"`
	TotalMessages int       `json:"totalMessages"`
	HasMore       bool      `json:"hasMore"`
}
