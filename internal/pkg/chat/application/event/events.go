// Package event defines the outbound socket events of the messaging core.
// Every event is a tagged JSON object discriminated by its Type field.
package event

import (
	"encoding/json"
	"time"

	"github.com/abhikr1871/E-Cell/internal/infrastructure/realtime"
)

// Event type tags.
const (
	TypeConnected        = "connected"
	TypeChatJoined       = "chatJoined"
	TypeChatLeft         = "chatLeft"
	TypeReceiveMessage   = "receiveMessage"
	TypeNotification     = "notification"
	TypeMessageSent      = "messageSent"
	TypeMessageRead      = "messageRead"
	TypeUserTyping       = "userTyping"
	TypeUserStatusChange = "userStatusChange"
	TypeOnlineUsers      = "onlineUsers"
	TypeError            = "error"
)

// Encode marshals an event to its wire payload.
func Encode(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Connected acknowledges a completed handshake.
type Connected struct {
	Type   string `json:"type"`
	UserID string `json:"userId"`
}

func NewConnected(userID string) Connected {
	return Connected{Type: TypeConnected, UserID: userID}
}

// ChatJoined acknowledges a room join.
type ChatJoined struct {
	Type      string    `json:"type"`
	ChatboxID string    `json:"chatboxId"`
	Timestamp time.Time `json:"timestamp"`
}

func NewChatJoined(chatboxID string) ChatJoined {
	return ChatJoined{Type: TypeChatJoined, ChatboxID: chatboxID, Timestamp: time.Now()}
}

// ChatLeft acknowledges a room leave.
type ChatLeft struct {
	Type      string    `json:"type"`
	ChatboxID string    `json:"chatboxId"`
	Timestamp time.Time `json:"timestamp"`
}

func NewChatLeft(chatboxID string) ChatLeft {
	return ChatLeft{Type: TypeChatLeft, ChatboxID: chatboxID, Timestamp: time.Now()}
}

// ReceiveMessage carries a persisted message to every room member.
type ReceiveMessage struct {
	Type         string    `json:"type"`
	MessageID    string    `json:"messageId"`
	ChatboxID    string    `json:"chatboxId"`
	SenderID     string    `json:"senderId"`
	ReceiverID   string    `json:"receiverId"`
	SenderName   string    `json:"senderName"`
	ReceiverName string    `json:"receiverName"`
	Message      string    `json:"message"`
	Timestamp    time.Time `json:"timestamp"`
}

// Notification is the live push to a reachable recipient, independent of
// room membership.
type Notification struct {
	Type       string    `json:"type"`
	Kind       string    `json:"kind"`
	FromUser   string    `json:"fromUser"`
	FromUserID string    `json:"fromUserId"`
	Message    string    `json:"message"`
	ChatboxID  string    `json:"chatboxId"`
	MessageID  string    `json:"messageId"`
	Timestamp  time.Time `json:"timestamp"`
}

// MessageSent closes the send transaction from the sender's point of view.
type MessageSent struct {
	Type      string    `json:"type"`
	MessageID string    `json:"messageId"`
	ChatboxID string    `json:"chatboxId"`
	Timestamp time.Time `json:"timestamp"`
}

// MessageRead is the read receipt broadcast to the room.
type MessageRead struct {
	Type      string    `json:"type"`
	MessageID string    `json:"messageId"`
	ReadBy    string    `json:"readBy"`
	Timestamp time.Time `json:"timestamp"`
}

// UserTyping is an ephemeral typing indicator; never persisted.
type UserTyping struct {
	Type      string    `json:"type"`
	UserID    string    `json:"userId"`
	IsTyping  bool      `json:"isTyping"`
	Timestamp time.Time `json:"timestamp"`
}

// UserStatusChange announces online/offline transitions to all connections.
type UserStatusChange struct {
	Type      string    `json:"type"`
	UserID    string    `json:"userId"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

func NewUserStatusChange(userID string, status realtime.Status) UserStatusChange {
	return UserStatusChange{
		Type:      TypeUserStatusChange,
		UserID:    userID,
		Status:    string(status),
		Timestamp: time.Now(),
	}
}

// OnlineUsers answers a presence query.
type OnlineUsers struct {
	Type  string                `json:"type"`
	Users []realtime.UserStatus `json:"users"`
}

func NewOnlineUsers(users []realtime.UserStatus) OnlineUsers {
	return OnlineUsers{Type: TypeOnlineUsers, Users: users}
}

// Error reports a failed operation to the originating connection only.
type Error struct {
	Type    string `json:"type"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func NewError(code, message string) Error {
	return Error{Type: TypeError, Code: code, Message: message}
}
