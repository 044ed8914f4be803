package usecase

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	cacheport "github.com/abhikr1871/E-Cell/internal/infrastructure/cache/port"
	"github.com/abhikr1871/E-Cell/internal/pkg/chat/application/event"
	chat "github.com/abhikr1871/E-Cell/internal/pkg/chat/domain"
	repository "github.com/abhikr1871/E-Cell/internal/pkg/chat/persistence/repository/port"
	notification "github.com/abhikr1871/E-Cell/internal/pkg/notification/domain"
	notifrepo "github.com/abhikr1871/E-Cell/internal/pkg/notification/persistence/repository/port"
)

// Realtime is the delivery surface the pipeline is allowed to touch: room
// fan-out, direct user push, and a presence check. Connection bookkeeping
// stays with the session layer.
type Realtime interface {
	BroadcastRoom(chatboxID string, payload []byte) int
	NotifyUser(userID string, payload []byte) bool
	IsOnline(userID string) bool
}

// SendMessageInput carries one inbound send. SenderID comes from the
// authenticated connection, never from client-supplied fields.
type SendMessageInput struct {
	SenderID     string
	ReceiverID   string
	Body         string
	SenderName   string
	ReceiverName string
	MsgType      chat.MessageType
}

// SendMessageResult reports the outcome of a completed send.
type SendMessageResult struct {
	Message   chat.Message
	Delivered int  // room members that received the live broadcast
	LivePush  bool // whether a direct notification reached the receiver
}

// SendMessageUseCase runs the message pipeline: validate, persist, broadcast
// to the room, push a live notification when the receiver is reachable,
// durably record the notification, and hand the persisted message back for
// the sender's acknowledgment.
//
// The durable notification is best-effort relative to message persistence:
// a failed notification write degrades (logged, send still succeeds), while
// a failed message write aborts before anything is broadcast.
type SendMessageUseCase struct {
	Repo   repository.ConversationRepository
	Notifs notifrepo.NotificationRepository
	RT     Realtime
	Cache  cacheport.Cache // optional
	Log    *zap.Logger
}

func NewSendMessageUseCase(
	repo repository.ConversationRepository,
	notifs notifrepo.NotificationRepository,
	rt Realtime,
	cache cacheport.Cache,
	log *zap.Logger,
) *SendMessageUseCase {
	return &SendMessageUseCase{Repo: repo, Notifs: notifs, RT: rt, Cache: cache, Log: log}
}

func (uc *SendMessageUseCase) Execute(ctx context.Context, in SendMessageInput) (*SendMessageResult, error) {
	if in.ReceiverID == "" {
		return nil, chat.ErrMissingReceiver
	}

	msg, err := chat.NewMessage(chat.Message{
		SenderID:     in.SenderID,
		Body:         in.Body,
		SenderName:   in.SenderName,
		ReceiverName: in.ReceiverName,
		MsgType:      in.MsgType,
	})
	if err != nil {
		return nil, err
	}

	chatboxID := chat.ChatboxID(in.SenderID, in.ReceiverID)
	box := chat.Chatbox{ChatboxID: chatboxID, SenderID: in.SenderID, ReceiverID: in.ReceiverID}

	persisted, err := uc.Repo.SaveMessage(ctx, box, *msg)
	if err != nil {
		uc.Log.Error("failed to persist message",
			zap.String("chatboxId", chatboxID),
			zap.String("senderId", in.SenderID),
			zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	result := &SendMessageResult{Message: *persisted}

	// Room fan-out happens only after the message is durable, so no client
	// observes a message via the live channel before it is stored.
	if payload, err := event.Encode(event.ReceiveMessage{
		Type:         event.TypeReceiveMessage,
		MessageID:    persisted.ID,
		ChatboxID:    chatboxID,
		SenderID:     in.SenderID,
		ReceiverID:   in.ReceiverID,
		SenderName:   in.SenderName,
		ReceiverName: in.ReceiverName,
		Message:      persisted.Body,
		Timestamp:    persisted.CreatedAt,
	}); err == nil {
		result.Delivered = uc.RT.BroadcastRoom(chatboxID, payload)
	}

	// Live push is a best-effort accelerant for a reachable receiver; the
	// durable record below is what guarantees the message is not lost.
	if uc.RT.IsOnline(in.ReceiverID) {
		if payload, err := event.Encode(event.Notification{
			Type:       event.TypeNotification,
			Kind:       string(notification.TypeChat),
			FromUser:   in.SenderName,
			FromUserID: in.SenderID,
			Message:    persisted.Body,
			ChatboxID:  chatboxID,
			MessageID:  persisted.ID,
			Timestamp:  persisted.CreatedAt,
		}); err == nil {
			result.LivePush = uc.RT.NotifyUser(in.ReceiverID, payload)
		}
	}

	uc.recordNotification(ctx, chatboxID, in, persisted)
	uc.invalidateCaches(ctx, in.SenderID, in.ReceiverID)

	return result, nil
}

func (uc *SendMessageUseCase) recordNotification(ctx context.Context, chatboxID string, in SendMessageInput, msg *chat.Message) {
	preview := chat.Preview(msg.Body, 100)
	// The sender display name is client-supplied and unbounded; the composed
	// text must stay inside the notification limit or a valid send would lose
	// its durable catch-up record.
	text := chat.Preview(fmt.Sprintf("New message from %s: %s", in.SenderName, preview),
		notification.MaxNotificationLength-3)
	n, err := notification.New(notification.Notification{
		ChatboxID: chatboxID,
		ToUser:    in.ReceiverID,
		FromUser:  in.SenderID,
		Message:   text,
		Type:      notification.TypeChat,
		CreatedAt: msg.CreatedAt,
		Metadata: notification.Metadata{
			MessageID:      msg.ID,
			MessagePreview: preview,
		},
	})
	if err == nil {
		_, err = uc.Notifs.SaveNotification(ctx, *n)
	}
	if err != nil {
		uc.Log.Error("failed to persist notification",
			zap.String("chatboxId", chatboxID),
			zap.String("toUser", in.ReceiverID),
			zap.Error(err))
	}
}

func (uc *SendMessageUseCase) invalidateCaches(ctx context.Context, userIDs ...string) {
	if uc.Cache == nil {
		return
	}
	keys := make([]string, 0, len(userIDs)*2)
	for _, id := range userIDs {
		keys = append(keys, unreadCountCacheKey(id), chatListCacheKey(id))
	}
	if _, err := uc.Cache.Del(ctx, keys...); err != nil {
		uc.Log.Debug("cache invalidation failed", zap.Error(err))
	}
}

const chatCacheTTL = 30 * time.Second

func unreadCountCacheKey(userID string) string { return "chat:unread:" + userID }
func chatListCacheKey(userID string) string    { return "chat:list:" + userID }
