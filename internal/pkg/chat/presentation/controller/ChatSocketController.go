package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/abhikr1871/E-Cell/internal/infrastructure/realtime"
	"github.com/abhikr1871/E-Cell/internal/pkg/auth"
	"github.com/abhikr1871/E-Cell/internal/pkg/chat/application/event"
	"github.com/abhikr1871/E-Cell/internal/pkg/chat/application/usecase"
	repository "github.com/abhikr1871/E-Cell/internal/pkg/chat/persistence/repository/port"
	userstatus "github.com/abhikr1871/E-Cell/internal/repository/port"
)

const (
	readWait     = 75 * time.Second
	maxFrameSize = 8192
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// inboundFrame is the single envelope for everything a client sends over the
// socket, discriminated by Type. Unused fields stay zero.
type inboundFrame struct {
	Type         string `json:"type"`
	ChatboxID    string `json:"chatboxId"`
	ReceiverID   string `json:"receiverId"`
	Message      string `json:"message"`
	SenderName   string `json:"senderName"`
	ReceiverName string `json:"receiverName"`
	MessageID    string `json:"messageId"`
	IsTyping     bool   `json:"isTyping"`
}

// ChatSocketController owns the websocket endpoint: handshake, session
// lifecycle, and dispatch of inbound frames to the use cases. One goroutine
// reads per connection; all writes go through the connection's send queue.
type ChatSocketController struct {
	Hub      *realtime.Hub
	Verifier *auth.Verifier
	Send     *usecase.SendMessageUseCase
	MarkRead *usecase.MarkMessageReadUseCase
	Status   userstatus.UserStatusRepository // optional durable mirror
	Log      *zap.Logger
}

func NewChatSocketController(
	hub *realtime.Hub,
	verifier *auth.Verifier,
	send *usecase.SendMessageUseCase,
	markRead *usecase.MarkMessageReadUseCase,
	status userstatus.UserStatusRepository,
	log *zap.Logger,
) *ChatSocketController {
	return &ChatSocketController{
		Hub:      hub,
		Verifier: verifier,
		Send:     send,
		MarkRead: markRead,
		Status:   status,
		Log:      log,
	}
}

// Handle upgrades GET /ws?user_id=...&token=... and runs the session until
// the client disconnects or is superseded by a newer socket.
func (ctl *ChatSocketController) Handle(c *gin.Context) {
	claimedID := c.Query("user_id")
	token := c.Query("token")
	if token == "" {
		if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
			token = strings.TrimPrefix(h, "Bearer ")
		}
	}

	userID, err := ctl.Verifier.Identify(claimedID, token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		ctl.Log.Warn("websocket upgrade failed", zap.String("userId", userID), zap.Error(err))
		return
	}

	conn := realtime.NewConnection(userID, ws)
	ctl.Hub.Attach(conn)
	ctl.Log.Info("user connected", zap.String("userId", userID), zap.String("connId", conn.ID))

	ctx := c.Request.Context()
	ctl.mirrorStatus(ctx, userID, string(realtime.StatusOnline))
	ctl.announceStatus(conn, userID, realtime.StatusOnline)
	_ = conn.SendEvent(event.NewConnected(userID))

	defer func() {
		owner, authoritative := ctl.Hub.Detach(conn)
		conn.Close(websocket.CloseNormalClosure, "")
		if authoritative {
			ctl.mirrorStatus(ctx, owner, string(realtime.StatusOffline))
			ctl.announceStatus(nil, owner, realtime.StatusOffline)
			ctl.Log.Info("user disconnected", zap.String("userId", owner))
		}
	}()

	ws.SetReadLimit(maxFrameSize)
	_ = ws.SetReadDeadline(time.Now().Add(readWait))
	ws.SetPongHandler(func(string) error {
		return ws.SetReadDeadline(time.Now().Add(readWait))
	})

	for {
		_, raw, err := ws.ReadMessage()
		if err != nil {
			return
		}

		var frame inboundFrame
		if err := json.Unmarshal(raw, &frame); err != nil {
			_ = conn.SendEvent(event.NewError("bad_frame", "malformed frame"))
			continue
		}
		ctl.dispatch(c, conn, frame)
	}
}

func (ctl *ChatSocketController) dispatch(c *gin.Context, conn *realtime.Connection, frame inboundFrame) {
	ctx := c.Request.Context()

	switch frame.Type {
	case "joinChat":
		if frame.ChatboxID == "" {
			_ = conn.SendEvent(event.NewError("validation_error", "chatboxId is required"))
			return
		}
		ctl.Hub.JoinRoom(frame.ChatboxID, conn)
		_ = conn.SendEvent(event.NewChatJoined(frame.ChatboxID))

	case "leaveChat":
		if frame.ChatboxID == "" {
			_ = conn.SendEvent(event.NewError("validation_error", "chatboxId is required"))
			return
		}
		ctl.Hub.LeaveRoom(frame.ChatboxID, conn)
		_ = conn.SendEvent(event.NewChatLeft(frame.ChatboxID))

	case "sendMessage":
		res, err := ctl.Send.Execute(ctx, usecase.SendMessageInput{
			SenderID:     conn.UserID,
			ReceiverID:   frame.ReceiverID,
			Body:         frame.Message,
			SenderName:   frame.SenderName,
			ReceiverName: frame.ReceiverName,
		})
		if err != nil {
			_ = conn.SendEvent(sendFailure(err))
			return
		}
		_ = conn.SendEvent(event.MessageSent{
			Type:      event.TypeMessageSent,
			MessageID: res.Message.ID,
			ChatboxID: res.Message.ChatboxID,
			Timestamp: res.Message.CreatedAt,
		})

	case "markMessageRead":
		if frame.ChatboxID == "" {
			_ = conn.SendEvent(event.NewError("validation_error", "chatboxId is required"))
			return
		}
		if err := ctl.MarkRead.Execute(ctx, frame.MessageID, conn.UserID); err != nil {
			_ = conn.SendEvent(markReadFailure(err))
			return
		}
		receipt := event.MessageRead{
			Type:      event.TypeMessageRead,
			MessageID: frame.MessageID,
			ReadBy:    conn.UserID,
			Timestamp: time.Now(),
		}
		if payload, err := event.Encode(receipt); err == nil {
			ctl.Hub.BroadcastRoom(frame.ChatboxID, payload)
		}

	case "typing":
		if frame.ChatboxID == "" {
			return
		}
		payload, err := event.Encode(event.UserTyping{
			Type:      event.TypeUserTyping,
			UserID:    conn.UserID,
			IsTyping:  frame.IsTyping,
			Timestamp: time.Now(),
		})
		if err == nil {
			ctl.Hub.BroadcastRoomExcept(frame.ChatboxID, conn, payload)
		}

	case "getOnlineUsers":
		_ = conn.SendEvent(event.NewOnlineUsers(ctl.Hub.ListOnline()))

	default:
		_ = conn.SendEvent(event.NewError("unknown_type", "unknown frame type: "+frame.Type))
	}
}

// mirrorStatus writes the presence transition to the durable status table.
// The in-memory registry stays authoritative; a failed write is only logged.
func (ctl *ChatSocketController) mirrorStatus(ctx context.Context, userID, status string) {
	if ctl.Status == nil {
		return
	}
	if err := ctl.Status.UpdateStatus(ctx, userID, status, time.Now().UTC()); err != nil {
		ctl.Log.Warn("status mirror write failed", zap.String("userId", userID), zap.Error(err))
	}
}

func (ctl *ChatSocketController) announceStatus(exclude *realtime.Connection, userID string, status realtime.Status) {
	if payload, err := event.Encode(event.NewUserStatusChange(userID, status)); err == nil {
		ctl.Hub.BroadcastAll(exclude, payload)
	}
}

// sendFailure maps a pipeline error to the socket error event. Validation
// failures carry their message; infrastructure failures stay opaque.
func sendFailure(err error) event.Error {
	if errors.Is(err, usecase.ErrPersistence) {
		return event.NewError("send_failed", "message could not be sent")
	}
	return event.NewError("validation_error", err.Error())
}

func markReadFailure(err error) event.Error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return event.NewError("not_found", "message not found")
	case errors.Is(err, usecase.ErrPersistence):
		return event.NewError("send_failed", "could not mark message read")
	default:
		return event.NewError("validation_error", err.Error())
	}
}
