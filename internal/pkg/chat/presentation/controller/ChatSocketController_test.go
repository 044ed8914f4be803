package controller

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/abhikr1871/E-Cell/internal/infrastructure/realtime"
	"github.com/abhikr1871/E-Cell/internal/pkg/auth"
	"github.com/abhikr1871/E-Cell/internal/pkg/chat/application/usecase"
	chat "github.com/abhikr1871/E-Cell/internal/pkg/chat/domain"
)

type stubConversationRepo struct {
	marked []string
}

func (s *stubConversationRepo) SaveMessage(_ context.Context, box chat.Chatbox, m chat.Message) (*chat.Message, error) {
	m.ID = "msg-1"
	m.ChatboxID = box.ChatboxID
	return &m, nil
}

func (s *stubConversationRepo) MarkMessageRead(_ context.Context, messageID, _ string) error {
	s.marked = append(s.marked, messageID)
	return nil
}

func (s *stubConversationRepo) MarkAllMessagesRead(context.Context, string, string) (int64, error) {
	return 0, nil
}

func (s *stubConversationRepo) GetChatHistory(context.Context, string, int, int) (*chat.HistoryPage, error) {
	return &chat.HistoryPage{Messages: []chat.Message{}}, nil
}

func (s *stubConversationRepo) ListUserChats(context.Context, string) ([]chat.ChatSummary, error) {
	return nil, nil
}

func (s *stubConversationRepo) CountUnread(context.Context, string) (int, error) {
	return 0, nil
}

func newSocketFixture(t *testing.T) (*httptest.Server, *stubConversationRepo) {
	t.Helper()
	t.Setenv("CHAT_JWT_SECRET", "")
	gin.SetMode(gin.TestMode)

	repo := &stubConversationRepo{}
	hub := realtime.NewHub()
	markRead := usecase.NewMarkMessageReadUseCase(repo, nil, zap.NewNop())
	ctl := NewChatSocketController(hub, auth.NewVerifierFromEnv(), nil, markRead, nil, zap.NewNop())

	engine := gin.New()
	engine.GET("/ws", ctl.Handle)
	srv := httptest.NewServer(engine)
	t.Cleanup(srv.Close)
	return srv, repo
}

func dialSocket(t *testing.T, srv *httptest.Server, userID string) *websocket.Conn {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws?user_id=" + userID
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func readEvent(t *testing.T, conn *websocket.Conn) map[string]any {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, raw, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatalf("unmarshal %q: %v", raw, err)
	}
	return m
}

func writeFrame(t *testing.T, conn *websocket.Conn, frame map[string]any) {
	t.Helper()
	raw, err := json.Marshal(frame)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := conn.WriteMessage(websocket.TextMessage, raw); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestMarkMessageReadRequiresChatbox(t *testing.T) {
	srv, repo := newSocketFixture(t)
	conn := dialSocket(t, srv, "alice")

	if evt := readEvent(t, conn); evt["type"] != "connected" {
		t.Fatalf("handshake event = %v", evt)
	}

	writeFrame(t, conn, map[string]any{"type": "markMessageRead", "messageId": "msg-1"})

	evt := readEvent(t, conn)
	if evt["type"] != "error" || evt["code"] != "validation_error" {
		t.Fatalf("got %v, want validation_error", evt)
	}
	if len(repo.marked) != 0 {
		t.Fatal("read-mark without a chatbox reached the store")
	}
}

func TestMarkMessageReadBroadcastsReceiptToRoom(t *testing.T) {
	srv, repo := newSocketFixture(t)
	conn := dialSocket(t, srv, "alice")

	if evt := readEvent(t, conn); evt["type"] != "connected" {
		t.Fatalf("handshake event = %v", evt)
	}

	writeFrame(t, conn, map[string]any{"type": "joinChat", "chatboxId": "alice_bob"})
	if evt := readEvent(t, conn); evt["type"] != "chatJoined" {
		t.Fatalf("join ack = %v", evt)
	}

	writeFrame(t, conn, map[string]any{
		"type": "markMessageRead", "messageId": "msg-1", "chatboxId": "alice_bob",
	})

	// The receipt comes back via the room broadcast, which includes the
	// reader's own joined socket.
	evt := readEvent(t, conn)
	if evt["type"] != "messageRead" {
		t.Fatalf("got %v, want messageRead", evt)
	}
	if evt["messageId"] != "msg-1" || evt["readBy"] != "alice" {
		t.Fatalf("receipt = %v", evt)
	}
	if len(repo.marked) != 1 || repo.marked[0] != "msg-1" {
		t.Fatalf("store saw %v", repo.marked)
	}
}
