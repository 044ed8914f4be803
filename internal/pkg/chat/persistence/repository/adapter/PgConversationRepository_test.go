package adapter

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/abhikr1871/E-Cell/internal/infrastructure/database"
	chat "github.com/abhikr1871/E-Cell/internal/pkg/chat/domain"
	port "github.com/abhikr1871/E-Cell/internal/pkg/chat/persistence/repository/port"
)

// Integration tests against a real Postgres, gated behind TEST_DB_URL. They
// exercise the invariants that live in SQL: the pagination window, the
// exactly-once read transition, and the mark-all predicate.

func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DB_URL")
	if dsn == "" {
		t.Skip("TEST_DB_URL not set")
	}
	ctx := context.Background()
	pool, err := database.Connect(ctx, dsn)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(pool.Close)
	if err := database.InitializeSchema(ctx, pool); err != nil {
		t.Fatalf("schema: %v", err)
	}
	return pool
}

// newTestChatbox returns a chatbox between two fresh users so runs never
// collide in a shared database.
func newTestChatbox() chat.Chatbox {
	a := "u-" + uuid.NewString()
	b := "u-" + uuid.NewString()
	return chat.Chatbox{ChatboxID: chat.ChatboxID(a, b), SenderID: a, ReceiverID: b}
}

func seedMessage(t *testing.T, repo *PgConversationRepository, box chat.Chatbox, senderID, body string, at time.Time) chat.Message {
	t.Helper()
	saved, err := repo.SaveMessage(context.Background(), box, chat.Message{
		SenderID:     senderID,
		Body:         body,
		SenderName:   "Sender",
		ReceiverName: "Receiver",
		CreatedAt:    at,
	})
	if err != nil {
		t.Fatalf("seed %q: %v", body, err)
	}
	return *saved
}

func TestGetChatHistoryPaginationRoundTrip(t *testing.T) {
	pool := testPool(t)
	repo := NewPgConversationRepository(pool)
	ctx := context.Background()
	box := newTestChatbox()

	const total, limit = 25, 10
	base := time.Now().UTC().Add(-time.Hour)
	for i := 1; i <= total; i++ {
		seedMessage(t, repo, box, box.SenderID, fmt.Sprintf("m-%02d", i), base.Add(time.Duration(i)*time.Second))
	}

	var bodies []string
	for page := 1; ; page++ {
		hp, err := repo.GetChatHistory(ctx, box.ChatboxID, page, limit)
		if err != nil {
			t.Fatalf("page %d: %v", page, err)
		}
		if hp.TotalMessages != total || hp.TotalPages != 3 {
			t.Fatalf("page %d metadata: %+v", page, hp)
		}
		if wantMore := page < 3; hp.HasMore != wantMore {
			t.Fatalf("page %d hasMore = %v", page, hp.HasMore)
		}
		for _, m := range hp.Messages {
			bodies = append(bodies, m.Body)
		}
		if !hp.HasMore {
			break
		}
	}

	// Concatenated pages must reconstruct the full log newest-first, with
	// every message exactly once.
	if len(bodies) != total {
		t.Fatalf("round-trip yielded %d messages", len(bodies))
	}
	for i, body := range bodies {
		if want := fmt.Sprintf("m-%02d", total-i); body != want {
			t.Fatalf("position %d = %q, want %q", i, body, want)
		}
	}
}

func TestGetChatHistoryPageBeyondRange(t *testing.T) {
	pool := testPool(t)
	repo := NewPgConversationRepository(pool)
	box := newTestChatbox()

	base := time.Now().UTC()
	for i := 1; i <= 3; i++ {
		seedMessage(t, repo, box, box.SenderID, fmt.Sprintf("m-%02d", i), base.Add(time.Duration(i)*time.Second))
	}

	hp, err := repo.GetChatHistory(context.Background(), box.ChatboxID, 5, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(hp.Messages) != 0 {
		t.Fatalf("out-of-range page returned %d messages", len(hp.Messages))
	}
	if hp.CurrentPage != 5 || hp.TotalPages != 1 || hp.TotalMessages != 3 || hp.HasMore {
		t.Fatalf("metadata: %+v", hp)
	}
}

func TestMarkMessageReadExactlyOnce(t *testing.T) {
	pool := testPool(t)
	repo := NewPgConversationRepository(pool)
	ctx := context.Background()
	box := newTestChatbox()

	msg := seedMessage(t, repo, box, box.SenderID, "hello", time.Now().UTC())

	if err := repo.MarkMessageRead(ctx, msg.ID, box.ReceiverID); err != nil {
		t.Fatalf("first mark: %v", err)
	}

	var firstAt time.Time
	var firstBy string
	if err := pool.QueryRow(ctx,
		`SELECT read_at, read_by FROM chat_message WHERE id = $1::uuid`, msg.ID,
	).Scan(&firstAt, &firstBy); err != nil {
		t.Fatalf("inspect: %v", err)
	}
	if firstBy != box.ReceiverID {
		t.Fatalf("read_by = %q", firstBy)
	}

	// Re-marking, even by a different reader, is a no-op: readAt/readBy are
	// set at the false->true transition and never again.
	if err := repo.MarkMessageRead(ctx, msg.ID, "someone-else"); err != nil {
		t.Fatalf("second mark: %v", err)
	}

	var secondAt time.Time
	var secondBy string
	if err := pool.QueryRow(ctx,
		`SELECT read_at, read_by FROM chat_message WHERE id = $1::uuid`, msg.ID,
	).Scan(&secondAt, &secondBy); err != nil {
		t.Fatalf("inspect: %v", err)
	}
	if secondBy != firstBy || !secondAt.Equal(firstAt) {
		t.Fatalf("read transition repeated: (%v,%q) -> (%v,%q)", firstAt, firstBy, secondAt, secondBy)
	}
}

func TestMarkMessageReadUnknownIDNotFound(t *testing.T) {
	pool := testPool(t)
	repo := NewPgConversationRepository(pool)

	err := repo.MarkMessageRead(context.Background(), uuid.NewString(), "reader")
	if !errors.Is(err, port.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestMarkAllMessagesReadTwiceEqualsOnce(t *testing.T) {
	pool := testPool(t)
	repo := NewPgConversationRepository(pool)
	ctx := context.Background()
	box := newTestChatbox()

	base := time.Now().UTC()
	for i := 1; i <= 3; i++ {
		seedMessage(t, repo, box, box.SenderID, fmt.Sprintf("from-a-%d", i), base.Add(time.Duration(i)*time.Second))
	}
	for i := 1; i <= 2; i++ {
		seedMessage(t, repo, box, box.ReceiverID, fmt.Sprintf("from-b-%d", i), base.Add(time.Duration(10+i)*time.Second))
	}

	// Only messages the reader did not author are marked.
	updated, err := repo.MarkAllMessagesRead(ctx, box.ChatboxID, box.ReceiverID)
	if err != nil || updated != 3 {
		t.Fatalf("first call = (%d, %v)", updated, err)
	}

	updated, err = repo.MarkAllMessagesRead(ctx, box.ChatboxID, box.ReceiverID)
	if err != nil || updated != 0 {
		t.Fatalf("second call = (%d, %v)", updated, err)
	}

	if n, err := repo.CountUnread(ctx, box.ReceiverID); err != nil || n != 0 {
		t.Fatalf("reader unread = (%d, %v)", n, err)
	}
	// The reader's own messages stay unread for the counterpart.
	if n, err := repo.CountUnread(ctx, box.SenderID); err != nil || n != 2 {
		t.Fatalf("counterpart unread = (%d, %v)", n, err)
	}
}
