package usecase

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	chat "github.com/abhikr1871/E-Cell/internal/pkg/chat/domain"
)

func TestGetChatHistoryClampsPaging(t *testing.T) {
	repo := &fakeConversationRepo{}
	uc := NewGetChatHistoryUseCase(repo, zap.NewNop())

	if _, err := uc.Execute(context.Background(), "alice_bob", 0, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.historyPage != 1 || repo.historyLim != defaultHistoryLimit {
		t.Fatalf("defaults not applied: page=%d limit=%d", repo.historyPage, repo.historyLim)
	}

	if _, err := uc.Execute(context.Background(), "alice_bob", 2, 10000); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.historyLim != maxHistoryLimit {
		t.Fatalf("limit not capped: %d", repo.historyLim)
	}
}

func TestGetChatHistoryRequiresChatbox(t *testing.T) {
	uc := NewGetChatHistoryUseCase(&fakeConversationRepo{}, zap.NewNop())

	if _, err := uc.Execute(context.Background(), "", 1, 50); !errors.Is(err, chat.ErrMissingChatboxID) {
		t.Fatalf("got %v, want ErrMissingChatboxID", err)
	}
}
