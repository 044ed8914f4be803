package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	chat "github.com/abhikr1871/E-Cell/internal/pkg/chat/domain"
	repository "github.com/abhikr1871/E-Cell/internal/pkg/chat/persistence/repository/port"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 200
)

// GetChatHistoryUseCase pages through a chatbox's message log, newest page
// first. Out-of-range pages and absent chatboxes both resolve to an empty
// page rather than an error.
type GetChatHistoryUseCase struct {
	Repo repository.ConversationRepository
	Log  *zap.Logger
}

func NewGetChatHistoryUseCase(repo repository.ConversationRepository, log *zap.Logger) *GetChatHistoryUseCase {
	return &GetChatHistoryUseCase{Repo: repo, Log: log}
}

func (uc *GetChatHistoryUseCase) Execute(ctx context.Context, chatboxID string, page, limit int) (*chat.HistoryPage, error) {
	if chatboxID == "" {
		return nil, chat.ErrMissingChatboxID
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	hp, err := uc.Repo.GetChatHistory(ctx, chatboxID, page, limit)
	if err != nil {
		uc.Log.Error("failed to load chat history",
			zap.String("chatboxId", chatboxID),
			zap.Int("page", page),
			zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return hp, nil
}
