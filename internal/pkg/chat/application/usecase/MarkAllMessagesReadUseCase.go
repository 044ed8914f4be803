package usecase

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	cacheport "github.com/abhikr1871/E-Cell/internal/infrastructure/cache/port"
	chat "github.com/abhikr1871/E-Cell/internal/pkg/chat/domain"
	repository "github.com/abhikr1871/E-Cell/internal/pkg/chat/persistence/repository/port"
)

// MarkAllMessagesReadUseCase marks every unread message in a chatbox that
// the reader did not author. Idempotent: a second call reports zero updates
// and succeeds.
type MarkAllMessagesReadUseCase struct {
	Repo  repository.ConversationRepository
	Cache cacheport.Cache // optional
	Log   *zap.Logger
}

func NewMarkAllMessagesReadUseCase(repo repository.ConversationRepository, cache cacheport.Cache, log *zap.Logger) *MarkAllMessagesReadUseCase {
	return &MarkAllMessagesReadUseCase{Repo: repo, Cache: cache, Log: log}
}

func (uc *MarkAllMessagesReadUseCase) Execute(ctx context.Context, chatboxID, readerID string) (int64, error) {
	if chatboxID == "" {
		return 0, chat.ErrMissingChatboxID
	}
	if readerID == "" {
		return 0, chat.ErrMissingSender
	}

	updated, err := uc.Repo.MarkAllMessagesRead(ctx, chatboxID, readerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, err
		}
		uc.Log.Error("failed to mark chatbox read",
			zap.String("chatboxId", chatboxID),
			zap.String("readerId", readerID),
			zap.Error(err))
		return 0, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	if updated > 0 && uc.Cache != nil {
		if _, err := uc.Cache.Del(ctx, unreadCountCacheKey(readerID), chatListCacheKey(readerID)); err != nil {
			uc.Log.Debug("cache invalidation failed", zap.Error(err))
		}
	}
	return updated, nil
}
