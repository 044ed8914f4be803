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

// ErrMissingMessageID is returned when a read-mark arrives without a target.
var ErrMissingMessageID = errors.New("chat: messageId is required")

// MarkMessageReadUseCase flips one message to read. Re-marking an already
// read message succeeds without effect; an unknown id is reported as
// repository.ErrNotFound so the caller can answer with a not-found error.
type MarkMessageReadUseCase struct {
	Repo  repository.ConversationRepository
	Cache cacheport.Cache // optional
	Log   *zap.Logger
}

func NewMarkMessageReadUseCase(repo repository.ConversationRepository, cache cacheport.Cache, log *zap.Logger) *MarkMessageReadUseCase {
	return &MarkMessageReadUseCase{Repo: repo, Cache: cache, Log: log}
}

func (uc *MarkMessageReadUseCase) Execute(ctx context.Context, messageID, readerID string) error {
	if messageID == "" {
		return ErrMissingMessageID
	}
	if readerID == "" {
		return chat.ErrMissingSender
	}

	if err := uc.Repo.MarkMessageRead(ctx, messageID, readerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return err
		}
		uc.Log.Error("failed to mark message read",
			zap.String("messageId", messageID),
			zap.Error(err))
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	if uc.Cache != nil {
		if _, err := uc.Cache.Del(ctx, unreadCountCacheKey(readerID), chatListCacheKey(readerID)); err != nil {
			uc.Log.Debug("cache invalidation failed", zap.Error(err))
		}
	}
	return nil
}
