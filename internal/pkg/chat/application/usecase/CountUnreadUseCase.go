package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	cacheport "github.com/abhikr1871/E-Cell/internal/infrastructure/cache/port"
	chat "github.com/abhikr1871/E-Cell/internal/pkg/chat/domain"
	repository "github.com/abhikr1871/E-Cell/internal/pkg/chat/persistence/repository/port"
)

// CountUnreadUseCase answers "how many unread messages does this user have"
// across all their chatboxes, with a short-lived cache in front of the count
// query.
type CountUnreadUseCase struct {
	Repo  repository.ConversationRepository
	Cache cacheport.Cache // optional
	Log   *zap.Logger
}

func NewCountUnreadUseCase(repo repository.ConversationRepository, cache cacheport.Cache, log *zap.Logger) *CountUnreadUseCase {
	return &CountUnreadUseCase{Repo: repo, Cache: cache, Log: log}
}

func (uc *CountUnreadUseCase) Execute(ctx context.Context, userID string) (int, error) {
	if userID == "" {
		return 0, chat.ErrMissingSender
	}

	key := unreadCountCacheKey(userID)
	if uc.Cache != nil {
		if raw, err := uc.Cache.Get(ctx, key); err == nil {
			if n, err := strconv.Atoi(raw); err == nil {
				return n, nil
			}
		} else if !errors.Is(err, cacheport.ErrMiss) {
			uc.Log.Debug("unread count cache read failed", zap.Error(err))
		}
	}

	n, err := uc.Repo.CountUnread(ctx, userID)
	if err != nil {
		uc.Log.Error("failed to count unread messages",
			zap.String("userId", userID),
			zap.Error(err))
		return 0, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	if uc.Cache != nil {
		if err := uc.Cache.Set(ctx, key, strconv.Itoa(n), chatCacheTTL); err != nil {
			uc.Log.Debug("unread count cache write failed", zap.Error(err))
		}
	}
	return n, nil
}
