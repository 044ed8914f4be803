package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	cacheport "github.com/abhikr1871/E-Cell/internal/infrastructure/cache/port"
	chat "github.com/abhikr1871/E-Cell/internal/pkg/chat/domain"
	repository "github.com/abhikr1871/E-Cell/internal/pkg/chat/persistence/repository/port"
)

// ListUserChatsUseCase builds a user's chat list, one summary per chatbox
// they participate in, most recently active first. Results are cached
// briefly; any write touching the user invalidates the entry.
type ListUserChatsUseCase struct {
	Repo  repository.ConversationRepository
	Cache cacheport.Cache // optional
	Log   *zap.Logger
}

func NewListUserChatsUseCase(repo repository.ConversationRepository, cache cacheport.Cache, log *zap.Logger) *ListUserChatsUseCase {
	return &ListUserChatsUseCase{Repo: repo, Cache: cache, Log: log}
}

func (uc *ListUserChatsUseCase) Execute(ctx context.Context, userID string) ([]chat.ChatSummary, error) {
	if userID == "" {
		return nil, chat.ErrMissingSender
	}

	key := chatListCacheKey(userID)
	if uc.Cache != nil {
		if raw, err := uc.Cache.Get(ctx, key); err == nil {
			var cached []chat.ChatSummary
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return cached, nil
			}
		} else if !errors.Is(err, cacheport.ErrMiss) {
			uc.Log.Debug("chat list cache read failed", zap.Error(err))
		}
	}

	chats, err := uc.Repo.ListUserChats(ctx, userID)
	if err != nil {
		uc.Log.Error("failed to list user chats",
			zap.String("userId", userID),
			zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	if uc.Cache != nil {
		if raw, err := json.Marshal(chats); err == nil {
			if err := uc.Cache.Set(ctx, key, string(raw), chatCacheTTL); err != nil {
				uc.Log.Debug("chat list cache write failed", zap.Error(err))
			}
		}
	}
	return chats, nil
}
