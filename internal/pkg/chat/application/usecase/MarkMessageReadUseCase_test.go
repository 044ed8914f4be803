package usecase

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	repository "github.com/abhikr1871/E-Cell/internal/pkg/chat/persistence/repository/port"
)

func TestMarkMessageReadRequiresTarget(t *testing.T) {
	uc := NewMarkMessageReadUseCase(&fakeConversationRepo{}, nil, zap.NewNop())

	if err := uc.Execute(context.Background(), "", "bob"); !errors.Is(err, ErrMissingMessageID) {
		t.Fatalf("got %v, want ErrMissingMessageID", err)
	}
}

func TestMarkMessageReadUnknownID(t *testing.T) {
	repo := &fakeConversationRepo{markReadErr: repository.ErrNotFound}
	uc := NewMarkMessageReadUseCase(repo, nil, zap.NewNop())

	err := uc.Execute(context.Background(), "missing", "bob")
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestMarkMessageReadWrapsInfrastructureErrors(t *testing.T) {
	repo := &fakeConversationRepo{markReadErr: errors.New("timeout")}
	uc := NewMarkMessageReadUseCase(repo, nil, zap.NewNop())

	err := uc.Execute(context.Background(), "msg-1", "bob")
	if !errors.Is(err, ErrPersistence) {
		t.Fatalf("got %v, want ErrPersistence", err)
	}
}

func TestMarkAllMessagesReadIdempotent(t *testing.T) {
	repo := &fakeConversationRepo{markAllRes: []int64{3, 0}}
	uc := NewMarkAllMessagesReadUseCase(repo, nil, zap.NewNop())

	first, err := uc.Execute(context.Background(), "alice_bob", "bob")
	if err != nil || first != 3 {
		t.Fatalf("first call = (%d, %v)", first, err)
	}

	// Everything is already read; the repeat succeeds with zero updates.
	second, err := uc.Execute(context.Background(), "alice_bob", "bob")
	if err != nil || second != 0 {
		t.Fatalf("second call = (%d, %v)", second, err)
	}
}
