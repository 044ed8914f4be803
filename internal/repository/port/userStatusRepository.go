package repository

import (
	"context"
	"time"
)

// UserStatusRepository mirrors live presence into durable storage so other
// services can read a user's last known status without a socket. Writes are
// best-effort; the in-memory registry stays authoritative for delivery
// decisions.
type UserStatusRepository interface {
	UpdateStatus(ctx context.Context, userID, status string, lastSeen time.Time) error
	GetStatus(ctx context.Context, userID string) (status string, lastSeen time.Time, err error)
}
