package adapter

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	port "github.com/abhikr1871/E-Cell/internal/repository/port"
)

// PgUserStatusRepository stores user online/offline status in Postgres.
type PgUserStatusRepository struct {
	pool *pgxpool.Pool
}

var _ port.UserStatusRepository = (*PgUserStatusRepository)(nil)

func NewPgUserStatusRepository(pool *pgxpool.Pool) *PgUserStatusRepository {
	return &PgUserStatusRepository{pool: pool}
}

func (r *PgUserStatusRepository) UpdateStatus(ctx context.Context, userID, status string, lastSeen time.Time) error {
	if r == nil || r.pool == nil {
		return errors.New("PgUserStatusRepository: nil pool")
	}

	_, err := r.pool.Exec(ctx, `
		INSERT INTO user_status (user_id, status, last_seen, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (user_id)
		DO UPDATE SET status = EXCLUDED.status, last_seen = EXCLUDED.last_seen, updated_at = NOW()
	`, userID, status, lastSeen)
	return err
}

func (r *PgUserStatusRepository) GetStatus(ctx context.Context, userID string) (string, time.Time, error) {
	if r == nil || r.pool == nil {
		return "", time.Time{}, errors.New("PgUserStatusRepository: nil pool")
	}

	var (
		status   string
		lastSeen time.Time
	)
	err := r.pool.QueryRow(ctx,
		`SELECT status, last_seen FROM user_status WHERE user_id = $1`, userID,
	).Scan(&status, &lastSeen)
	return status, lastSeen, err
}
