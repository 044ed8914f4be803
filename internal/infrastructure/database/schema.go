package database

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// InitializeSchema creates the messaging tables if they do not exist yet.
// Safe to run on every startup.
func InitializeSchema(ctx context.Context, pool *pgxpool.Pool) error {
	ddl := `
	CREATE TABLE IF NOT EXISTS chatbox (
		chatbox_id    TEXT PRIMARY KEY,
		sender_id     TEXT NOT NULL,
		receiver_id   TEXT NOT NULL,
		last_activity TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		is_active     BOOLEAN NOT NULL DEFAULT TRUE,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS chat_message (
		id            UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		seq           BIGINT GENERATED ALWAYS AS IDENTITY,
		chatbox_id    TEXT NOT NULL REFERENCES chatbox(chatbox_id) ON DELETE CASCADE,
		sender_id     TEXT NOT NULL,
		body          TEXT NOT NULL CHECK (char_length(body) <= 1000),
		sender_name   TEXT NOT NULL,
		receiver_name TEXT NOT NULL,
		msg_type      SMALLINT NOT NULL DEFAULT 0,
		read          BOOLEAN NOT NULL DEFAULT FALSE,
		read_at       TIMESTAMPTZ,
		read_by       TEXT,
		edited        BOOLEAN NOT NULL DEFAULT FALSE,
		edited_at     TIMESTAMPTZ,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS chat_notification_box (
		chatbox_id           TEXT PRIMARY KEY,
		users                TEXT[] NOT NULL,
		last_notification_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		is_active            BOOLEAN NOT NULL DEFAULT TRUE,
		created_at           TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at           TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS chat_notification (
		notif_id        UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		chatbox_id      TEXT NOT NULL REFERENCES chat_notification_box(chatbox_id) ON DELETE CASCADE,
		to_user         TEXT NOT NULL,
		from_user       TEXT NOT NULL,
		message         TEXT NOT NULL CHECK (char_length(message) <= 500),
		notif_type      TEXT NOT NULL DEFAULT 'chat',
		read            BOOLEAN NOT NULL DEFAULT FALSE,
		read_at         TIMESTAMPTZ,
		message_id      TEXT,
		message_preview TEXT,
		priority        TEXT NOT NULL DEFAULT 'medium',
		created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS user_status (
		user_id    TEXT PRIMARY KEY,
		status     TEXT NOT NULL DEFAULT 'offline',
		last_seen  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_chatbox_sender ON chatbox(sender_id);
	CREATE INDEX IF NOT EXISTS idx_chatbox_receiver ON chatbox(receiver_id);
	CREATE INDEX IF NOT EXISTS idx_chatbox_last_activity ON chatbox(last_activity DESC);
	CREATE INDEX IF NOT EXISTS idx_chat_message_chatbox_seq ON chat_message(chatbox_id, seq DESC);
	CREATE INDEX IF NOT EXISTS idx_chat_message_unread ON chat_message(chatbox_id, sender_id) WHERE read = FALSE;
	CREATE INDEX IF NOT EXISTS idx_chat_notification_to_user ON chat_notification(to_user) WHERE read = FALSE;
	CREATE INDEX IF NOT EXISTS idx_chat_notification_created ON chat_notification(created_at);
	CREATE INDEX IF NOT EXISTS idx_chat_notification_box_users ON chat_notification_box USING GIN (users);
	`

	_, err := pool.Exec(ctx, ddl)
	return err
}
