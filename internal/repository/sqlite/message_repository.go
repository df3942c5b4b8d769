package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"eventhub/internal/domain"
	"eventhub/internal/repository"
)

const createMessagesTable = `
CREATE TABLE IF NOT EXISTS messages (
	id TEXT PRIMARY KEY,
	body TEXT NOT NULL,
	sender_id TEXT NOT NULL,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_messages_sender ON messages (sender_id);
`

type MessageRepository struct {
	db *sql.DB
}

func NewMessageRepository(db *sql.DB) repository.MessageRepository {
	return &MessageRepository{db: db}
}

func (r *MessageRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createMessagesTable); err != nil {
		return fmt.Errorf("create messages table: %w", err)
	}
	return nil
}

func (r *MessageRepository) Create(ctx context.Context, message *domain.Message) error {
	now := time.Now().UTC()
	if message.CreatedAt.IsZero() {
		message.CreatedAt = now
	}
	message.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, `
INSERT INTO messages (id, body, sender_id, created_at, updated_at)
VALUES (?, ?, ?, ?, ?)`,
		message.ID,
		message.Body,
		message.SenderID,
		message.CreatedAt,
		message.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert message: %w", err)
	}
	return nil
}

func (r *MessageRepository) GetByID(ctx context.Context, id string) (*domain.Message, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, body, sender_id, created_at, updated_at
FROM messages
WHERE id = ?`,
		id,
	)
	return scanMessage(row)
}

func (r *MessageRepository) List(ctx context.Context) ([]domain.Message, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, body, sender_id, created_at, updated_at
FROM messages
ORDER BY created_at`,
	)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	defer rows.Close()
	return collectMessages(rows)
}

func (r *MessageRepository) ListBySender(ctx context.Context, senderID string) ([]domain.Message, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, body, sender_id, created_at, updated_at
FROM messages
WHERE sender_id = ?
ORDER BY created_at`,
		senderID,
	)
	if err != nil {
		return nil, fmt.Errorf("list messages by sender: %w", err)
	}
	defer rows.Close()
	return collectMessages(rows)
}

func (r *MessageRepository) Update(ctx context.Context, message *domain.Message) error {
	message.UpdatedAt = time.Now().UTC()

	res, err := r.db.ExecContext(ctx, `
UPDATE messages
SET body = ?, updated_at = ?
WHERE id = ?`,
		message.Body,
		message.UpdatedAt,
		message.ID,
	)
	if err != nil {
		return fmt.Errorf("update message: %w", err)
	}
	return requireAffected(res)
}

func (r *MessageRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM messages WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete message: %w", err)
	}
	return requireAffected(res)
}

func scanMessage(row interface {
	Scan(dest ...any) error
}) (*domain.Message, error) {
	var message domain.Message
	if err := row.Scan(
		&message.ID,
		&message.Body,
		&message.SenderID,
		&message.CreatedAt,
		&message.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scan message: %w", err)
	}
	return &message, nil
}

func collectMessages(rows *sql.Rows) ([]domain.Message, error) {
	var messages []domain.Message
	for rows.Next() {
		message, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		messages = append(messages, *message)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate messages: %w", err)
	}
	return messages, nil
}
