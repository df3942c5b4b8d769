package repository

import (
	"context"

	"eventhub/internal/domain"
)

// MessageRepository defines persistence operations for Message entities.
type MessageRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, message *domain.Message) error
	GetByID(ctx context.Context, id string) (*domain.Message, error)
	List(ctx context.Context) ([]domain.Message, error)
	ListBySender(ctx context.Context, senderID string) ([]domain.Message, error)
	Update(ctx context.Context, message *domain.Message) error
	Delete(ctx context.Context, id string) error
}
