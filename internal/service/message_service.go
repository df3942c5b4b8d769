package service

import (
	"context"
	"errors"
	"fmt"

	"eventhub/internal/domain"
	"eventhub/internal/repository"
)

// ErrMessageNotFound indicates no message matches the identifier.
var ErrMessageNotFound = domain.NotFoundError("message not found")

// MessageService implements the auxiliary message board rules.
type MessageService struct {
	messages repository.MessageRepository
}

func NewMessageService(messages repository.MessageRepository) *MessageService {
	return &MessageService{messages: messages}
}

func (s *MessageService) List(ctx context.Context) ([]domain.Message, error) {
	return s.messages.List(ctx)
}

func (s *MessageService) ListBySender(ctx context.Context, senderID string) ([]domain.Message, error) {
	if !domain.ValidID(senderID) {
		return nil, domain.ErrMalformedID
	}
	return s.messages.ListBySender(ctx, senderID)
}

func (s *MessageService) Create(ctx context.Context, body, senderID string) (*domain.Message, error) {
	message := &domain.Message{
		ID:       domain.NewID(),
		Body:     body,
		SenderID: senderID,
	}
	if err := s.messages.Create(ctx, message); err != nil {
		return nil, fmt.Errorf("create message: %w", err)
	}
	return message, nil
}

// Update replaces the message body when one is supplied.
func (s *MessageService) Update(ctx context.Context, id string, body *string) (*domain.Message, error) {
	message, err := s.messages.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrMessageNotFound
		}
		return nil, err
	}

	if body != nil {
		message.Body = *body
	}
	if err := s.messages.Update(ctx, message); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrMessageNotFound
		}
		return nil, fmt.Errorf("update message: %w", err)
	}
	return message, nil
}

// Delete removes a message and returns the deleted record.
func (s *MessageService) Delete(ctx context.Context, id string) (*domain.Message, error) {
	if !domain.ValidID(id) {
		return nil, domain.ErrMalformedID
	}
	message, err := s.messages.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrMessageNotFound
		}
		return nil, err
	}
	if err := s.messages.Delete(ctx, id); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("delete message: %w", err)
	}
	return message, nil
}
