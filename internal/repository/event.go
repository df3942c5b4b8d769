package repository

import (
	"context"

	"eventhub/internal/domain"
)

// EventFilter narrows an event listing. Search matches case-insensitively
// against title, description, location and category; Category additionally
// restricts the category field on its own.
type EventFilter struct {
	Offset   int32
	Limit    int32
	Search   string
	Category string
}

// EventRepository defines persistence operations for Event entities.
type EventRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, event *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context, filter EventFilter) ([]domain.Event, error)
	ListByAuthor(ctx context.Context, authorID string) ([]domain.Event, error)
	Count(ctx context.Context) (int32, error)
	Categories(ctx context.Context) ([]string, error)
	Update(ctx context.Context, event *domain.Event) error
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}
