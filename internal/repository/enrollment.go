package repository

import (
	"context"

	"eventhub/internal/domain"
)

// EnrollmentRepository defines persistence operations for Enrollment entities.
type EnrollmentRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, enrollment *domain.Enrollment) error
	GetByID(ctx context.Context, id string) (*domain.Enrollment, error)
	List(ctx context.Context) ([]domain.Enrollment, error)
	Find(ctx context.Context, userID, eventID string) (*domain.Enrollment, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Enrollment, error)
	ListByEventAuthor(ctx context.Context, authorID string) ([]domain.Enrollment, error)
	CountByEvent(ctx context.Context, eventID string) (int32, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}
