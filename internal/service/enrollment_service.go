package service

import (
	"context"
	"errors"
	"fmt"

	"eventhub/internal/domain"
	"eventhub/internal/repository"
)

var (
	// ErrEnrollmentNotFound indicates no enrollment matches the identifier.
	ErrEnrollmentNotFound = domain.NotFoundError("enrolled event not found")
	// ErrAlreadyEnrolled rejects a second enrollment of the same pair.
	ErrAlreadyEnrolled = domain.ConflictError("user already enrolled in this event")
	// ErrNotEnrolled rejects unenrolling a pair that is not enrolled.
	ErrNotEnrolled = domain.NotFoundError("user not enrolled in this event")
)

// EnrollmentService implements enrollment rules between users and events.
type EnrollmentService struct {
	enrollments repository.EnrollmentRepository
	users       repository.UserRepository
	events      repository.EventRepository
}

func NewEnrollmentService(enrollments repository.EnrollmentRepository, users repository.UserRepository, events repository.EventRepository) *EnrollmentService {
	return &EnrollmentService{enrollments: enrollments, users: users, events: events}
}

func (s *EnrollmentService) List(ctx context.Context) ([]domain.Enrollment, error) {
	return s.enrollments.List(ctx)
}

func (s *EnrollmentService) GetByID(ctx context.Context, id string) (*domain.Enrollment, error) {
	if !domain.ValidID(id) {
		return nil, domain.ErrMalformedID
	}
	enrollment, err := s.enrollments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrEnrollmentNotFound
		}
		return nil, err
	}
	return enrollment, nil
}

// Check reports whether the user is enrolled in the event.
func (s *EnrollmentService) Check(ctx context.Context, eventID, userID string) (bool, error) {
	_, err := s.enrollments.Find(ctx, userID, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// ListByCreator returns enrollments into events authored by the given user.
func (s *EnrollmentService) ListByCreator(ctx context.Context, authorID string) ([]domain.Enrollment, error) {
	return s.enrollments.ListByEventAuthor(ctx, authorID)
}

func (s *EnrollmentService) ListByUser(ctx context.Context, userID string) ([]domain.Enrollment, error) {
	if !domain.ValidID(userID) {
		return nil, domain.ErrMalformedID
	}
	return s.enrollments.ListByUser(ctx, userID)
}

// Enroll adds the user to the event. Both must exist and the pair must not
// already be enrolled.
func (s *EnrollmentService) Enroll(ctx context.Context, userID, eventID string) (*domain.Enrollment, error) {
	if !domain.ValidID(userID) || !domain.ValidID(eventID) {
		return nil, domain.ErrMalformedID
	}

	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if _, err := s.events.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	if _, err := s.enrollments.Find(ctx, userID, eventID); err == nil {
		return nil, ErrAlreadyEnrolled
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	enrollment := &domain.Enrollment{
		ID:      domain.NewID(),
		UserID:  userID,
		EventID: eventID,
	}
	if err := s.enrollments.Create(ctx, enrollment); err != nil {
		return nil, fmt.Errorf("create enrollment: %w", err)
	}
	return enrollment, nil
}

// Unenroll removes the user from the event and returns the removed record.
func (s *EnrollmentService) Unenroll(ctx context.Context, userID, eventID string) (*domain.Enrollment, error) {
	if !domain.ValidID(userID) || !domain.ValidID(eventID) {
		return nil, domain.ErrMalformedID
	}

	enrollment, err := s.enrollments.Find(ctx, userID, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrNotEnrolled
		}
		return nil, err
	}

	if err := s.enrollments.Delete(ctx, enrollment.ID); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("delete enrollment: %w", err)
	}
	return enrollment, nil
}

// CountByEvent returns the number of users enrolled in the event.
func (s *EnrollmentService) CountByEvent(ctx context.Context, eventID string) (int32, error) {
	return s.enrollments.CountByEvent(ctx, eventID)
}
