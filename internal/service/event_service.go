package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"eventhub/internal/domain"
	"eventhub/internal/repository"
)

// ErrEventNotFound indicates no event matches the given identifier.
var ErrEventNotFound = domain.NotFoundError("event not found")

// EventCreate carries the fields of a new event.
type EventCreate struct {
	Title          string
	Date           string
	Time           string
	Location       string
	Category       string
	Description    string
	Image          string
	Price          string
	Capacity       int32
	AuthorID       string
	AdditionalInfo []string
	Status         string
}

// EventUpdate carries a partial event update; nil fields are left untouched.
type EventUpdate struct {
	ID             string
	Title          *string
	Date           *string
	Time           *string
	Location       *string
	Category       *string
	Description    *string
	Image          *string
	Price          *string
	Capacity       *int32
	AdditionalInfo *[]string
	Status         *string
}

// EventService implements event listing and management rules.
type EventService struct {
	events repository.EventRepository
}

func NewEventService(events repository.EventRepository) *EventService {
	return &EventService{events: events}
}

// GetByID validates the identifier format before touching the store.
func (s *EventService) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	if !domain.ValidID(id) {
		return nil, domain.ErrMalformedID
	}
	event, err := s.events.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return event, nil
}

// List returns one page of events matching the search and category filters,
// plus the page math. The total counts every stored event, not just the
// filtered set.
func (s *EventService) List(ctx context.Context, page, limit int32, search, category string) ([]domain.Event, domain.PageInfo, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	events, err := s.events.List(ctx, repository.EventFilter{
		Offset:   (page - 1) * limit,
		Limit:    limit,
		Search:   search,
		Category: category,
	})
	if err != nil {
		return nil, domain.PageInfo{}, err
	}
	count, err := s.events.Count(ctx)
	if err != nil {
		return nil, domain.PageInfo{}, err
	}
	return events, domain.NewPageInfo(count, page, limit), nil
}

// Categories returns the distinct event categories.
func (s *EventService) Categories(ctx context.Context) ([]string, error) {
	return s.events.Categories(ctx)
}

func (s *EventService) ListByAuthor(ctx context.Context, authorID string) ([]domain.Event, error) {
	if !domain.ValidID(authorID) {
		return nil, domain.ErrMalformedID
	}
	return s.events.ListByAuthor(ctx, authorID)
}

// Create stores a new event. Categories are normalized to lower case so the
// category filter stays consistent.
func (s *EventService) Create(ctx context.Context, input EventCreate) (*domain.Event, error) {
	event := &domain.Event{
		ID:             domain.NewID(),
		Title:          input.Title,
		Date:           input.Date,
		Time:           input.Time,
		Location:       input.Location,
		Category:       strings.ToLower(input.Category),
		Description:    input.Description,
		Image:          input.Image,
		Price:          input.Price,
		Capacity:       input.Capacity,
		AuthorID:       input.AuthorID,
		AdditionalInfo: input.AdditionalInfo,
		Status:         input.Status,
	}
	if err := s.events.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return event, nil
}

// Update applies a partial update and returns the stored result.
func (s *EventService) Update(ctx context.Context, update EventUpdate) (*domain.Event, error) {
	event, err := s.GetByID(ctx, update.ID)
	if err != nil {
		return nil, err
	}

	if update.Title != nil {
		event.Title = *update.Title
	}
	if update.Date != nil {
		event.Date = *update.Date
	}
	if update.Time != nil {
		event.Time = *update.Time
	}
	if update.Location != nil {
		event.Location = *update.Location
	}
	if update.Category != nil {
		event.Category = strings.ToLower(*update.Category)
	}
	if update.Description != nil {
		event.Description = *update.Description
	}
	if update.Image != nil {
		event.Image = *update.Image
	}
	if update.Price != nil {
		event.Price = *update.Price
	}
	if update.Capacity != nil {
		event.Capacity = *update.Capacity
	}
	if update.AdditionalInfo != nil {
		event.AdditionalInfo = *update.AdditionalInfo
	}
	if update.Status != nil {
		event.Status = *update.Status
	}

	if err := s.events.Update(ctx, event); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("update event: %w", err)
	}
	return event, nil
}

// Delete removes an event and returns the deleted record.
func (s *EventService) Delete(ctx context.Context, id string) (*domain.Event, error) {
	event, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.events.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("delete event: %w", err)
	}
	return event, nil
}
