package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"eventhub/internal/domain"
	"eventhub/internal/repository"
)

// SeedService bulk-loads fixture data from JSON files in the configured data
// directory, replacing whatever is stored for the entity being seeded.
type SeedService struct {
	users       repository.UserRepository
	events      repository.EventRepository
	enrollments repository.EnrollmentRepository
	dataDir     string
	logger      *logrus.Logger
}

func NewSeedService(users repository.UserRepository, events repository.EventRepository, enrollments repository.EnrollmentRepository, dataDir string, logger *logrus.Logger) *SeedService {
	return &SeedService{
		users:       users,
		events:      events,
		enrollments: enrollments,
		dataDir:     dataDir,
		logger:      logger,
	}
}

type seedUser struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Bio      string `json:"bio"`
}

type seedEvent struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Date           string   `json:"date"`
	Time           string   `json:"time"`
	Location       string   `json:"location"`
	Category       string   `json:"category"`
	Description    string   `json:"description"`
	Image          string   `json:"image"`
	Price          string   `json:"price"`
	Capacity       int32    `json:"capacity"`
	AuthorID       string   `json:"authorId"`
	AdditionalInfo []string `json:"additionalInfo"`
	Status         string   `json:"status"`
}

type seedEnrollment struct {
	ID      string `json:"id"`
	UserID  string `json:"userId"`
	EventID string `json:"eventId"`
}

// SeedUsers replaces all users with the fixtures from users.json, hashing
// each fixture password.
func (s *SeedService) SeedUsers(ctx context.Context) error {
	var fixtures []seedUser
	if err := s.load("users.json", &fixtures); err != nil {
		return err
	}

	if err := s.users.DeleteAll(ctx); err != nil {
		return err
	}
	for _, fixture := range fixtures {
		hash, err := bcrypt.GenerateFromPassword([]byte(fixture.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash seed password: %w", err)
		}
		user := &domain.User{
			ID:           seedID(fixture.ID),
			Name:         fixture.Name,
			Email:        fixture.Email,
			PasswordHash: string(hash),
			Role:         domain.ParseRole(fixture.Role),
			Bio:          fixture.Bio,
		}
		if err := s.users.Create(ctx, user); err != nil {
			return fmt.Errorf("seed user %s: %w", fixture.Email, err)
		}
	}
	s.logger.WithField("count", len(fixtures)).Info("seeded users")
	return nil
}

// SeedEvents replaces all events with the fixtures from events.json.
func (s *SeedService) SeedEvents(ctx context.Context) error {
	var fixtures []seedEvent
	if err := s.load("events.json", &fixtures); err != nil {
		return err
	}

	if err := s.events.DeleteAll(ctx); err != nil {
		return err
	}
	for _, fixture := range fixtures {
		event := &domain.Event{
			ID:             seedID(fixture.ID),
			Title:          fixture.Title,
			Date:           fixture.Date,
			Time:           fixture.Time,
			Location:       fixture.Location,
			Category:       fixture.Category,
			Description:    fixture.Description,
			Image:          fixture.Image,
			Price:          fixture.Price,
			Capacity:       fixture.Capacity,
			AuthorID:       fixture.AuthorID,
			AdditionalInfo: fixture.AdditionalInfo,
			Status:         fixture.Status,
		}
		if err := s.events.Create(ctx, event); err != nil {
			return fmt.Errorf("seed event %s: %w", fixture.Title, err)
		}
	}
	s.logger.WithField("count", len(fixtures)).Info("seeded events")
	return nil
}

// SeedEnrollments replaces all enrollments with the fixtures from
// enrolled.json.
func (s *SeedService) SeedEnrollments(ctx context.Context) error {
	var fixtures []seedEnrollment
	if err := s.load("enrolled.json", &fixtures); err != nil {
		return err
	}

	if err := s.enrollments.DeleteAll(ctx); err != nil {
		return err
	}
	for _, fixture := range fixtures {
		enrollment := &domain.Enrollment{
			ID:      seedID(fixture.ID),
			UserID:  fixture.UserID,
			EventID: fixture.EventID,
		}
		if err := s.enrollments.Create(ctx, enrollment); err != nil {
			return fmt.Errorf("seed enrollment: %w", err)
		}
	}
	s.logger.WithField("count", len(fixtures)).Info("seeded enrollments")
	return nil
}

func (s *SeedService) load(name string, out any) error {
	raw, err := os.ReadFile(filepath.Join(s.dataDir, name))
	if err != nil {
		return fmt.Errorf("read seed file %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode seed file %s: %w", name, err)
	}
	return nil
}

// seedID keeps fixture-declared identifiers so enrollments can reference
// users and events across files; anything malformed gets a fresh one.
func seedID(id string) string {
	if domain.ValidID(id) {
		return id
	}
	return domain.NewID()
}
