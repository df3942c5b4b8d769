package domain

import "time"

// Event represents a listed happening users can enroll in.
type Event struct {
	ID             string
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
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Enrollment records a user's attendance in an event.
type Enrollment struct {
	ID        string
	UserID    string
	EventID   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Message is a note left by a user for the platform operators.
type Message struct {
	ID        string
	Body      string
	SenderID  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
