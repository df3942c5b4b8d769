package graph

import (
	"time"

	"eventhub/internal/auth"
	"eventhub/internal/service"
)

// Resolver is the root resolver behind the schema. Query and Mutation
// methods live in the per-entity files next to their output resolvers;
// protected operations are wrapped with the auth gate decorators at the
// call site so the authenticate-then-authorize order is explicit.
type Resolver struct {
	gate        *auth.Gate
	users       *service.UserService
	events      *service.EventService
	enrollments *service.EnrollmentService
	messages    *service.MessageService
	seed        *service.SeedService
}

func NewResolver(
	gate *auth.Gate,
	users *service.UserService,
	events *service.EventService,
	enrollments *service.EnrollmentService,
	messages *service.MessageService,
	seed *service.SeedService,
) *Resolver {
	return &Resolver{
		gate:        gate,
		users:       users,
		events:      events,
		enrollments: enrollments,
		messages:    messages,
		seed:        seed,
	}
}

type noArgs = struct{}

func timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func pageOr(v *int32, fallback int32) int32 {
	if v == nil {
		return fallback
	}
	return *v
}

func stringOr(v *string, fallback string) string {
	if v == nil {
		return fallback
	}
	return *v
}
