package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"eventhub/internal/domain"
)

func enrollmentFixture(t *testing.T) (*EnrollmentService, *domain.User, *domain.Event) {
	t.Helper()
	repos := newTestRepos(t)

	users := NewUserService(repos.users, testCodec(t))
	events := NewEventService(repos.events)
	svc := NewEnrollmentService(repos.enrollments, repos.users, repos.events)

	user := registerUser(t, users, "mia@example.com", "USER")
	event := createEvent(t, events, "Go Workshop", "technology", domain.NewID())
	return svc, user, event
}

func TestEnrollmentService_Enroll(t *testing.T) {
	ctx := context.Background()
	svc, user, event := enrollmentFixture(t)

	enrollment, err := svc.Enroll(ctx, user.ID, event.ID)
	require.NoError(t, err)
	require.True(t, domain.ValidID(enrollment.ID))
	require.Equal(t, user.ID, enrollment.UserID)
	require.Equal(t, event.ID, enrollment.EventID)

	enrolled, err := svc.Check(ctx, event.ID, user.ID)
	require.NoError(t, err)
	require.True(t, enrolled)
}

func TestEnrollmentService_Enroll_Failures(t *testing.T) {
	ctx := context.Background()
	svc, user, event := enrollmentFixture(t)

	_, err := svc.Enroll(ctx, "bad", event.ID)
	require.ErrorIs(t, err, domain.ErrMalformedID)

	_, err = svc.Enroll(ctx, domain.NewID(), event.ID)
	require.ErrorIs(t, err, ErrUserNotFound)

	_, err = svc.Enroll(ctx, user.ID, domain.NewID())
	require.ErrorIs(t, err, ErrEventNotFound)

	_, err = svc.Enroll(ctx, user.ID, event.ID)
	require.NoError(t, err)
	_, err = svc.Enroll(ctx, user.ID, event.ID)
	require.ErrorIs(t, err, ErrAlreadyEnrolled)
	require.True(t, domain.HasCode(err, domain.CodeConflict))
}

func TestEnrollmentService_Unenroll(t *testing.T) {
	ctx := context.Background()
	svc, user, event := enrollmentFixture(t)

	created, err := svc.Enroll(ctx, user.ID, event.ID)
	require.NoError(t, err)

	removed, err := svc.Unenroll(ctx, user.ID, event.ID)
	require.NoError(t, err)
	require.Equal(t, created.ID, removed.ID)

	enrolled, err := svc.Check(ctx, event.ID, user.ID)
	require.NoError(t, err)
	require.False(t, enrolled)

	_, err = svc.Unenroll(ctx, user.ID, event.ID)
	require.ErrorIs(t, err, ErrNotEnrolled)
	require.True(t, domain.HasCode(err, domain.CodeNotFound))
}

func TestEnrollmentService_GetByID(t *testing.T) {
	ctx := context.Background()
	svc, user, event := enrollmentFixture(t)

	created, err := svc.Enroll(ctx, user.ID, event.ID)
	require.NoError(t, err)

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created.UserID, got.UserID)

	_, err = svc.GetByID(ctx, "bad")
	require.ErrorIs(t, err, domain.ErrMalformedID)

	_, err = svc.GetByID(ctx, domain.NewID())
	require.ErrorIs(t, err, ErrEnrollmentNotFound)
}

func TestEnrollmentService_Listings(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos(t)

	users := NewUserService(repos.users, testCodec(t))
	events := NewEventService(repos.events)
	svc := NewEnrollmentService(repos.enrollments, repos.users, repos.events)

	author := registerUser(t, users, "ava@example.com", "ADMIN")
	mia := registerUser(t, users, "mia@example.com", "USER")
	liam := registerUser(t, users, "liam@example.com", "USER")

	authored := createEvent(t, events, "Authored", "technology", author.ID)
	other := createEvent(t, events, "Other", "music", liam.ID)

	_, err := svc.Enroll(ctx, mia.ID, authored.ID)
	require.NoError(t, err)
	_, err = svc.Enroll(ctx, liam.ID, authored.ID)
	require.NoError(t, err)
	_, err = svc.Enroll(ctx, mia.ID, other.ID)
	require.NoError(t, err)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)

	byUser, err := svc.ListByUser(ctx, mia.ID)
	require.NoError(t, err)
	require.Len(t, byUser, 2)

	_, err = svc.ListByUser(ctx, "bad")
	require.ErrorIs(t, err, domain.ErrMalformedID)

	byCreator, err := svc.ListByCreator(ctx, author.ID)
	require.NoError(t, err)
	require.Len(t, byCreator, 2)

	count, err := svc.CountByEvent(ctx, authored.ID)
	require.NoError(t, err)
	require.Equal(t, int32(2), count)
}
