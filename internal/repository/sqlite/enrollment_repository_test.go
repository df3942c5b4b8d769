package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"eventhub/internal/domain"
)

func TestEnrollmentRepository_CreateFindDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewEnrollmentRepository(openTestDB(t))
	require.NoError(t, repo.Init(ctx))

	enrollment := &domain.Enrollment{
		ID:      domain.NewID(),
		UserID:  domain.NewID(),
		EventID: domain.NewID(),
	}
	require.NoError(t, repo.Create(ctx, enrollment))

	found, err := repo.Find(ctx, enrollment.UserID, enrollment.EventID)
	require.NoError(t, err)
	require.Equal(t, enrollment.ID, found.ID)

	_, err = repo.Find(ctx, enrollment.UserID, domain.NewID())
	require.ErrorIs(t, err, domain.ErrNotFound)

	byID, err := repo.GetByID(ctx, enrollment.ID)
	require.NoError(t, err)
	require.Equal(t, enrollment.UserID, byID.UserID)

	require.NoError(t, repo.Delete(ctx, enrollment.ID))
	require.ErrorIs(t, repo.Delete(ctx, enrollment.ID), domain.ErrNotFound)
}

func TestEnrollmentRepository_Listings(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	repo := NewEnrollmentRepository(db)
	events := NewEventRepository(db)
	require.NoError(t, repo.Init(ctx))
	require.NoError(t, events.Init(ctx))

	author := domain.NewID()
	authored := testEvent(author, "Authored Event", "technology")
	other := testEvent(domain.NewID(), "Other Event", "music")
	require.NoError(t, events.Create(ctx, authored))
	require.NoError(t, events.Create(ctx, other))

	alice := domain.NewID()
	bob := domain.NewID()
	for _, e := range []*domain.Enrollment{
		{ID: domain.NewID(), UserID: alice, EventID: authored.ID},
		{ID: domain.NewID(), UserID: bob, EventID: authored.ID},
		{ID: domain.NewID(), UserID: alice, EventID: other.ID},
	} {
		require.NoError(t, repo.Create(ctx, e))
	}

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)

	byUser, err := repo.ListByUser(ctx, alice)
	require.NoError(t, err)
	require.Len(t, byUser, 2)

	byAuthor, err := repo.ListByEventAuthor(ctx, author)
	require.NoError(t, err)
	require.Len(t, byAuthor, 2)
	for _, e := range byAuthor {
		require.Equal(t, authored.ID, e.EventID)
	}

	count, err := repo.CountByEvent(ctx, authored.ID)
	require.NoError(t, err)
	require.Equal(t, int32(2), count)

	require.NoError(t, repo.DeleteAll(ctx))
	all, err = repo.List(ctx)
	require.NoError(t, err)
	require.Empty(t, all)
}
