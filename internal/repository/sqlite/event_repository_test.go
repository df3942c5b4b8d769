package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"eventhub/internal/domain"
	"eventhub/internal/repository"
)

func TestEventRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewEventRepository(openTestDB(t))
	require.NoError(t, repo.Init(ctx))

	event := testEvent(domain.NewID(), "Go Workshop", "technology")
	event.AdditionalInfo = []string{"Bring a laptop", "Lunch included"}
	require.NoError(t, repo.Create(ctx, event))

	got, err := repo.GetByID(ctx, event.ID)
	require.NoError(t, err)
	require.Equal(t, event.Title, got.Title)
	require.Equal(t, event.AdditionalInfo, got.AdditionalInfo)
	require.Equal(t, "upcoming", got.Status)

	_, err = repo.GetByID(ctx, domain.NewID())
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEventRepository_NullableColumns(t *testing.T) {
	ctx := context.Background()
	repo := NewEventRepository(openTestDB(t))
	require.NoError(t, repo.Init(ctx))

	event := testEvent(domain.NewID(), "Bare Event", "misc")
	event.AdditionalInfo = nil
	event.Status = ""
	require.NoError(t, repo.Create(ctx, event))

	got, err := repo.GetByID(ctx, event.ID)
	require.NoError(t, err)
	require.Nil(t, got.AdditionalInfo)
	require.Empty(t, got.Status)
}

func TestEventRepository_ListSearchAndFilter(t *testing.T) {
	ctx := context.Background()
	repo := NewEventRepository(openTestDB(t))
	require.NoError(t, repo.Init(ctx))

	author := domain.NewID()
	require.NoError(t, repo.Create(ctx, testEvent(author, "Go Workshop", "technology")))
	require.NoError(t, repo.Create(ctx, testEvent(author, "Jazz Night", "music")))
	require.NoError(t, repo.Create(ctx, testEvent(domain.NewID(), "Tech Mixer", "business")))

	all, err := repo.List(ctx, repository.EventFilter{Limit: 10})
	require.NoError(t, err)
	require.Len(t, all, 3)

	// Search matches case-insensitively across title, description, location
	// and category.
	matched, err := repo.List(ctx, repository.EventFilter{Limit: 10, Search: "jazz"})
	require.NoError(t, err)
	require.Len(t, matched, 1)
	require.Equal(t, "Jazz Night", matched[0].Title)

	byCategory, err := repo.List(ctx, repository.EventFilter{Limit: 10, Category: "technology"})
	require.NoError(t, err)
	require.Len(t, byCategory, 1)
	require.Equal(t, "Go Workshop", byCategory[0].Title)

	// "tech" search hits both the technology category and the Tech Mixer title.
	loose, err := repo.List(ctx, repository.EventFilter{Limit: 10, Search: "tech"})
	require.NoError(t, err)
	require.Len(t, loose, 2)

	paged, err := repo.List(ctx, repository.EventFilter{Limit: 2, Offset: 2})
	require.NoError(t, err)
	require.Len(t, paged, 1)

	byAuthor, err := repo.ListByAuthor(ctx, author)
	require.NoError(t, err)
	require.Len(t, byAuthor, 2)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, int32(3), count)
}

func TestEventRepository_Categories(t *testing.T) {
	ctx := context.Background()
	repo := NewEventRepository(openTestDB(t))
	require.NoError(t, repo.Init(ctx))

	require.NoError(t, repo.Create(ctx, testEvent(domain.NewID(), "A", "music")))
	require.NoError(t, repo.Create(ctx, testEvent(domain.NewID(), "B", "music")))
	require.NoError(t, repo.Create(ctx, testEvent(domain.NewID(), "C", "art")))

	categories, err := repo.Categories(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"art", "music"}, categories)
}

func TestEventRepository_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewEventRepository(openTestDB(t))
	require.NoError(t, repo.Init(ctx))

	event := testEvent(domain.NewID(), "Original", "art")
	require.NoError(t, repo.Create(ctx, event))

	event.Title = "Renamed"
	event.AdditionalInfo = []string{"new info"}
	require.NoError(t, repo.Update(ctx, event))

	got, err := repo.GetByID(ctx, event.ID)
	require.NoError(t, err)
	require.Equal(t, "Renamed", got.Title)
	require.Equal(t, []string{"new info"}, got.AdditionalInfo)

	require.NoError(t, repo.Delete(ctx, event.ID))
	require.ErrorIs(t, repo.Delete(ctx, event.ID), domain.ErrNotFound)
}
