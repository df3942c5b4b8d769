package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"eventhub/internal/domain"
)

func TestMessageService_CreateAndList(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos(t)
	svc := NewMessageService(repos.messages)

	sender := domain.NewID()
	message, err := svc.Create(ctx, "hello there", sender)
	require.NoError(t, err)
	require.True(t, domain.ValidID(message.ID))
	require.Equal(t, sender, message.SenderID)

	_, err = svc.Create(ctx, "from someone else", domain.NewID())
	require.NoError(t, err)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)

	mine, err := svc.ListBySender(ctx, sender)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.Equal(t, "hello there", mine[0].Body)

	_, err = svc.ListBySender(ctx, "bad")
	require.ErrorIs(t, err, domain.ErrMalformedID)
}

func TestMessageService_Update(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos(t)
	svc := NewMessageService(repos.messages)

	message, err := svc.Create(ctx, "original", domain.NewID())
	require.NoError(t, err)

	body := "edited"
	updated, err := svc.Update(ctx, message.ID, &body)
	require.NoError(t, err)
	require.Equal(t, "edited", updated.Body)

	// A nil body leaves the message untouched.
	same, err := svc.Update(ctx, message.ID, nil)
	require.NoError(t, err)
	require.Equal(t, "edited", same.Body)

	_, err = svc.Update(ctx, domain.NewID(), &body)
	require.ErrorIs(t, err, ErrMessageNotFound)
}

func TestMessageService_Delete(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos(t)
	svc := NewMessageService(repos.messages)

	message, err := svc.Create(ctx, "doomed", domain.NewID())
	require.NoError(t, err)

	deleted, err := svc.Delete(ctx, message.ID)
	require.NoError(t, err)
	require.Equal(t, message.ID, deleted.ID)

	_, err = svc.Delete(ctx, message.ID)
	require.ErrorIs(t, err, ErrMessageNotFound)

	_, err = svc.Delete(ctx, "bad")
	require.ErrorIs(t, err, domain.ErrMalformedID)
}
