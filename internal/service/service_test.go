package service

import (
	"context"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"eventhub/internal/auth"
	"eventhub/internal/repository"
	"eventhub/internal/repository/sqlite"
)

type testRepos struct {
	users       repository.UserRepository
	events      repository.EventRepository
	enrollments repository.EnrollmentRepository
	messages    repository.MessageRepository
}

func newTestRepos(t *testing.T) testRepos {
	t.Helper()
	ctx := context.Background()

	db, err := sqlite.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repos := testRepos{
		users:       sqlite.NewUserRepository(db),
		events:      sqlite.NewEventRepository(db),
		enrollments: sqlite.NewEnrollmentRepository(db),
		messages:    sqlite.NewMessageRepository(db),
	}
	require.NoError(t, repos.users.Init(ctx))
	require.NoError(t, repos.events.Init(ctx))
	require.NoError(t, repos.enrollments.Init(ctx))
	require.NoError(t, repos.messages.Init(ctx))
	return repos
}

func testCodec(t *testing.T) *auth.Codec {
	t.Helper()
	codec, err := auth.NewCodec("test-secret", time.Hour)
	require.NoError(t, err)
	return codec
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
