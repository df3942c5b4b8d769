package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"eventhub/internal/domain"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func testUser(email string) *domain.User {
	return &domain.User{
		ID:           domain.NewID(),
		Name:         "Test User",
		Email:        email,
		PasswordHash: "$2b$10$hash",
		Role:         domain.RoleUser,
		Bio:          "a short bio",
	}
}

func testEvent(authorID, title, category string) *domain.Event {
	return &domain.Event{
		ID:          domain.NewID(),
		Title:       title,
		Date:        "2026-10-12",
		Time:        "10:00",
		Location:    "Berlin",
		Category:    category,
		Description: "description for " + title,
		Image:       "https://images.example.com/e.jpg",
		Price:       "10",
		Capacity:    50,
		AuthorID:    authorID,
		Status:      "upcoming",
	}
}

func TestNullable(t *testing.T) {
	require.False(t, nullable("").Valid)
	v := nullable("x")
	require.True(t, v.Valid)
	require.Equal(t, "x", v.String)
}

func TestOpen_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "test.db")
	db, err := Open(path)
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, db.PingContext(context.Background()))
}
