package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"eventhub/internal/domain"
	"eventhub/internal/repository"
)

const createEnrollmentsTable = `
CREATE TABLE IF NOT EXISTS enrollments (
	id TEXT PRIMARY KEY,
	user_id TEXT NOT NULL,
	event_id TEXT NOT NULL,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_enrollments_user ON enrollments (user_id);
CREATE INDEX IF NOT EXISTS idx_enrollments_event ON enrollments (event_id);
`

type EnrollmentRepository struct {
	db *sql.DB
}

func NewEnrollmentRepository(db *sql.DB) repository.EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

func (r *EnrollmentRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createEnrollmentsTable); err != nil {
		return fmt.Errorf("create enrollments table: %w", err)
	}
	return nil
}

const selectEnrollmentColumns = `id, user_id, event_id, created_at, updated_at`

func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *domain.Enrollment) error {
	now := time.Now().UTC()
	if enrollment.CreatedAt.IsZero() {
		enrollment.CreatedAt = now
	}
	enrollment.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, `
INSERT INTO enrollments (id, user_id, event_id, created_at, updated_at)
VALUES (?, ?, ?, ?, ?)`,
		enrollment.ID,
		enrollment.UserID,
		enrollment.EventID,
		enrollment.CreatedAt,
		enrollment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert enrollment: %w", err)
	}
	return nil
}

func (r *EnrollmentRepository) GetByID(ctx context.Context, id string) (*domain.Enrollment, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT `+selectEnrollmentColumns+`
FROM enrollments
WHERE id = ?`,
		id,
	)
	return scanEnrollment(row)
}

func (r *EnrollmentRepository) List(ctx context.Context) ([]domain.Enrollment, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT `+selectEnrollmentColumns+`
FROM enrollments
ORDER BY created_at`,
	)
	if err != nil {
		return nil, fmt.Errorf("list enrollments: %w", err)
	}
	defer rows.Close()
	return collectEnrollments(rows)
}

func (r *EnrollmentRepository) Find(ctx context.Context, userID, eventID string) (*domain.Enrollment, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT `+selectEnrollmentColumns+`
FROM enrollments
WHERE user_id = ? AND event_id = ?`,
		userID, eventID,
	)
	return scanEnrollment(row)
}

func (r *EnrollmentRepository) ListByUser(ctx context.Context, userID string) ([]domain.Enrollment, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT `+selectEnrollmentColumns+`
FROM enrollments
WHERE user_id = ?
ORDER BY created_at`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list enrollments by user: %w", err)
	}
	defer rows.Close()
	return collectEnrollments(rows)
}

func (r *EnrollmentRepository) ListByEventAuthor(ctx context.Context, authorID string) ([]domain.Enrollment, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT e.id, e.user_id, e.event_id, e.created_at, e.updated_at
FROM enrollments e
JOIN events ev ON ev.id = e.event_id
WHERE ev.author_id = ?
ORDER BY e.created_at`,
		authorID,
	)
	if err != nil {
		return nil, fmt.Errorf("list enrollments by event author: %w", err)
	}
	defer rows.Close()
	return collectEnrollments(rows)
}

func (r *EnrollmentRepository) CountByEvent(ctx context.Context, eventID string) (int32, error) {
	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM enrollments WHERE event_id = ?`, eventID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count enrollments: %w", err)
	}
	return count, nil
}

func (r *EnrollmentRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM enrollments WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete enrollment: %w", err)
	}
	return requireAffected(res)
}

func (r *EnrollmentRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM enrollments`); err != nil {
		return fmt.Errorf("delete enrollments: %w", err)
	}
	return nil
}

func scanEnrollment(row interface {
	Scan(dest ...any) error
}) (*domain.Enrollment, error) {
	var enrollment domain.Enrollment
	if err := row.Scan(
		&enrollment.ID,
		&enrollment.UserID,
		&enrollment.EventID,
		&enrollment.CreatedAt,
		&enrollment.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scan enrollment: %w", err)
	}
	return &enrollment, nil
}

func collectEnrollments(rows *sql.Rows) ([]domain.Enrollment, error) {
	var enrollments []domain.Enrollment
	for rows.Next() {
		enrollment, err := scanEnrollment(rows)
		if err != nil {
			return nil, err
		}
		enrollments = append(enrollments, *enrollment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate enrollments: %w", err)
	}
	return enrollments, nil
}
