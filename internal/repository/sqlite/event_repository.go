package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"eventhub/internal/domain"
	"eventhub/internal/repository"
)

const createEventsTable = `
CREATE TABLE IF NOT EXISTS events (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	date TEXT NOT NULL,
	time TEXT NOT NULL,
	location TEXT NOT NULL,
	category TEXT NOT NULL,
	description TEXT NOT NULL,
	image TEXT NOT NULL,
	price TEXT NOT NULL,
	capacity INTEGER NOT NULL,
	author_id TEXT NOT NULL,
	additional_info TEXT,
	status TEXT,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);
`

type EventRepository struct {
	db *sql.DB
}

func NewEventRepository(db *sql.DB) repository.EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createEventsTable); err != nil {
		return fmt.Errorf("create events table: %w", err)
	}
	return nil
}

const selectEventColumns = `id, title, date, time, location, category, description, image, price, capacity, author_id, additional_info, status, created_at, updated_at`

func (r *EventRepository) Create(ctx context.Context, event *domain.Event) error {
	now := time.Now().UTC()
	if event.CreatedAt.IsZero() {
		event.CreatedAt = now
	}
	event.UpdatedAt = now

	info, err := encodeAdditionalInfo(event.AdditionalInfo)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
INSERT INTO events (id, title, date, time, location, category, description, image, price, capacity, author_id, additional_info, status, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		event.ID,
		event.Title,
		event.Date,
		event.Time,
		event.Location,
		event.Category,
		event.Description,
		event.Image,
		event.Price,
		event.Capacity,
		event.AuthorID,
		info,
		nullable(event.Status),
		event.CreatedAt,
		event.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT `+selectEventColumns+`
FROM events
WHERE id = ?`,
		id,
	)
	return scanEvent(row)
}

func (r *EventRepository) List(ctx context.Context, filter repository.EventFilter) ([]domain.Event, error) {
	search := "%" + strings.ToLower(filter.Search) + "%"
	category := "%" + strings.ToLower(filter.Category) + "%"

	rows, err := r.db.QueryContext(ctx, `
SELECT `+selectEventColumns+`
FROM events
WHERE (LOWER(title) LIKE ?
	OR LOWER(description) LIKE ?
	OR LOWER(location) LIKE ?
	OR LOWER(category) LIKE ?)
	AND LOWER(category) LIKE ?
ORDER BY created_at
LIMIT ? OFFSET ?`,
		search, search, search, search,
		category,
		filter.Limit, filter.Offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()
	return collectEvents(rows)
}

func (r *EventRepository) ListByAuthor(ctx context.Context, authorID string) ([]domain.Event, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT `+selectEventColumns+`
FROM events
WHERE author_id = ?
ORDER BY created_at`,
		authorID,
	)
	if err != nil {
		return nil, fmt.Errorf("list events by author: %w", err)
	}
	defer rows.Close()
	return collectEvents(rows)
}

func (r *EventRepository) Count(ctx context.Context) (int32, error) {
	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM events`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count events: %w", err)
	}
	return count, nil
}

func (r *EventRepository) Categories(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT DISTINCT category FROM events ORDER BY category`)
	if err != nil {
		return nil, fmt.Errorf("list event categories: %w", err)
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var category string
		if err := rows.Scan(&category); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}
	return categories, nil
}

func (r *EventRepository) Update(ctx context.Context, event *domain.Event) error {
	event.UpdatedAt = time.Now().UTC()

	info, err := encodeAdditionalInfo(event.AdditionalInfo)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, `
UPDATE events
SET title = ?, date = ?, time = ?, location = ?, category = ?, description = ?, image = ?, price = ?, capacity = ?, additional_info = ?, status = ?, updated_at = ?
WHERE id = ?`,
		event.Title,
		event.Date,
		event.Time,
		event.Location,
		event.Category,
		event.Description,
		event.Image,
		event.Price,
		event.Capacity,
		info,
		nullable(event.Status),
		event.UpdatedAt,
		event.ID,
	)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	return requireAffected(res)
}

func (r *EventRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	return requireAffected(res)
}

func (r *EventRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM events`); err != nil {
		return fmt.Errorf("delete events: %w", err)
	}
	return nil
}

func encodeAdditionalInfo(info []string) (sql.NullString, error) {
	if len(info) == 0 {
		return sql.NullString{}, nil
	}
	raw, err := json.Marshal(info)
	if err != nil {
		return sql.NullString{}, fmt.Errorf("encode additional info: %w", err)
	}
	return sql.NullString{String: string(raw), Valid: true}, nil
}

func scanEvent(row interface {
	Scan(dest ...any) error
}) (*domain.Event, error) {
	var (
		event  domain.Event
		info   sql.NullString
		status sql.NullString
	)
	if err := row.Scan(
		&event.ID,
		&event.Title,
		&event.Date,
		&event.Time,
		&event.Location,
		&event.Category,
		&event.Description,
		&event.Image,
		&event.Price,
		&event.Capacity,
		&event.AuthorID,
		&info,
		&status,
		&event.CreatedAt,
		&event.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}
	if info.Valid {
		if err := json.Unmarshal([]byte(info.String), &event.AdditionalInfo); err != nil {
			return nil, fmt.Errorf("decode additional info: %w", err)
		}
	}
	event.Status = status.String
	return &event, nil
}

func collectEvents(rows *sql.Rows) ([]domain.Event, error) {
	var events []domain.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, *event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}
	return events, nil
}
