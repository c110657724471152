package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"event-booking/internal/data/entity"
	"event-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type EventRepository interface {
	Create(ctx context.Context, event *entity.Event) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Event, error)
	FindByName(ctx context.Context, name string) (*entity.Event, error)
	FindUpcoming(ctx context.Context, from time.Time) ([]*entity.Event, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type eventRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewEventRepository(db database.PgxIface, log *zap.Logger) EventRepository {
	return &eventRepository{
		db:  db,
		log: log.With(zap.String("repository", "event")),
	}
}

const eventColumns = `id, name, venue, date_time, vendor, description, available_seats,
		created_at, updated_at, deleted_at`

func scanEvent(row pgx.Row) (*entity.Event, error) {
	var event entity.Event
	err := row.Scan(
		&event.ID,
		&event.Name,
		&event.Venue,
		&event.DateTime,
		&event.Vendor,
		&event.Description,
		&event.AvailableSeats,
		&event.CreatedAt,
		&event.UpdatedAt,
		&event.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (er *eventRepository) Create(ctx context.Context, event *entity.Event) error {
	query := `
		INSERT INTO events (id, name, venue, date_time, vendor, description,
		                    available_seats, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := er.db.Exec(ctx, query,
		event.ID,
		event.Name,
		event.Venue,
		event.DateTime,
		event.Vendor,
		event.Description,
		event.AvailableSeats,
		event.CreatedAt,
		event.UpdatedAt,
	)
	if err != nil {
		er.log.Error("Failed to create event",
			zap.Error(err),
			zap.String("name", event.Name),
		)
		return fmt.Errorf("create event %s: %w", event.Name, err)
	}

	return nil
}

func (er *eventRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1 AND deleted_at IS NULL`

	event, err := scanEvent(er.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		er.log.Error("Failed to find event by ID",
			zap.Error(err),
			zap.String("event_id", id.String()),
		)
		return nil, fmt.Errorf("find event by ID %s: %w", id.String(), err)
	}

	return event, nil
}

func (er *eventRepository) FindByName(ctx context.Context, name string) (*entity.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE name = $1 AND deleted_at IS NULL LIMIT 1`

	event, err := scanEvent(er.db.QueryRow(ctx, query, name))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find event by name %s: %w", name, err)
	}

	return event, nil
}

// FindUpcoming returns events starting at or after from, earliest first.
func (er *eventRepository) FindUpcoming(ctx context.Context, from time.Time) ([]*entity.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE date_time >= $1 AND deleted_at IS NULL
		ORDER BY date_time ASC
	`

	rows, err := er.db.Query(ctx, query, from)
	if err != nil {
		er.log.Error("Failed to list upcoming events", zap.Error(err))
		return nil, fmt.Errorf("find upcoming events: %w", err)
	}
	defer rows.Close()

	events := make([]*entity.Event, 0)
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			er.log.Error("Failed to scan event row", zap.Error(err))
			return nil, fmt.Errorf("scan event row: %w", err)
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		er.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate event rows: %w", err)
	}

	return events, nil
}

// Delete soft-deletes the event.
func (er *eventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE events SET deleted_at = NOW(), updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := er.db.Exec(ctx, query, id)
	if err != nil {
		er.log.Error("Failed to delete event",
			zap.Error(err),
			zap.String("event_id", id.String()),
		)
		return fmt.Errorf("delete event %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return entity.ErrEventNotFound
	}

	er.log.Info("Event deleted", zap.String("event_id", id.String()))
	return nil
}
