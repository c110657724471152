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

type BookingRepository interface {
	// Book reserves one seat of the event for the user.
	// Returns entity.ErrEventNotFound, entity.ErrNoSeatsAvailable or entity.ErrAlreadyBooked.
	Book(ctx context.Context, userID, eventID uuid.UUID) (*entity.Booking, error)
	// Cancel marks the booking cancelled and gives its seat back to the event.
	Cancel(ctx context.Context, bookingID uuid.UUID) (*entity.Booking, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error)
	FindByEventID(ctx context.Context, eventID uuid.UUID) ([]*entity.BookingWithUser, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const (
	bookingColumns = `id, user_id, event_id, status, booking_date, created_at, updated_at`

	queryDecrementSeats = `
		UPDATE events
		SET available_seats = available_seats - 1, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL AND available_seats > 0
		RETURNING available_seats
	`
	queryEventExists = `SELECT EXISTS(SELECT 1 FROM events WHERE id = $1 AND deleted_at IS NULL)`

	queryInsertBooking = `
		INSERT INTO bookings (id, user_id, event_id, status, booking_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5, $5)
	`

	queryCancelBooking = `
		UPDATE bookings
		SET status = 'cancelled', updated_at = NOW()
		WHERE id = $1 AND status <> 'cancelled'
		RETURNING ` + bookingColumns

	queryBookingExists = `SELECT EXISTS(SELECT 1 FROM bookings WHERE id = $1)`

	queryIncrementSeats = `
		UPDATE events
		SET available_seats = available_seats + 1, updated_at = NOW()
		WHERE id = $1
	`
)

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var booking entity.Booking
	err := row.Scan(
		&booking.ID,
		&booking.UserID,
		&booking.EventID,
		&booking.Status,
		&booking.BookingDate,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// Book runs the seat decrement and the booking insert in one transaction.
//
// The conditional UPDATE takes the event row lock, so concurrent bookings for
// the same event queue behind each other and the seat count cannot drop below
// zero. The partial unique index on (user_id, event_id) rejects a second live
// booking; the resulting rollback restores the seat.
func (br *bookingRepository) Book(ctx context.Context, userID, eventID uuid.UUID) (booking *entity.Booking, err error) {
	tx, err := br.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
				br.log.Warn("Rollback failed", zap.Error(rbErr))
			}
		}
	}()

	var remaining int
	err = tx.QueryRow(ctx, queryDecrementSeats, eventID).Scan(&remaining)
	if errors.Is(err, pgx.ErrNoRows) {
		// nothing updated: either the event is gone or it is sold out
		var exists bool
		if err = tx.QueryRow(ctx, queryEventExists, eventID).Scan(&exists); err != nil {
			return nil, fmt.Errorf("check event %s: %w", eventID, err)
		}
		if !exists {
			return nil, entity.ErrEventNotFound
		}
		return nil, entity.ErrNoSeatsAvailable
	}
	if err != nil {
		if pgErrorCode(err) == pgCheckViolation {
			return nil, entity.ErrNoSeatsAvailable
		}
		return nil, fmt.Errorf("decrement seats for event %s: %w", eventID, err)
	}

	now := time.Now().UTC()
	booking = &entity.Booking{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:      userID,
		EventID:     eventID,
		Status:      entity.BookingStatusConfirmed,
		BookingDate: now,
	}

	_, err = tx.Exec(ctx, queryInsertBooking,
		booking.ID,
		booking.UserID,
		booking.EventID,
		booking.Status,
		booking.BookingDate,
	)
	if err != nil {
		switch pgErrorCode(err) {
		case pgUniqueViolation:
			return nil, entity.ErrAlreadyBooked
		case pgForeignKeyViolation:
			return nil, entity.ErrUserNotFound
		}
		return nil, fmt.Errorf("insert booking: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit booking: %w", err)
	}

	br.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("user_id", userID.String()),
		zap.String("event_id", eventID.String()),
		zap.Int("available_seats", remaining),
	)

	return booking, nil
}

func (br *bookingRepository) Cancel(ctx context.Context, bookingID uuid.UUID) (booking *entity.Booking, err error) {
	tx, err := br.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
				br.log.Warn("Rollback failed", zap.Error(rbErr))
			}
		}
	}()

	booking, err = scanBooking(tx.QueryRow(ctx, queryCancelBooking, bookingID))
	if errors.Is(err, pgx.ErrNoRows) {
		var exists bool
		if err = tx.QueryRow(ctx, queryBookingExists, bookingID).Scan(&exists); err != nil {
			return nil, fmt.Errorf("check booking %s: %w", bookingID, err)
		}
		if !exists {
			return nil, entity.ErrBookingNotFound
		}
		return nil, entity.ErrBookingNotActive
	}
	if err != nil {
		return nil, fmt.Errorf("cancel booking %s: %w", bookingID, err)
	}

	if _, err = tx.Exec(ctx, queryIncrementSeats, booking.EventID); err != nil {
		return nil, fmt.Errorf("release seat for event %s: %w", booking.EventID, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit cancellation: %w", err)
	}

	br.log.Info("Booking cancelled",
		zap.String("booking_id", booking.ID.String()),
		zap.String("event_id", booking.EventID.String()),
	)

	return booking, nil
}

func (br *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := scanBooking(br.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		br.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return booking, nil
}

func (br *bookingRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE user_id = $1
		ORDER BY booking_date DESC
	`

	rows, err := br.db.Query(ctx, query, userID)
	if err != nil {
		br.log.Error("Failed to list user bookings",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find bookings for user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	bookings := make([]*entity.Booking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate booking rows: %w", err)
	}

	return bookings, nil
}

// FindByEventID lists the event's bookings with the booking user, newest first.
func (br *bookingRepository) FindByEventID(ctx context.Context, eventID uuid.UUID) ([]*entity.BookingWithUser, error) {
	query := `
		SELECT b.id, b.user_id, b.event_id, b.status, b.booking_date, b.created_at, b.updated_at,
		       u.name, u.email
		FROM bookings b
		JOIN users u ON u.id = b.user_id
		WHERE b.event_id = $1
		ORDER BY b.booking_date DESC
	`

	rows, err := br.db.Query(ctx, query, eventID)
	if err != nil {
		br.log.Error("Failed to list event bookings",
			zap.Error(err),
			zap.String("event_id", eventID.String()),
		)
		return nil, fmt.Errorf("find bookings for event %s: %w", eventID.String(), err)
	}
	defer rows.Close()

	bookings := make([]*entity.BookingWithUser, 0)
	for rows.Next() {
		var b entity.BookingWithUser
		err := rows.Scan(
			&b.ID,
			&b.UserID,
			&b.EventID,
			&b.Status,
			&b.BookingDate,
			&b.CreatedAt,
			&b.UpdatedAt,
			&b.UserName,
			&b.UserEmail,
		)
		if err != nil {
			return nil, fmt.Errorf("scan event booking row: %w", err)
		}
		bookings = append(bookings, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate event booking rows: %w", err)
	}

	return bookings, nil
}
