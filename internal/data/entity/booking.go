package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type Booking struct {
	BaseNoDelete
	UserID      uuid.UUID     `db:"user_id"`
	EventID     uuid.UUID     `db:"event_id"`
	Status      BookingStatus `db:"status"`
	BookingDate time.Time     `db:"booking_date"`
}

// Active reports whether the booking still holds a seat.
func (b *Booking) Active() bool {
	return b.Status != BookingStatusCancelled
}

// BookingWithUser is a booking joined with the user who made it.
type BookingWithUser struct {
	Booking
	UserName  string `db:"user_name"`
	UserEmail string `db:"user_email"`
}
