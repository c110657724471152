package usecase

import (
	"context"
	"time"
)

// Routing keys for booking notifications.
const (
	RoutingBookingCreated   = "booking.created"
	RoutingBookingCancelled = "booking.cancelled"
)

// EventPublisher delivers booking notifications to the message broker.
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
}

type BookingMessage struct {
	BookingID  string    `json:"booking_id"`
	UserID     string    `json:"user_id"`
	EventID    string    `json:"event_id"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}
