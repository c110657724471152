package response

import (
	"time"

	"event-booking/internal/data/entity"
)

type BookingResponse struct {
	ID          string               `json:"id"`
	UserID      string               `json:"user_id"`
	EventID     string               `json:"event_id"`
	Status      entity.BookingStatus `json:"status"`
	BookingDate time.Time            `json:"booking_date"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

type BookingUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// EventBookingResponse is a booking as seen by an admin, with its user.
type EventBookingResponse struct {
	BookingResponse
	User BookingUser `json:"user"`
}

func BookingToResponse(b *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:          b.ID.String(),
		UserID:      b.UserID.String(),
		EventID:     b.EventID.String(),
		Status:      b.Status,
		BookingDate: b.BookingDate,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func BookingsToResponse(bookings []*entity.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, BookingToResponse(b))
	}
	return out
}

func EventBookingsToResponse(bookings []*entity.BookingWithUser) []EventBookingResponse {
	out := make([]EventBookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, EventBookingResponse{
			BookingResponse: BookingToResponse(&b.Booking),
			User: BookingUser{
				ID:    b.UserID.String(),
				Name:  b.UserName,
				Email: b.UserEmail,
			},
		})
	}
	return out
}
