package request

import "time"

type CreateEventRequest struct {
	Name           string    `json:"name" validate:"required,min=1,max=255"`
	Venue          string    `json:"venue" validate:"required,min=1,max=255"`
	DateTime       time.Time `json:"date_time" validate:"required"`
	Vendor         *string   `json:"vendor,omitempty" validate:"omitempty,max=255"`
	Description    *string   `json:"description,omitempty" validate:"omitempty,max=5000"`
	AvailableSeats *int      `json:"available_seats" validate:"required,min=1,max=100000"`
}
