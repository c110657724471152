package response

import (
	"time"

	"event-booking/internal/data/entity"
)

type EventResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Venue          string    `json:"venue"`
	DateTime       time.Time `json:"date_time"`
	Vendor         *string   `json:"vendor,omitempty"`
	Description    *string   `json:"description,omitempty"`
	AvailableSeats int       `json:"available_seats"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func EventToResponse(event *entity.Event) EventResponse {
	return EventResponse{
		ID:             event.ID.String(),
		Name:           event.Name,
		Venue:          event.Venue,
		DateTime:       event.DateTime,
		Vendor:         event.Vendor,
		Description:    event.Description,
		AvailableSeats: event.AvailableSeats,
		CreatedAt:      event.CreatedAt,
		UpdatedAt:      event.UpdatedAt,
	}
}

func EventsToResponse(events []*entity.Event) []EventResponse {
	out := make([]EventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, EventToResponse(e))
	}
	return out
}
