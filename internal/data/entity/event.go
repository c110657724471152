package entity

import "time"

const DefaultAvailableSeats = 100

type Event struct {
	Base
	Name           string    `db:"name"`
	Venue          string    `db:"venue"`
	DateTime       time.Time `db:"date_time"`
	Vendor         *string   `db:"vendor"`
	Description    *string   `db:"description"`
	AvailableSeats int       `db:"available_seats"`
}
