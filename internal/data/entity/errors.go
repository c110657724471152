package entity

import "errors"

var (
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")

	ErrUserNotFound    = errors.New("user not found")
	ErrEventNotFound   = errors.New("event not found")
	ErrBookingNotFound = errors.New("booking not found")

	ErrEmailTaken       = errors.New("user already exists")
	ErrAlreadyBooked    = errors.New("you have already booked this event")
	ErrNoSeatsAvailable = errors.New("no seats available")
	ErrBookingNotActive = errors.New("booking is already cancelled")
)
