package adaptor

import (
	"errors"
	"net/http"

	"event-booking/internal/data/entity"
	"event-booking/internal/usecase"
	"event-booking/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	User    *UserHandler
	Event   *EventHandler
	Booking *BookingHandler
	Health  *HealthHandler
}

func NewHandler(service *usecase.Service, db Pinger, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, log),
		User:    NewUserHandler(service.User, log),
		Event:   NewEventHandler(service.Event, log),
		Booking: NewBookingHandler(service.Booking, log),
		Health:  NewHealthHandler(db, log),
	}
}

// decodeBody reports a 400 and returns false when the body cannot be decoded.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := utils.DecodeJSON(w, r, dst); err != nil {
		if errors.Is(err, utils.ErrBodyTooLarge) {
			utils.ResponseError(w, http.StatusRequestEntityTooLarge, "Request body too large", nil)
			return false
		}
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return false
	}
	return true
}

// handleServiceError maps service errors onto HTTP responses.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case errors.Is(err, entity.ErrValidation):
		log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, entity.ErrInvalidCredentials),
		errors.Is(err, entity.ErrUnauthorized):
		log.Warn(operation+" failed - unauthorized", zap.Error(err))
		utils.ResponseUnauthorized(w, "Invalid credentials")

	case errors.Is(err, entity.ErrForbidden):
		log.Warn(operation+" failed - forbidden", zap.Error(err))
		utils.ResponseForbidden(w, "You are not allowed to perform this action")

	case errors.Is(err, entity.ErrUserNotFound):
		utils.ResponseNotFound(w, "User not found")

	case errors.Is(err, entity.ErrEventNotFound):
		utils.ResponseNotFound(w, "Event not found")

	case errors.Is(err, entity.ErrBookingNotFound):
		utils.ResponseNotFound(w, "Booking not found")

	case errors.Is(err, entity.ErrEmailTaken):
		utils.ResponseConflict(w, "User already exists")

	case errors.Is(err, entity.ErrNoSeatsAvailable):
		utils.ResponseConflict(w, "No seats available")

	case errors.Is(err, entity.ErrAlreadyBooked):
		utils.ResponseConflict(w, "You have already booked this event")

	case errors.Is(err, entity.ErrBookingNotActive):
		utils.ResponseConflict(w, "Booking is already cancelled")

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
