package usecase

import (
	"fmt"
	"time"

	"event-booking/internal/data/entity"
	"event-booking/internal/data/repository"
	"event-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	User    UserService
	Event   EventService
	Booking BookingService
}

func NewService(
	repo *repository.Repository,
	publisher EventPublisher,
	tokens *utils.TokenManager,
	config *utils.Config,
	log *zap.Logger,
) *Service {
	return &Service{
		Auth:    NewAuthService(repo.User, tokens, config.Auth, log),
		User:    NewUserService(repo.User, log),
		Event:   NewEventService(repo.Event, repo.Booking, log),
		Booking: NewBookingService(repo.Booking, publisher, log),
	}
}

// validationError wraps the field messages so callers can match entity.ErrValidation.
func validationError(errs map[string]string) error {
	return fmt.Errorf("%w: %s", entity.ErrValidation, utils.FormatValidationErrors(errs))
}

type clock func() time.Time
