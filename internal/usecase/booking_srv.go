package usecase

import (
	"context"
	"errors"
	"time"

	"event-booking/internal/data/entity"
	"event-booking/internal/data/repository"
	"event-booking/internal/dto/request"
	"event-booking/internal/dto/response"
	"event-booking/pkg/metrics"
	"event-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	BookEvent(ctx context.Context, userID uuid.UUID, req *request.BookEventRequest) (*response.BookingResponse, error)
	GetUserBookings(ctx context.Context, userID uuid.UUID) ([]response.BookingResponse, error)
	// CancelBooking is allowed for the booking owner and for admins.
	CancelBooking(ctx context.Context, userID uuid.UUID, role string, bookingID string) (*response.BookingResponse, error)
}

type bookingService struct {
	bookingRepo repository.BookingRepository
	publisher   EventPublisher
	log         *zap.Logger
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	publisher EventPublisher,
	log *zap.Logger,
) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		publisher:   publisher,
		log:         log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) BookEvent(ctx context.Context, userID uuid.UUID, req *request.BookEventRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Book event validation failed", zap.Any("errors", errs))
		return nil, validationError(errs)
	}

	eventID, err := parseID("event_id", req.EventID)
	if err != nil {
		return nil, err
	}

	booking, err := s.bookingRepo.Book(ctx, userID, eventID)
	metrics.BookingAttempts.WithLabelValues(bookingOutcome(err)).Inc()
	if err != nil {
		s.log.Warn("Booking rejected",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("event_id", req.EventID))
		return nil, err
	}

	s.publish(ctx, RoutingBookingCreated, booking)

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) GetUserBookings(ctx context.Context, userID uuid.UUID) ([]response.BookingResponse, error) {
	bookings, err := s.bookingRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return response.BookingsToResponse(bookings), nil
}

func (s *bookingService) CancelBooking(ctx context.Context, userID uuid.UUID, role string, bookingID string) (*response.BookingResponse, error) {
	id, err := parseID("booking_id", bookingID)
	if err != nil {
		return nil, err
	}

	existing, err := s.bookingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, entity.ErrBookingNotFound
	}
	if existing.UserID != userID && entity.UserRole(role) != entity.RoleAdmin {
		s.log.Warn("Cancel booking forbidden",
			zap.String("booking_id", bookingID),
			zap.String("user_id", userID.String()))
		return nil, entity.ErrForbidden
	}
	if !existing.Active() {
		return nil, entity.ErrBookingNotActive
	}

	booking, err := s.bookingRepo.Cancel(ctx, id)
	if err != nil {
		return nil, err
	}
	metrics.BookingCancellations.Inc()

	s.publish(ctx, RoutingBookingCancelled, booking)

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

// publish sends the notification in the background; failures are only logged.
func (s *bookingService) publish(ctx context.Context, routingKey string, booking *entity.Booking) {
	msg := BookingMessage{
		BookingID:  booking.ID.String(),
		UserID:     booking.UserID.String(),
		EventID:    booking.EventID.String(),
		Status:     string(booking.Status),
		OccurredAt: time.Now().UTC(),
	}

	ctx = context.WithoutCancel(ctx)
	go func() {
		if err := s.publisher.Publish(ctx, routingKey, msg); err != nil {
			metrics.PublishFailures.WithLabelValues(routingKey).Inc()
			s.log.Warn("Failed to publish booking notification",
				zap.Error(err),
				zap.String("routing_key", routingKey),
				zap.String("booking_id", msg.BookingID))
		}
	}()
}

func bookingOutcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeBooked
	case errors.Is(err, entity.ErrNoSeatsAvailable):
		return metrics.OutcomeNoSeats
	case errors.Is(err, entity.ErrAlreadyBooked):
		return metrics.OutcomeAlreadyBooked
	case errors.Is(err, entity.ErrEventNotFound):
		return metrics.OutcomeNotFound
	default:
		return metrics.OutcomeError
	}
}
