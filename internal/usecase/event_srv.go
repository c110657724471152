package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"event-booking/internal/data/entity"
	"event-booking/internal/data/repository"
	"event-booking/internal/dto/request"
	"event-booking/internal/dto/response"
	"event-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type EventService interface {
	CreateEvent(ctx context.Context, req *request.CreateEventRequest) (*response.EventResponse, error)
	GetEvents(ctx context.Context) ([]response.EventResponse, error)
	GetEventByID(ctx context.Context, eventID string) (*response.EventResponse, error)
	DeleteEvent(ctx context.Context, eventID string) error
	GetEventBookings(ctx context.Context, eventID string) ([]response.EventBookingResponse, error)
}

type eventService struct {
	eventRepo   repository.EventRepository
	bookingRepo repository.BookingRepository
	now         clock
	log         *zap.Logger
}

func NewEventService(
	eventRepo repository.EventRepository,
	bookingRepo repository.BookingRepository,
	log *zap.Logger,
) EventService {
	return &eventService{
		eventRepo:   eventRepo,
		bookingRepo: bookingRepo,
		now:         time.Now,
		log:         log.With(zap.String("service", "event")),
	}
}

func (s *eventService) CreateEvent(ctx context.Context, req *request.CreateEventRequest) (*response.EventResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Venue = strings.TrimSpace(req.Venue)

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create event validation failed", zap.Any("errors", errs))
		return nil, validationError(errs)
	}

	now := s.now()
	event := &entity.Event{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:           req.Name,
		Venue:          req.Venue,
		DateTime:       req.DateTime.UTC(),
		Vendor:         req.Vendor,
		Description:    req.Description,
		AvailableSeats: *req.AvailableSeats,
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}

	s.log.Info("Event created",
		zap.String("event_id", event.ID.String()),
		zap.String("name", event.Name),
		zap.Int("available_seats", event.AvailableSeats))

	resp := response.EventToResponse(event)
	return &resp, nil
}

// GetEvents lists events that have not started yet.
func (s *eventService) GetEvents(ctx context.Context) ([]response.EventResponse, error) {
	events, err := s.eventRepo.FindUpcoming(ctx, s.now())
	if err != nil {
		return nil, err
	}
	return response.EventsToResponse(events), nil
}

func (s *eventService) GetEventByID(ctx context.Context, eventID string) (*response.EventResponse, error) {
	event, err := s.findEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	resp := response.EventToResponse(event)
	return &resp, nil
}

func (s *eventService) DeleteEvent(ctx context.Context, eventID string) error {
	id, err := parseID("event_id", eventID)
	if err != nil {
		return err
	}

	if err := s.eventRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info("Event deleted", zap.String("event_id", eventID))
	return nil
}

func (s *eventService) GetEventBookings(ctx context.Context, eventID string) ([]response.EventBookingResponse, error) {
	event, err := s.findEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	bookings, err := s.bookingRepo.FindByEventID(ctx, event.ID)
	if err != nil {
		return nil, err
	}

	return response.EventBookingsToResponse(bookings), nil
}

func (s *eventService) findEvent(ctx context.Context, eventID string) (*entity.Event, error) {
	id, err := parseID("event_id", eventID)
	if err != nil {
		return nil, err
	}

	event, err := s.eventRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, entity.ErrEventNotFound
	}

	return event, nil
}

func parseID(field, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s: Must be a valid UUID", entity.ErrValidation, field)
	}
	return id, nil
}
