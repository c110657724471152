package usecase

import (
	"context"
	"testing"
	"time"

	"event-booking/internal/data/entity"
	"event-booking/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestEventService(events *mockEventRepo, bookings *mockBookingRepo, now time.Time) *eventService {
	svc := NewEventService(events, bookings, zap.NewNop()).(*eventService)
	svc.now = func() time.Time { return now }
	return svc
}

func TestEventService_CreateEvent(t *testing.T) {
	events := new(mockEventRepo)
	svc := newTestEventService(events, new(mockBookingRepo), time.Now())

	seats := 120
	vendor := "Tech Corp"
	when := time.Now().Add(72 * time.Hour)
	events.On("Create", mock.Anything, mock.MatchedBy(func(e *entity.Event) bool {
		return e.Name == "Go Meetup" && e.AvailableSeats == 120 && e.Description == nil
	})).Return(nil)

	resp, err := svc.CreateEvent(context.Background(), &request.CreateEventRequest{
		Name:           "Go Meetup",
		Venue:          "Hall 1",
		DateTime:       when,
		Vendor:         &vendor,
		AvailableSeats: &seats,
	})
	require.NoError(t, err)

	assert.Equal(t, 120, resp.AvailableSeats)
	assert.Equal(t, "Tech Corp", *resp.Vendor)
	events.AssertExpectations(t)
}

func TestEventService_CreateEvent_Validation(t *testing.T) {
	events := new(mockEventRepo)
	svc := newTestEventService(events, new(mockBookingRepo), time.Now())

	zero := 0
	_, err := svc.CreateEvent(context.Background(), &request.CreateEventRequest{
		Name:           "  ",
		Venue:          "Hall",
		DateTime:       time.Now(),
		AvailableSeats: &zero,
	})

	assert.ErrorIs(t, err, entity.ErrValidation)
	events.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestEventService_GetEvents_UsesCurrentTime(t *testing.T) {
	events := new(mockEventRepo)
	now := time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestEventService(events, new(mockBookingRepo), now)

	events.On("FindUpcoming", mock.Anything, now).Return([]*entity.Event{
		{Base: entity.Base{ID: uuid.New()}, Name: "A", DateTime: now.Add(time.Hour)},
	}, nil)

	list, err := svc.GetEvents(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 1)
	events.AssertExpectations(t)
}

func TestEventService_GetEventByID(t *testing.T) {
	events := new(mockEventRepo)
	svc := newTestEventService(events, new(mockBookingRepo), time.Now())

	missing := uuid.New()
	events.On("FindByID", mock.Anything, missing).Return(nil, nil)

	_, err := svc.GetEventByID(context.Background(), missing.String())
	assert.ErrorIs(t, err, entity.ErrEventNotFound)

	_, err = svc.GetEventByID(context.Background(), "nope")
	assert.ErrorIs(t, err, entity.ErrValidation)
}

func TestEventService_GetEventBookings(t *testing.T) {
	events := new(mockEventRepo)
	bookings := new(mockBookingRepo)
	svc := newTestEventService(events, bookings, time.Now())

	event := &entity.Event{Base: entity.Base{ID: uuid.New()}, Name: "Show"}
	userID := uuid.New()
	events.On("FindByID", mock.Anything, event.ID).Return(event, nil)
	bookings.On("FindByEventID", mock.Anything, event.ID).Return([]*entity.BookingWithUser{
		{
			Booking:   *newBooking(userID, event.ID, entity.BookingStatusConfirmed),
			UserName:  "Alice",
			UserEmail: "alice@example.com",
		},
	}, nil)

	list, err := svc.GetEventBookings(context.Background(), event.ID.String())
	require.NoError(t, err)
	require.Len(t, list, 1)

	assert.Equal(t, userID.String(), list[0].User.ID)
	assert.Equal(t, "Alice", list[0].User.Name)
}

func TestEventService_GetEventBookings_UnknownEvent(t *testing.T) {
	events := new(mockEventRepo)
	bookings := new(mockBookingRepo)
	svc := newTestEventService(events, bookings, time.Now())

	id := uuid.New()
	events.On("FindByID", mock.Anything, id).Return(nil, nil)

	_, err := svc.GetEventBookings(context.Background(), id.String())

	assert.ErrorIs(t, err, entity.ErrEventNotFound)
	bookings.AssertNotCalled(t, "FindByEventID", mock.Anything, mock.Anything)
}

func TestEventService_DeleteEvent(t *testing.T) {
	events := new(mockEventRepo)
	svc := newTestEventService(events, new(mockBookingRepo), time.Now())

	id := uuid.New()
	events.On("Delete", mock.Anything, id).Return(entity.ErrEventNotFound)

	assert.ErrorIs(t, svc.DeleteEvent(context.Background(), id.String()), entity.ErrEventNotFound)
}
