package usecase

import (
	"context"
	"errors"
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

func newBooking(userID, eventID uuid.UUID, status entity.BookingStatus) *entity.Booking {
	now := time.Now()
	return &entity.Booking{
		BaseNoDelete: entity.BaseNoDelete{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		UserID:       userID,
		EventID:      eventID,
		Status:       status,
		BookingDate:  now,
	}
}

func waitPublished(t *testing.T, pub *fakePublisher) published {
	t.Helper()
	select {
	case msg := <-pub.msgs:
		return msg
	case <-time.After(time.Second):
		t.Fatal("no message published")
		return published{}
	}
}

func TestBookingService_BookEvent_Success(t *testing.T) {
	repo := new(mockBookingRepo)
	pub := newFakePublisher(nil)
	svc := NewBookingService(repo, pub, zap.NewNop())

	userID, eventID := uuid.New(), uuid.New()
	booking := newBooking(userID, eventID, entity.BookingStatusConfirmed)
	repo.On("Book", mock.Anything, userID, eventID).Return(booking, nil)

	resp, err := svc.BookEvent(context.Background(), userID, &request.BookEventRequest{EventID: eventID.String()})
	require.NoError(t, err)

	assert.Equal(t, booking.ID.String(), resp.ID)
	assert.Equal(t, entity.BookingStatusConfirmed, resp.Status)

	msg := waitPublished(t, pub)
	assert.Equal(t, RoutingBookingCreated, msg.routingKey)
	assert.Equal(t, booking.ID.String(), msg.payload.(BookingMessage).BookingID)
	repo.AssertExpectations(t)
}

func TestBookingService_BookEvent_PublishFailureDoesNotFailBooking(t *testing.T) {
	repo := new(mockBookingRepo)
	pub := newFakePublisher(errors.New("broker down"))
	svc := NewBookingService(repo, pub, zap.NewNop())

	userID, eventID := uuid.New(), uuid.New()
	repo.On("Book", mock.Anything, userID, eventID).
		Return(newBooking(userID, eventID, entity.BookingStatusConfirmed), nil)

	_, err := svc.BookEvent(context.Background(), userID, &request.BookEventRequest{EventID: eventID.String()})

	assert.NoError(t, err)
	waitPublished(t, pub)
}

func TestBookingService_BookEvent_Errors(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
	}{
		{"event not found", entity.ErrEventNotFound},
		{"no seats", entity.ErrNoSeatsAvailable},
		{"already booked", entity.ErrAlreadyBooked},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockBookingRepo)
			pub := newFakePublisher(nil)
			svc := NewBookingService(repo, pub, zap.NewNop())

			userID, eventID := uuid.New(), uuid.New()
			repo.On("Book", mock.Anything, userID, eventID).Return(nil, tt.repoErr)

			resp, err := svc.BookEvent(context.Background(), userID, &request.BookEventRequest{EventID: eventID.String()})

			assert.Nil(t, resp)
			assert.ErrorIs(t, err, tt.repoErr)
			assert.Empty(t, pub.msgs)
		})
	}
}

func TestBookingService_BookEvent_Validation(t *testing.T) {
	repo := new(mockBookingRepo)
	svc := NewBookingService(repo, newFakePublisher(nil), zap.NewNop())

	for _, id := range []string{"", "not-a-uuid"} {
		_, err := svc.BookEvent(context.Background(), uuid.New(), &request.BookEventRequest{EventID: id})
		assert.ErrorIs(t, err, entity.ErrValidation, "event id %q", id)
	}
	repo.AssertNotCalled(t, "Book", mock.Anything, mock.Anything, mock.Anything)
}

func TestBookingService_CancelBooking(t *testing.T) {
	ownerID, eventID := uuid.New(), uuid.New()

	tests := []struct {
		name     string
		callerID uuid.UUID
		role     string
		existing *entity.Booking
		wantErr  error
	}{
		{"owner", ownerID, "CUSTOMER", newBooking(ownerID, eventID, entity.BookingStatusConfirmed), nil},
		{"admin", uuid.New(), "ADMIN", newBooking(ownerID, eventID, entity.BookingStatusConfirmed), nil},
		{"stranger", uuid.New(), "CUSTOMER", newBooking(ownerID, eventID, entity.BookingStatusConfirmed), entity.ErrForbidden},
		{"already cancelled", ownerID, "CUSTOMER", newBooking(ownerID, eventID, entity.BookingStatusCancelled), entity.ErrBookingNotActive},
		{"missing", ownerID, "CUSTOMER", nil, entity.ErrBookingNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockBookingRepo)
			pub := newFakePublisher(nil)
			svc := NewBookingService(repo, pub, zap.NewNop())

			bookingID := uuid.New()
			repo.On("FindByID", mock.Anything, bookingID).Return(tt.existing, nil)
			if tt.wantErr == nil {
				cancelled := *tt.existing
				cancelled.Status = entity.BookingStatusCancelled
				repo.On("Cancel", mock.Anything, bookingID).Return(&cancelled, nil)
			}

			resp, err := svc.CancelBooking(context.Background(), tt.callerID, tt.role, bookingID.String())

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				repo.AssertNotCalled(t, "Cancel", mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, entity.BookingStatusCancelled, resp.Status)
			assert.Equal(t, RoutingBookingCancelled, waitPublished(t, pub).routingKey)
		})
	}
}

func TestBookingService_GetUserBookings(t *testing.T) {
	repo := new(mockBookingRepo)
	svc := NewBookingService(repo, newFakePublisher(nil), zap.NewNop())

	userID := uuid.New()
	repo.On("FindByUserID", mock.Anything, userID).Return([]*entity.Booking{
		newBooking(userID, uuid.New(), entity.BookingStatusConfirmed),
		newBooking(userID, uuid.New(), entity.BookingStatusCancelled),
	}, nil)

	bookings, err := svc.GetUserBookings(context.Background(), userID)
	require.NoError(t, err)
	assert.Len(t, bookings, 2)
}

func TestBookingOutcome(t *testing.T) {
	assert.Equal(t, "booked", bookingOutcome(nil))
	assert.Equal(t, "no_seats", bookingOutcome(entity.ErrNoSeatsAvailable))
	assert.Equal(t, "already_booked", bookingOutcome(entity.ErrAlreadyBooked))
	assert.Equal(t, "not_found", bookingOutcome(entity.ErrEventNotFound))
	assert.Equal(t, "error", bookingOutcome(errors.New("boom")))
}
