package usecase

import (
	"context"
	"time"

	"event-booking/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*entity.User)
	return user, args.Error(1)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*entity.User)
	return user, args.Error(1)
}

type mockEventRepo struct {
	mock.Mock
}

func (m *mockEventRepo) Create(ctx context.Context, event *entity.Event) error {
	return m.Called(ctx, event).Error(0)
}

func (m *mockEventRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	args := m.Called(ctx, id)
	event, _ := args.Get(0).(*entity.Event)
	return event, args.Error(1)
}

func (m *mockEventRepo) FindByName(ctx context.Context, name string) (*entity.Event, error) {
	args := m.Called(ctx, name)
	event, _ := args.Get(0).(*entity.Event)
	return event, args.Error(1)
}

func (m *mockEventRepo) FindUpcoming(ctx context.Context, from time.Time) ([]*entity.Event, error) {
	args := m.Called(ctx, from)
	events, _ := args.Get(0).([]*entity.Event)
	return events, args.Error(1)
}

func (m *mockEventRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) Book(ctx context.Context, userID, eventID uuid.UUID) (*entity.Booking, error) {
	args := m.Called(ctx, userID, eventID)
	booking, _ := args.Get(0).(*entity.Booking)
	return booking, args.Error(1)
}

func (m *mockBookingRepo) Cancel(ctx context.Context, bookingID uuid.UUID) (*entity.Booking, error) {
	args := m.Called(ctx, bookingID)
	booking, _ := args.Get(0).(*entity.Booking)
	return booking, args.Error(1)
}

func (m *mockBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	args := m.Called(ctx, id)
	booking, _ := args.Get(0).(*entity.Booking)
	return booking, args.Error(1)
}

func (m *mockBookingRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error) {
	args := m.Called(ctx, userID)
	bookings, _ := args.Get(0).([]*entity.Booking)
	return bookings, args.Error(1)
}

func (m *mockBookingRepo) FindByEventID(ctx context.Context, eventID uuid.UUID) ([]*entity.BookingWithUser, error) {
	args := m.Called(ctx, eventID)
	bookings, _ := args.Get(0).([]*entity.BookingWithUser)
	return bookings, args.Error(1)
}

type published struct {
	routingKey string
	payload    any
}

// fakePublisher records messages on a channel since publishing is asynchronous.
type fakePublisher struct {
	msgs chan published
	err  error
}

func newFakePublisher(err error) *fakePublisher {
	return &fakePublisher{msgs: make(chan published, 8), err: err}
}

func (p *fakePublisher) Publish(_ context.Context, routingKey string, payload any) error {
	p.msgs <- published{routingKey: routingKey, payload: payload}
	return p.err
}
