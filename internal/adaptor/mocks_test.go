package adaptor

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"event-booking/internal/dto/request"
	"event-booking/internal/dto/response"
	"event-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*response.AuthResponse)
	return resp, args.Error(1)
}

func (m *mockAuthService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*response.AuthResponse)
	return resp, args.Error(1)
}

type mockEventService struct {
	mock.Mock
}

func (m *mockEventService) CreateEvent(ctx context.Context, req *request.CreateEventRequest) (*response.EventResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*response.EventResponse)
	return resp, args.Error(1)
}

func (m *mockEventService) GetEvents(ctx context.Context) ([]response.EventResponse, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]response.EventResponse)
	return list, args.Error(1)
}

func (m *mockEventService) GetEventByID(ctx context.Context, eventID string) (*response.EventResponse, error) {
	args := m.Called(ctx, eventID)
	resp, _ := args.Get(0).(*response.EventResponse)
	return resp, args.Error(1)
}

func (m *mockEventService) DeleteEvent(ctx context.Context, eventID string) error {
	return m.Called(ctx, eventID).Error(0)
}

func (m *mockEventService) GetEventBookings(ctx context.Context, eventID string) ([]response.EventBookingResponse, error) {
	args := m.Called(ctx, eventID)
	list, _ := args.Get(0).([]response.EventBookingResponse)
	return list, args.Error(1)
}

type mockBookingService struct {
	mock.Mock
}

func (m *mockBookingService) BookEvent(ctx context.Context, userID uuid.UUID, req *request.BookEventRequest) (*response.BookingResponse, error) {
	args := m.Called(ctx, userID, req)
	resp, _ := args.Get(0).(*response.BookingResponse)
	return resp, args.Error(1)
}

func (m *mockBookingService) GetUserBookings(ctx context.Context, userID uuid.UUID) ([]response.BookingResponse, error) {
	args := m.Called(ctx, userID)
	list, _ := args.Get(0).([]response.BookingResponse)
	return list, args.Error(1)
}

func (m *mockBookingService) CancelBooking(ctx context.Context, userID uuid.UUID, role string, bookingID string) (*response.BookingResponse, error) {
	args := m.Called(ctx, userID, role, bookingID)
	resp, _ := args.Get(0).(*response.BookingResponse)
	return resp, args.Error(1)
}

type fakePinger struct {
	err error
}

func (p fakePinger) Ping(context.Context) error {
	return p.err
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) utils.Response {
	t.Helper()
	var resp utils.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}
