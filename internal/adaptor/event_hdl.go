package adaptor

import (
	"net/http"

	"event-booking/internal/dto/request"
	"event-booking/internal/usecase"
	"event-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type EventHandler struct {
	service usecase.EventService
	log     *zap.Logger
}

func NewEventHandler(service usecase.EventService, log *zap.Logger) *EventHandler {
	return &EventHandler{
		service: service,
		log:     log.With(zap.String("handler", "event")),
	}
}

// CreateEvent handles POST /api/events (admin only)
func (h *EventHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req request.CreateEventRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	event, err := h.service.CreateEvent(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create event")
		return
	}

	utils.ResponseCreated(w, "Event created successfully", event)
}

// ListEvents handles GET /api/events (public)
func (h *EventHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.service.GetEvents(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list events")
		return
	}

	utils.ResponseList(w, "Events retrieved successfully", len(events), events)
}

// GetEvent handles GET /api/events/{id} (public)
func (h *EventHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	event, err := h.service.GetEventByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get event")
		return
	}

	utils.ResponseSuccess(w, "Event retrieved successfully", event)
}

// DeleteEvent handles DELETE /api/events/{id} (admin only)
func (h *EventHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteEvent(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete event")
		return
	}

	utils.ResponseSuccess(w, "Event deleted successfully", nil)
}

// EventBookings handles GET /api/events/{id}/bookings (admin only)
func (h *EventHandler) EventBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.service.GetEventBookings(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get event bookings")
		return
	}

	utils.ResponseList(w, "Bookings retrieved successfully", len(bookings), bookings)
}
