package wire

import (
	"net/http"

	"event-booking/internal/adaptor"
	"event-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireEvent(
	r chi.Router,
	eventHandler *adaptor.EventHandler,
	authMW func(http.Handler) http.Handler,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/events", eventHandler.ListEvents)
	r.Get("/api/events/{id}", eventHandler.GetEvent)

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(authMW)
		r.Use(middleware.Admin(log))

		r.Post("/api/events", eventHandler.CreateEvent)
		r.Delete("/api/events/{id}", eventHandler.DeleteEvent)
		r.Get("/api/events/{id}/bookings", eventHandler.EventBookings)
	})
}
