package wire

import (
	"net/http"

	"event-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	authMW func(http.Handler) http.Handler,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(authMW)

		r.Post("/api/events/book", bookingHandler.BookEvent)
		r.Get("/api/bookings", bookingHandler.MyBookings)

		// owner or admin; checked in the service
		r.Put("/api/bookings/{id}/cancel", bookingHandler.CancelBooking)
	})
}
