package wire

import (
	"movietime/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler) {
	// GET /bookings - booking history, newest first
	r.Get("/bookings", bookingHandler.GetBookings)

	// POST /bookings - record a confirmed booking
	r.Post("/bookings", bookingHandler.CreateBooking)
}
