package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"movietime/internal/dto/request"
	"movietime/internal/dto/response"
	"movietime/internal/usecase"
	"movietime/pkg/utils"

	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log,
	}
}

// CreateBooking handles POST /bookings
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req request.CreateBookingRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	id, err := h.service.CreateBooking(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrMovieNotFound):
			utils.ResponseFailure(w, "Movie not found")
		case errors.Is(err, usecase.ErrUserNotFound):
			utils.ResponseFailure(w, "User not found")
		case strings.Contains(err.Error(), "validation failed"),
			strings.Contains(err.Error(), "invalid movie ID format"),
			strings.Contains(err.Error(), "invalid user ID format"):
			utils.ResponseBadRequest(w, err.Error())
		default:
			h.log.Error("Create booking failed", zap.Error(err))
			utils.ResponseInternalError(w, "Internal server error")
		}
		return
	}

	utils.ResponseJSON(w, http.StatusOK, response.CreateBookingResponse{
		Success: true,
		ID:      id,
	})
}

// GetBookings handles GET /bookings. Plain array response, seats decoded to
// a string list.
func (h *BookingHandler) GetBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.service.ListBookings(r.Context())
	if err != nil {
		h.log.Error("List bookings failed", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.ResponseJSON(w, http.StatusOK, bookings)
}
