package adaptor

import (
	"movietime/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	Movie   *MovieHandler
	Booking *BookingHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Identity, log),
		Movie:   NewMovieHandler(service.Catalog, log),
		Booking: NewBookingHandler(service.Booking, log),
	}
}
