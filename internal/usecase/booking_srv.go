package usecase

import (
	"context"
	"fmt"
	"time"

	"movietime/internal/data/entity"
	"movietime/internal/data/repository"
	"movietime/internal/dto/request"
	"movietime/internal/dto/response"
	"movietime/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	// CreateBooking persists one booking and returns its id. The movie
	// reference is verified and the total price recomputed from the movie's
	// unit price; a diverging client price loses. Seat availability is not
	// checked, double bookings for the same showtime go through.
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (string, error)

	// ListBookings returns every booking, newest first, seats decoded.
	ListBookings(ctx context.Context) ([]response.BookingResponse, error)
}

type bookingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (string, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return "", fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	movieID, err := uuid.Parse(req.MovieID)
	if err != nil {
		return "", fmt.Errorf("invalid movie ID format %s: %w", req.MovieID, err)
	}

	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		s.log.Error("Failed to check movie", zap.Error(err), zap.String("movie_id", req.MovieID))
		return "", fmt.Errorf("check movie: %w", err)
	}
	if movie == nil {
		return "", ErrMovieNotFound
	}

	var userID *uuid.UUID
	if req.UserID != nil {
		parsed, err := uuid.Parse(*req.UserID)
		if err != nil {
			return "", fmt.Errorf("invalid user ID format %s: %w", *req.UserID, err)
		}
		user, err := s.repo.User.FindByID(ctx, parsed)
		if err != nil {
			s.log.Error("Failed to check user", zap.Error(err), zap.String("user_id", *req.UserID))
			return "", fmt.Errorf("check user: %w", err)
		}
		if user == nil {
			return "", ErrUserNotFound
		}
		userID = &parsed
	}

	price := movie.Price * len(req.Seats)
	if req.Price != price {
		s.log.Warn("Client price diverges from server recompute",
			zap.Int("client_price", req.Price),
			zap.Int("server_price", price),
			zap.String("movie_id", req.MovieID),
		)
	}

	createdAt := time.Now()
	if req.Date != "" {
		if parsed, err := time.Parse(time.RFC3339, req.Date); err == nil {
			createdAt = parsed
		}
	}

	title := req.Title
	if title == "" {
		title = movie.Title
	}

	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: createdAt,
		},
		UserID:     userID,
		MovieID:    movieID,
		MovieTitle: title,
		Showtime:   req.Showtime,
		Seats:      req.Seats,
		Price:      price,
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("movie_id", req.MovieID),
		)
		return "", fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("movie_id", req.MovieID),
		zap.Int("seats", len(req.Seats)),
		zap.Int("price", price),
	)

	return booking.ID.String(), nil
}

func (s *bookingService) ListBookings(ctx context.Context) ([]response.BookingResponse, error) {
	bookings, err := s.repo.Booking.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list bookings", zap.Error(err))
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	responses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		responses[i] = response.BookingToResponse(booking)
	}

	return responses, nil
}
