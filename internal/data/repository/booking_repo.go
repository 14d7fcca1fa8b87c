package repository

import (
	"context"
	"fmt"

	"movietime/internal/data/entity"
	"movietime/pkg/database"

	"go.uber.org/zap"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindAll(ctx context.Context) ([]*entity.Booking, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	seats, err := entity.EncodeList(booking.Seats)
	if err != nil {
		return fmt.Errorf("encode seats: %w", err)
	}

	query := `
		INSERT INTO bookings (id, user_id, movie_id, movie_title, showtime,
		                      seats, price, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err = r.db.Exec(ctx, query,
		booking.ID,
		booking.UserID,
		booking.MovieID,
		booking.MovieTitle,
		booking.Showtime,
		seats,
		booking.Price,
		booking.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
			zap.String("movie_id", booking.MovieID.String()),
		)
		return fmt.Errorf("create booking %s: %w", booking.ID.String(), err)
	}

	return nil
}

func (r *bookingRepository) FindAll(ctx context.Context) ([]*entity.Booking, error) {
	query := `
		SELECT id, user_id, movie_id, movie_title, showtime, seats, price, created_at
		FROM bookings
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all bookings", zap.Error(err))
		return nil, fmt.Errorf("find all bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		var booking entity.Booking
		var seats string

		err := rows.Scan(
			&booking.ID,
			&booking.UserID,
			&booking.MovieID,
			&booking.MovieTitle,
			&booking.Showtime,
			&seats,
			&booking.Price,
			&booking.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}

		if booking.Seats, err = entity.DecodeList(seats); err != nil {
			return nil, fmt.Errorf("decode seats: %w", err)
		}

		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate booking rows: %w", err)
	}

	return bookings, nil
}
