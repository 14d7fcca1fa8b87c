package response

import (
	"time"

	"movietime/internal/data/entity"
)

type BookingResponse struct {
	ID       string    `json:"id"`
	UserID   *string   `json:"userId,omitempty"`
	MovieID  string    `json:"movieId"`
	Title    string    `json:"title"`
	Showtime string    `json:"showtime"`
	Seats    []string  `json:"seats"`
	Price    int       `json:"price"`
	Date     time.Time `json:"date"`
}

type CreateBookingResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

func BookingToResponse(booking *entity.Booking) BookingResponse {
	resp := BookingResponse{
		ID:       booking.ID.String(),
		MovieID:  booking.MovieID.String(),
		Title:    booking.MovieTitle,
		Showtime: booking.Showtime,
		Seats:    booking.Seats,
		Price:    booking.Price,
		Date:     booking.CreatedAt,
	}

	if booking.UserID != nil {
		id := booking.UserID.String()
		resp.UserID = &id
	}

	return resp
}
