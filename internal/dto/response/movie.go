package response

import (
	"time"

	"movietime/internal/data/entity"
)

type MovieResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Language  *string   `json:"language,omitempty"`
	Genres    []string  `json:"genres"`
	Rating    *string   `json:"rating,omitempty"`
	PosterURL *string   `json:"posterUrl,omitempty"`
	Duration  *string   `json:"duration,omitempty"`
	Price     int       `json:"price"`
	Showtimes []string  `json:"showtimes"`
	CreatedAt time.Time `json:"createdAt"`
}

func MovieToResponse(movie *entity.Movie) MovieResponse {
	return MovieResponse{
		ID:        movie.ID.String(),
		Title:     movie.Title,
		Language:  movie.Language,
		Genres:    movie.Genres,
		Rating:    movie.Rating,
		PosterURL: movie.PosterURL,
		Duration:  movie.Duration,
		Price:     movie.Price,
		Showtimes: movie.Showtimes,
		CreatedAt: movie.CreatedAt,
	}
}
