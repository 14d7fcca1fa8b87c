package usecase

import (
	"context"
	"fmt"
	"time"

	"movietime/internal/data/entity"
	"movietime/internal/data/repository"
	"movietime/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CatalogService interface {
	// ListMovies returns every movie record verbatim. Search and ordering
	// happen client-side over the full set.
	ListMovies(ctx context.Context) ([]response.MovieResponse, error)

	// Seed inserts the sample catalog once, when the movies table is empty.
	Seed(ctx context.Context) error
}

type catalogService struct {
	movies repository.MovieRepository
	log    *zap.Logger
}

func NewCatalogService(movies repository.MovieRepository, log *zap.Logger) CatalogService {
	return &catalogService{
		movies: movies,
		log:    log.With(zap.String("service", "catalog")),
	}
}

func (s *catalogService) ListMovies(ctx context.Context) ([]response.MovieResponse, error) {
	movies, err := s.movies.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list movies", zap.Error(err))
		return nil, fmt.Errorf("list movies: %w", err)
	}

	responses := make([]response.MovieResponse, len(movies))
	for i, movie := range movies {
		responses[i] = response.MovieToResponse(movie)
	}

	return responses, nil
}

func (s *catalogService) Seed(ctx context.Context) error {
	count, err := s.movies.CountAll(ctx)
	if err != nil {
		return fmt.Errorf("count movies before seed: %w", err)
	}
	if count > 0 {
		s.log.Debug("Catalog already seeded", zap.Int64("movies", count))
		return nil
	}

	if err := s.movies.CreateBatch(ctx, sampleMovies()); err != nil {
		s.log.Error("Failed to seed catalog", zap.Error(err))
		return fmt.Errorf("seed catalog: %w", err)
	}

	s.log.Info("Catalog seeded", zap.Int("movies", len(sampleMovies())))
	return nil
}

func strptr(s string) *string { return &s }

func sampleMovies() []*entity.Movie {
	now := time.Now()

	return []*entity.Movie{
		{
			Base:      entity.Base{ID: uuid.New(), CreatedAt: now},
			Title:     "Demon Slayer: Infinity Castle",
			Language:  strptr("Japanese"),
			Genres:    []string{"Animation", "Action"},
			Rating:    strptr("8.9"),
			PosterURL: strptr("https://preview.redd.it/new-poster-for-demon-slayer-kimetsu-no-yaiba-infinity-v0-jnccimdxdo9f1.jpeg"),
			Duration:  strptr("1h 54m"),
			Price:     220,
			Showtimes: []string{"10:00 AM", "1:00 PM", "4:00 PM", "7:30 PM"},
		},
		{
			Base:      entity.Base{ID: uuid.New(), CreatedAt: now},
			Title:     "Avengers: Endgame",
			Language:  strptr("English"),
			Genres:    []string{"Action", "Drama"},
			Rating:    strptr("9.2"),
			PosterURL: strptr("https://filmartgallery.com/cdn/shop/files/Avengers-Endgame-Official-Movie-Poster-295-Vintage-Movie-Poster-Original.jpg"),
			Duration:  strptr("3h 1m"),
			Price:     300,
			Showtimes: []string{"11:30 AM", "2:30 PM", "6:30 PM", "9:30 PM"},
		},
		{
			Base:      entity.Base{ID: uuid.New(), CreatedAt: now},
			Title:     "Local Comedy Hit",
			Language:  strptr("Hindi"),
			Genres:    []string{"Comedy"},
			Rating:    strptr("7.8"),
			PosterURL: strptr("https://images.unsplash.com/photo-1524985069026-dd778a71c7b4"),
			Duration:  strptr("2h 10m"),
			Price:     180,
			Showtimes: []string{"12:00 PM", "3:00 PM", "6:00 PM", "9:00 PM"},
		},
	}
}
