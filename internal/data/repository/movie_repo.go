package repository

import (
	"context"
	"fmt"

	"movietime/internal/data/entity"
	"movietime/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type MovieRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error)
	FindAll(ctx context.Context) ([]*entity.Movie, error)
	CountAll(ctx context.Context) (int64, error)

	// CreateBatch inserts a set of movies as a single transaction. Used by
	// the catalog seeder.
	CreateBatch(ctx context.Context, movies []*entity.Movie) error
}

type movieRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMovieRepository(db database.PgxIface, log *zap.Logger) MovieRepository {
	return &movieRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie")),
	}
}

func (r *movieRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	query := `
		SELECT id, title, language, genres, rating, poster_url, duration,
		       price, showtimes, created_at
		FROM movies
		WHERE id = $1
	`

	movie, err := scanMovie(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie by ID",
			zap.Error(err),
			zap.String("movie_id", id.String()),
		)
		return nil, fmt.Errorf("find movie by ID %s: %w", id.String(), err)
	}

	return movie, nil
}

func (r *movieRepository) FindAll(ctx context.Context) ([]*entity.Movie, error) {
	query := `
		SELECT id, title, language, genres, rating, poster_url, duration,
		       price, showtimes, created_at
		FROM movies
		ORDER BY created_at, title
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all movies", zap.Error(err))
		return nil, fmt.Errorf("find all movies: %w", err)
	}
	defer rows.Close()

	var movies []*entity.Movie
	for rows.Next() {
		movie, err := scanMovie(rows)
		if err != nil {
			r.log.Error("Failed to scan movie row", zap.Error(err))
			return nil, fmt.Errorf("scan movie row: %w", err)
		}
		movies = append(movies, movie)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate movie rows: %w", err)
	}

	return movies, nil
}

func (r *movieRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM movies`

	var count int64
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		r.log.Error("Failed to count movies", zap.Error(err))
		return 0, fmt.Errorf("count all movies: %w", err)
	}

	return count, nil
}

func (r *movieRepository) CreateBatch(ctx context.Context, movies []*entity.Movie) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin movie batch: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO movies (id, title, language, genres, rating, poster_url,
		                    duration, price, showtimes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	for _, movie := range movies {
		genres, err := entity.EncodeList(movie.Genres)
		if err != nil {
			return fmt.Errorf("encode genres for %s: %w", movie.Title, err)
		}
		showtimes, err := entity.EncodeList(movie.Showtimes)
		if err != nil {
			return fmt.Errorf("encode showtimes for %s: %w", movie.Title, err)
		}

		_, err = tx.Exec(ctx, query,
			movie.ID,
			movie.Title,
			movie.Language,
			genres,
			movie.Rating,
			movie.PosterURL,
			movie.Duration,
			movie.Price,
			showtimes,
			movie.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to insert movie",
				zap.Error(err),
				zap.String("title", movie.Title),
			)
			return fmt.Errorf("insert movie %s: %w", movie.Title, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit movie batch: %w", err)
	}

	return nil
}

// scanMovie decodes one movie row, including the JSON list columns.
func scanMovie(row pgx.Row) (*entity.Movie, error) {
	var movie entity.Movie
	var genres, showtimes string

	err := row.Scan(
		&movie.ID,
		&movie.Title,
		&movie.Language,
		&genres,
		&movie.Rating,
		&movie.PosterURL,
		&movie.Duration,
		&movie.Price,
		&showtimes,
		&movie.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if movie.Genres, err = entity.DecodeList(genres); err != nil {
		return nil, fmt.Errorf("decode genres: %w", err)
	}
	if movie.Showtimes, err = entity.DecodeList(showtimes); err != nil {
		return nil, fmt.Errorf("decode showtimes: %w", err)
	}

	return &movie, nil
}
