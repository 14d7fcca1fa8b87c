package usecase_test

import (
	"context"
	"sort"

	"movietime/internal/data/entity"

	"github.com/google/uuid"
)

// In-memory repositories backing the service tests.

type fakeUserRepo struct {
	users []*entity.User
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	for _, user := range f.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

type fakeMovieRepo struct {
	movies []*entity.Movie
}

func (f *fakeMovieRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Movie, error) {
	for _, movie := range f.movies {
		if movie.ID == id {
			return movie, nil
		}
	}
	return nil, nil
}

func (f *fakeMovieRepo) FindAll(_ context.Context) ([]*entity.Movie, error) {
	return f.movies, nil
}

func (f *fakeMovieRepo) CountAll(_ context.Context) (int64, error) {
	return int64(len(f.movies)), nil
}

func (f *fakeMovieRepo) CreateBatch(_ context.Context, movies []*entity.Movie) error {
	f.movies = append(f.movies, movies...)
	return nil
}

type fakeBookingRepo struct {
	bookings []*entity.Booking
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *entity.Booking) error {
	f.bookings = append(f.bookings, booking)
	return nil
}

// FindAll mirrors the SQL ORDER BY created_at DESC.
func (f *fakeBookingRepo) FindAll(_ context.Context) ([]*entity.Booking, error) {
	sorted := make([]*entity.Booking, len(f.bookings))
	copy(sorted, f.bookings)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	return sorted, nil
}
