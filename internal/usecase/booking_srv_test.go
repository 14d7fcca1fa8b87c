package usecase_test

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"movietime/internal/data/entity"
	"movietime/internal/data/repository"
	"movietime/internal/dto/request"
	"movietime/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func bookingFixture() (*repository.Repository, *entity.Movie, *entity.User) {
	movie := &entity.Movie{
		Base:      entity.Base{ID: uuid.New(), CreatedAt: time.Now()},
		Title:     "Demon Slayer: Infinity Castle",
		Price:     220,
		Showtimes: []string{"10:00 AM"},
	}
	user := &entity.User{
		Base:  entity.Base{ID: uuid.New(), CreatedAt: time.Now()},
		Name:  "Ann",
		Email: "ann@x.com",
	}

	repo := &repository.Repository{
		User:    &fakeUserRepo{users: []*entity.User{user}},
		Movie:   &fakeMovieRepo{movies: []*entity.Movie{movie}},
		Booking: &fakeBookingRepo{},
	}

	return repo, movie, user
}

func TestCreateBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("RecomputesPriceServerSide", func(t *testing.T) {
		repo, movie, user := bookingFixture()
		service := usecase.NewBookingService(repo, zap.NewNop())

		userID := user.ID.String()
		id, err := service.CreateBooking(ctx, &request.CreateBookingRequest{
			UserID:   &userID,
			MovieID:  movie.ID.String(),
			Showtime: "10:00 AM",
			Seats:    []string{"A1", "A2"},
			Price:    9999, // diverging client price loses
		})
		if err != nil {
			t.Fatalf("CreateBooking failed: %v", err)
		}
		if id == "" {
			t.Fatal("CreateBooking returned no id")
		}

		stored := repo.Booking.(*fakeBookingRepo).bookings
		if len(stored) != 1 {
			t.Fatalf("stored %d bookings, want 1", len(stored))
		}
		if stored[0].Price != 440 {
			t.Errorf("stored price %d, want 440", stored[0].Price)
		}
		if stored[0].MovieTitle != movie.Title {
			t.Errorf("stored title %q, want movie title", stored[0].MovieTitle)
		}
	})

	t.Run("AnonymousBookingAllowed", func(t *testing.T) {
		repo, movie, _ := bookingFixture()
		service := usecase.NewBookingService(repo, zap.NewNop())

		_, err := service.CreateBooking(ctx, &request.CreateBookingRequest{
			MovieID:  movie.ID.String(),
			Showtime: "10:00 AM",
			Seats:    []string{"B3"},
		})
		if err != nil {
			t.Fatalf("CreateBooking without user failed: %v", err)
		}
	})

	t.Run("UnknownMovieRejected", func(t *testing.T) {
		repo, _, _ := bookingFixture()
		service := usecase.NewBookingService(repo, zap.NewNop())

		_, err := service.CreateBooking(ctx, &request.CreateBookingRequest{
			MovieID:  uuid.NewString(),
			Showtime: "10:00 AM",
			Seats:    []string{"A1"},
		})
		if !errors.Is(err, usecase.ErrMovieNotFound) {
			t.Errorf("CreateBooking unknown movie = %v, want ErrMovieNotFound", err)
		}
	})

	t.Run("UnknownUserRejected", func(t *testing.T) {
		repo, movie, _ := bookingFixture()
		service := usecase.NewBookingService(repo, zap.NewNop())

		ghost := uuid.NewString()
		_, err := service.CreateBooking(ctx, &request.CreateBookingRequest{
			UserID:   &ghost,
			MovieID:  movie.ID.String(),
			Showtime: "10:00 AM",
			Seats:    []string{"A1"},
		})
		if !errors.Is(err, usecase.ErrUserNotFound) {
			t.Errorf("CreateBooking unknown user = %v, want ErrUserNotFound", err)
		}
	})

	t.Run("EmptySeatListRejected", func(t *testing.T) {
		repo, movie, _ := bookingFixture()
		service := usecase.NewBookingService(repo, zap.NewNop())

		_, err := service.CreateBooking(ctx, &request.CreateBookingRequest{
			MovieID:  movie.ID.String(),
			Showtime: "10:00 AM",
			Seats:    []string{},
		})
		if err == nil || !strings.Contains(err.Error(), "validation failed") {
			t.Errorf("CreateBooking empty seats = %v, want validation error", err)
		}
	})
}

func TestListBookings(t *testing.T) {
	ctx := context.Background()
	repo, movie, _ := bookingFixture()
	service := usecase.NewBookingService(repo, zap.NewNop())

	t1 := time.Date(2026, 8, 30, 18, 0, 0, 0, time.UTC)
	t2 := t1.Add(2 * time.Hour)

	for _, booking := range []struct {
		seats []string
		at    time.Time
	}{
		{[]string{"A1", "A2"}, t1},
		{[]string{"F8"}, t2},
	} {
		_, err := service.CreateBooking(ctx, &request.CreateBookingRequest{
			MovieID:  movie.ID.String(),
			Showtime: "10:00 AM",
			Seats:    booking.seats,
			Date:     booking.at.Format(time.RFC3339),
		})
		if err != nil {
			t.Fatalf("CreateBooking failed: %v", err)
		}
	}

	bookings, err := service.ListBookings(ctx)
	if err != nil {
		t.Fatalf("ListBookings failed: %v", err)
	}
	if len(bookings) != 2 {
		t.Fatalf("listed %d bookings, want 2", len(bookings))
	}

	// newest first: the t2 booking leads
	if !reflect.DeepEqual(bookings[0].Seats, []string{"F8"}) {
		t.Errorf("first booking seats %v, want the later booking [F8]", bookings[0].Seats)
	}
	if !reflect.DeepEqual(bookings[1].Seats, []string{"A1", "A2"}) {
		t.Errorf("second booking seats %v, want [A1 A2]", bookings[1].Seats)
	}
}
