package client

import (
	"context"
	"errors"
	"sort"
	"time"

	"movietime/internal/dto/request"
	"movietime/internal/dto/response"
)

// FlowState is the booking-flow position: Browsing -> SeatSelecting ->
// Confirming -> Booked.
type FlowState string

const (
	StateBrowsing      FlowState = "browsing"
	StateSeatSelecting FlowState = "seat_selecting"
	StateConfirming    FlowState = "confirming"
	StateBooked        FlowState = "booked"
)

// Guard errors: when one fires, no request is sent.
var (
	ErrNoSeatsSelected = errors.New("select at least one seat")
	ErrNotSignedIn     = errors.New("you must login to book")
	ErrInvalidSeat     = errors.New("seat is not on the seat map")
	ErrNoActiveMovie   = errors.New("no movie selected")
)

// BookingSession owns the transient state of one booking flow: the movie
// being booked, the chosen showtime and the selected-seat set. The set is
// discarded whenever the flow is closed or reopened for another movie.
type BookingSession struct {
	api      *Client
	identity *response.UserProjection

	state    FlowState
	movie    *response.MovieResponse
	showtime string
	seats    map[string]struct{}
}

// NewBookingSession starts in Browsing. identity may be nil (not signed in).
func NewBookingSession(api *Client, identity *response.UserProjection) *BookingSession {
	return &BookingSession{
		api:      api,
		identity: identity,
		state:    StateBrowsing,
		seats:    map[string]struct{}{},
	}
}

func (s *BookingSession) State() FlowState { return s.state }

// Open enters SeatSelecting for a movie, clearing any previous selection.
func (s *BookingSession) Open(movie response.MovieResponse) {
	s.movie = &movie
	s.seats = map[string]struct{}{}
	s.showtime = ""
	if len(movie.Showtimes) > 0 {
		s.showtime = movie.Showtimes[0]
	}
	s.state = StateSeatSelecting
}

// Close drops the selection and returns to Browsing.
func (s *BookingSession) Close() {
	s.movie = nil
	s.seats = map[string]struct{}{}
	s.showtime = ""
	s.state = StateBrowsing
}

// SelectShowtime picks one of the movie's showtime strings.
func (s *BookingSession) SelectShowtime(showtime string) {
	s.showtime = showtime
}

// ToggleSeat flips a seat's membership in the selected set. Toggling twice
// restores the prior state.
func (s *BookingSession) ToggleSeat(label string) error {
	if s.state != StateSeatSelecting {
		return ErrNoActiveMovie
	}
	if SeatIndex(label) < 0 {
		return ErrInvalidSeat
	}

	if _, ok := s.seats[label]; ok {
		delete(s.seats, label)
	} else {
		s.seats[label] = struct{}{}
	}
	return nil
}

// SelectedSeats returns the selection in grid order.
func (s *BookingSession) SelectedSeats() []string {
	seats := make([]string, 0, len(s.seats))
	for label := range s.seats {
		seats = append(seats, label)
	}
	sort.Slice(seats, func(i, j int) bool {
		return SeatIndex(seats[i]) < SeatIndex(seats[j])
	})
	return seats
}

// Price is unit price times selected-seat count.
func (s *BookingSession) Price() int {
	if s.movie == nil {
		return 0
	}
	return s.movie.Price * len(s.seats)
}

// Confirm assembles the booking record and submits it. Guards fire before
// any request: an empty selection and a missing identity both block
// submission locally. On success the flow moves to Booked and the selection
// is cleared.
func (s *BookingSession) Confirm(ctx context.Context) (*response.CreateBookingResponse, error) {
	if s.movie == nil {
		return nil, ErrNoActiveMovie
	}
	if len(s.seats) == 0 {
		return nil, ErrNoSeatsSelected
	}
	if s.identity == nil {
		return nil, ErrNotSignedIn
	}

	s.state = StateConfirming

	req := &request.CreateBookingRequest{
		UserID:   &s.identity.ID,
		MovieID:  s.movie.ID,
		Title:    s.movie.Title,
		Showtime: s.showtime,
		Seats:    s.SelectedSeats(),
		Price:    s.Price(),
		Date:     time.Now().Format(time.RFC3339),
	}

	resp, err := s.api.CreateBooking(ctx, req)
	if err != nil {
		s.state = StateSeatSelecting
		return nil, err
	}

	s.state = StateBooked
	s.seats = map[string]struct{}{}
	return resp, nil
}
