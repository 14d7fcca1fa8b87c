package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"movietime/internal/dto/request"
	"movietime/internal/dto/response"
)

func demonSlayer() response.MovieResponse {
	return response.MovieResponse{
		ID:        "a2f1c6de-0a34-4a6b-9b6a-7c2f13d9e001",
		Title:     "Demon Slayer: Infinity Castle",
		Price:     220,
		Showtimes: []string{"10:00 AM", "1:00 PM"},
	}
}

// bookingServer records POST /bookings requests so guard tests can assert
// that nothing was sent.
func bookingServer(t *testing.T) (*Client, *int, **request.CreateBookingRequest) {
	t.Helper()

	requests := 0
	var last *request.CreateBookingRequest

	mux := http.NewServeMux()
	mux.HandleFunc("/bookings", func(w http.ResponseWriter, r *http.Request) {
		requests++
		var req request.CreateBookingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode booking request: %v", err)
		}
		last = &req
		json.NewEncoder(w).Encode(response.CreateBookingResponse{Success: true, ID: "b-1"})
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return New(server.URL), &requests, &last
}

func TestToggleSeatIdempotent(t *testing.T) {
	session := NewBookingSession(nil, nil)
	session.Open(demonSlayer())

	if err := session.ToggleSeat("A1"); err != nil {
		t.Fatalf("ToggleSeat failed: %v", err)
	}
	if len(session.SelectedSeats()) != 1 {
		t.Fatalf("one toggle selected %v", session.SelectedSeats())
	}

	if err := session.ToggleSeat("A1"); err != nil {
		t.Fatalf("ToggleSeat failed: %v", err)
	}
	if len(session.SelectedSeats()) != 0 {
		t.Errorf("double toggle left selection %v, want empty", session.SelectedSeats())
	}
}

func TestToggleSeatRejectsUnknownLabel(t *testing.T) {
	session := NewBookingSession(nil, nil)
	session.Open(demonSlayer())

	if err := session.ToggleSeat("Z9"); err != ErrInvalidSeat {
		t.Errorf("ToggleSeat(Z9) = %v, want ErrInvalidSeat", err)
	}
}

func TestPriceIsUnitPriceTimesSeats(t *testing.T) {
	session := NewBookingSession(nil, nil)
	session.Open(demonSlayer())

	session.ToggleSeat("A1")
	session.ToggleSeat("A2")

	if got := session.Price(); got != 440 {
		t.Errorf("Price() = %d, want 440", got)
	}
}

func TestConfirmGuards(t *testing.T) {
	t.Run("EmptySelectionSendsNothing", func(t *testing.T) {
		api, requests, _ := bookingServer(t)
		user := &response.UserProjection{ID: "7b9e4f10-6a1d-4d9b-8f2c-0c5d2e8a1002", Name: "Ann"}
		session := NewBookingSession(api, user)
		session.Open(demonSlayer())

		if _, err := session.Confirm(context.Background()); err != ErrNoSeatsSelected {
			t.Errorf("Confirm = %v, want ErrNoSeatsSelected", err)
		}
		if *requests != 0 {
			t.Errorf("guard failure sent %d requests", *requests)
		}
	})

	t.Run("MissingIdentitySendsNothing", func(t *testing.T) {
		api, requests, _ := bookingServer(t)
		session := NewBookingSession(api, nil)
		session.Open(demonSlayer())
		session.ToggleSeat("A1")

		if _, err := session.Confirm(context.Background()); err != ErrNotSignedIn {
			t.Errorf("Confirm = %v, want ErrNotSignedIn", err)
		}
		if *requests != 0 {
			t.Errorf("guard failure sent %d requests", *requests)
		}
	})
}

func TestConfirmSubmitsBookingAndTransitions(t *testing.T) {
	api, requests, last := bookingServer(t)
	user := &response.UserProjection{ID: "7b9e4f10-6a1d-4d9b-8f2c-0c5d2e8a1002", Name: "Ann"}
	session := NewBookingSession(api, user)

	if session.State() != StateBrowsing {
		t.Fatalf("initial state = %v", session.State())
	}

	session.Open(demonSlayer())
	if session.State() != StateSeatSelecting {
		t.Fatalf("after Open state = %v", session.State())
	}

	session.ToggleSeat("A2")
	session.ToggleSeat("A1")
	session.SelectShowtime("1:00 PM")

	resp, err := session.Confirm(context.Background())
	if err != nil {
		t.Fatalf("Confirm failed: %v", err)
	}
	if !resp.Success || resp.ID != "b-1" {
		t.Errorf("Confirm response = %+v", resp)
	}
	if session.State() != StateBooked {
		t.Errorf("after Confirm state = %v, want booked", session.State())
	}
	if len(session.SelectedSeats()) != 0 {
		t.Errorf("selection not cleared after booking: %v", session.SelectedSeats())
	}

	if *requests != 1 {
		t.Fatalf("sent %d requests, want 1", *requests)
	}

	sent := *last
	if !reflect.DeepEqual(sent.Seats, []string{"A1", "A2"}) {
		t.Errorf("sent seats %v, want grid order [A1 A2]", sent.Seats)
	}
	if sent.Price != 440 {
		t.Errorf("sent price %d, want 440", sent.Price)
	}
	if sent.Showtime != "1:00 PM" {
		t.Errorf("sent showtime %q", sent.Showtime)
	}
	if sent.UserID == nil || *sent.UserID != user.ID {
		t.Errorf("sent userId %v, want %s", sent.UserID, user.ID)
	}
}

func TestOpenResetsSelection(t *testing.T) {
	session := NewBookingSession(nil, nil)
	session.Open(demonSlayer())
	session.ToggleSeat("C4")

	other := demonSlayer()
	other.ID = "otherid-not-checked"
	session.Open(other)

	if len(session.SelectedSeats()) != 0 {
		t.Errorf("reopening for another movie kept seats %v", session.SelectedSeats())
	}
}

func TestCloseReturnsToBrowsing(t *testing.T) {
	session := NewBookingSession(nil, nil)
	session.Open(demonSlayer())
	session.ToggleSeat("A1")
	session.Close()

	if session.State() != StateBrowsing {
		t.Errorf("after Close state = %v, want browsing", session.State())
	}
	if len(session.SelectedSeats()) != 0 {
		t.Errorf("Close kept seats %v", session.SelectedSeats())
	}
}
