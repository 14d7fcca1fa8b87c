// Package client is the consumer side of the booking API: an HTTP client
// for the five endpoints, the catalog search/sort helpers, the fixed seat
// map, and the booking-flow session state.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"movietime/internal/dto/request"
	"movietime/internal/dto/response"
)

// Client talks JSON to a movietime server.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// Signup registers a new account. A domain failure (duplicate email) comes
// back as success=false with a message, not as an error.
func (c *Client) Signup(ctx context.Context, name, email, password string) (*response.AuthResponse, error) {
	req := request.SignupRequest{Name: name, Email: email, Password: password}

	var resp response.AuthResponse
	if err := c.post(ctx, "/signup", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Login authenticates and returns the identity projection on success.
func (c *Client) Login(ctx context.Context, email, password string) (*response.AuthResponse, error) {
	req := request.LoginRequest{Email: email, Password: password}

	var resp response.AuthResponse
	if err := c.post(ctx, "/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Movies fetches the full catalog.
func (c *Client) Movies(ctx context.Context) ([]response.MovieResponse, error) {
	var movies []response.MovieResponse
	if err := c.get(ctx, "/movies", &movies); err != nil {
		return nil, err
	}
	return movies, nil
}

// Bookings fetches the booking history, newest first.
func (c *Client) Bookings(ctx context.Context) ([]response.BookingResponse, error) {
	var bookings []response.BookingResponse
	if err := c.get(ctx, "/bookings", &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// CreateBooking submits an assembled booking record.
func (c *Client) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.CreateBookingResponse, error) {
	var resp response.CreateBookingResponse
	if err := c.post(ctx, "/bookings", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request %s: %w", path, err)
	}

	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request %s: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request %s: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s %s: unexpected status %d", req.Method, req.URL.Path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response %s: %w", req.URL.Path, err)
	}

	return nil
}
