package request

type CreateBookingRequest struct {
	UserID   *string  `json:"userId,omitempty" validate:"omitempty,uuid4"`
	MovieID  string   `json:"movieId" validate:"required,uuid4"`
	Title    string   `json:"title"`
	Showtime string   `json:"showtime" validate:"required"`
	Seats    []string `json:"seats" validate:"required,min=1,dive,required"`

	// Price is the client-computed total. The server recomputes it from the
	// movie's unit price and stores its own value.
	Price int    `json:"price"`
	Date  string `json:"date,omitempty"`
}
