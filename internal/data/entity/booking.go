package entity

import (
	"github.com/google/uuid"
)

type Booking struct {
	Base
	UserID     *uuid.UUID `db:"user_id"`
	MovieID    uuid.UUID  `db:"movie_id"`
	MovieTitle string     `db:"movie_title"`
	Showtime   string     `db:"showtime"`
	Seats      []string   `db:"seats"`
	Price      int        `db:"price"`
}
