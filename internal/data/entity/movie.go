package entity

type Movie struct {
	Base
	Title     string   `db:"title"`
	Language  *string  `db:"language"`
	Genres    []string `db:"genres"`
	Rating    *string  `db:"rating"`
	PosterURL *string  `db:"poster_url"`
	Duration  *string  `db:"duration"`
	Price     int      `db:"price"`
	Showtimes []string `db:"showtimes"`
}
