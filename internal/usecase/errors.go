// Package usecase defines sentinel errors shared across services. Handlers
// match on these with errors.Is to pick the right response message, instead
// of parsing error strings.
package usecase

import "errors"

// ErrEmailTaken is returned by Register when the email is already present.
var ErrEmailTaken = errors.New("user already exists")

// ErrUserNotFound is returned by Authenticate when no user matches the email.
var ErrUserNotFound = errors.New("user not found")

// ErrInvalidPassword is returned by Authenticate when the hash comparison
// fails.
var ErrInvalidPassword = errors.New("invalid password")

// ErrMovieNotFound is returned by CreateBooking when the movie reference
// does not exist.
var ErrMovieNotFound = errors.New("movie not found")
