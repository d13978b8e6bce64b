package domain

import "errors"

// Sentinel errors returned by services and repositories. The API error
// handler maps each of these to a deterministic HTTP status code.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserExists         = errors.New("user already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrTooManyAttempts    = errors.New("too many login attempts")

	ErrCustomerNotFound = errors.New("customer with given id was not found")
	ErrGenreNotFound    = errors.New("genre with given id was not found")
	ErrMovieNotFound    = errors.New("movie with given id was not found")
	ErrRentalNotFound   = errors.New("rental was not found")

	ErrMovieOutOfStock       = errors.New("movie not in stock")
	ErrRentalAlreadyReturned = errors.New("rental has already been processed")
)
