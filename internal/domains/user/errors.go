package user

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	// ErrUserNotFound covers both a well-formed but absent id and a
	// malformed id; the two are deliberately indistinguishable.
	ErrUserNotFound = errors.New("User not found")

	// ErrEmailAlreadyExists is produced by the pre-check and by the
	// storage-level unique index when the pre-check races.
	ErrEmailAlreadyExists = errors.New("Email already exists")
)

// GetHTTPStatusCode maps domain errors to HTTP status codes.
// Anything unrecognized is an internal fault.
func GetHTTPStatusCode(err error) int {
	var verr validation.Errors
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest
	case errors.Is(err, ErrEmailAlreadyExists):
		return http.StatusBadRequest
	case errors.Is(err, ErrUserNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
