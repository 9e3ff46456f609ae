package post

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	ErrPostNotFound = errors.New("Post not found")

	// ErrAuthorNotFound means author_id did not resolve to an
	// existing user at creation time, whether malformed or absent.
	ErrAuthorNotFound = errors.New("Author not found")
)

// GetHTTPStatusCode maps domain errors to HTTP status codes.
func GetHTTPStatusCode(err error) int {
	var verr validation.Errors
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest
	case errors.Is(err, ErrAuthorNotFound):
		return http.StatusBadRequest
	case errors.Is(err, ErrPostNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
