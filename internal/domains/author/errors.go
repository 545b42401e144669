package author

import (
	"errors"
	"net/http"
)

var ErrAuthorNotFound = errors.New("author not found")

// ToHTTPStatus maps a domain error to the status the boundary should emit.
// Anything unrecognized is treated as an infrastructure failure.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrAuthorNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
