package genre

import (
	"errors"
	"net/http"
)

var ErrGenreNotFound = errors.New("genre not found")

func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrGenreNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
