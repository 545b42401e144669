package bookinstance

import (
	"errors"
	"net/http"
)

var ErrBookInstanceNotFound = errors.New("book instance not found")

func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrBookInstanceNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
