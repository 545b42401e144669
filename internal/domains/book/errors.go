package book

import (
	"errors"
	"net/http"
)

var ErrBookNotFound = errors.New("book not found")

func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrBookNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
