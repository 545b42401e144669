package genre

import (
	"html"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

const (
	MinNameLength = 3
	MaxNameLength = 100
)

// FormInput carries the raw genre form fields.
type FormInput struct {
	Name string `json:"name" form:"name"`
}

// Sanitize trims surrounding whitespace. Escaping is deferred to ToEntity
// so the length rule measures the raw submitted name.
func (in *FormInput) Sanitize() {
	in.Name = strings.TrimSpace(in.Name)
}

func (in FormInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Name,
			validation.Required.Error("Genre name must be specified"),
			validation.Length(MinNameLength, MaxNameLength),
		),
	)
}

// ToEntity neutralizes markup in the validated name and builds the record.
// Must only be called after Validate has passed.
func (in FormInput) ToEntity() *Genre {
	return &Genre{Name: html.EscapeString(in.Name)}
}

type Response struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	URL  string    `json:"url"`
}

func (g *Genre) ToResponse() *Response {
	return &Response{
		ID:   g.ID,
		Name: g.Name,
		URL:  g.URL(),
	}
}

// BookSummary is the slice of a book shown on the genre detail page.
type BookSummary struct {
	ID      uuid.UUID `json:"id"`
	Title   string    `json:"title"`
	Summary string    `json:"summary"`
	URL     string    `json:"url"`
}

type ListPage struct {
	Page   string     `json:"page"`
	Title  string     `json:"title"`
	Genres []Response `json:"genre_list"`
}

type DetailPage struct {
	Page  string        `json:"page"`
	Title string        `json:"title"`
	Genre *Response     `json:"genre"`
	Books []BookSummary `json:"genre_books"`
}

type FormPage struct {
	Page   string            `json:"page"`
	Title  string            `json:"title"`
	Genre  *FormInput        `json:"genre,omitempty"`
	Errors map[string]string `json:"errors,omitempty"`
}

type DeletePage struct {
	Page  string    `json:"page"`
	Title string    `json:"title"`
	Genre *Response `json:"genre"`
}

type WriteResult struct {
	Genre *Response `json:"genre,omitempty"`
	Form  *FormPage `json:"form,omitempty"`
}

func (r *WriteResult) Committed() bool { return r.Genre != nil }

// DeleteResult exists for symmetry with the guarded domains; genres have
// no dependents under the integrity rule and always delete.
type DeleteResult struct {
	Deleted bool `json:"deleted"`
}
