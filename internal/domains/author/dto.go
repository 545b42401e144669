package author

import (
	"fmt"
	"html"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

const (
	// isoDate is the layout form fields arrive in and edit forms echo back.
	isoDate = "2006-01-02"

	MaxNameLength = 100
)

// FormInput carries the raw author form fields. Everything arrives as a
// string from the untyped boundary; dates are validated as ISO-8601 and
// converted only once validation has passed.
type FormInput struct {
	FirstName   string `json:"first_name" form:"first_name"`
	LastName    string `json:"last_name" form:"last_name"`
	DateOfBirth string `json:"date_of_birth" form:"date_of_birth"`
	DateOfDeath string `json:"date_of_death" form:"date_of_death"`
}

// Sanitize trims surrounding whitespace. Escaping is deferred to ToEntity
// so the length and character rules measure the raw submitted values.
func (in *FormInput) Sanitize() {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.DateOfBirth = strings.TrimSpace(in.DateOfBirth)
	in.DateOfDeath = strings.TrimSpace(in.DateOfDeath)
}

// Validate applies the per-field rules. All fields are checked even when an
// earlier one fails; the result is a field-scoped validation.Errors map.
// Empty optional dates are skipped rather than rejected.
func (in FormInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.FirstName,
			validation.Required.Error("First Name must be specified"),
			validation.Length(1, MaxNameLength),
			is.Alphanumeric.Error("Name cannot contain non-alphanumeric characters"),
		),
		validation.Field(&in.LastName,
			validation.Required.Error("Last Name must be specified"),
			validation.Length(1, MaxNameLength),
			is.Alphanumeric.Error("Name cannot contain non-alphanumeric characters"),
		),
		validation.Field(&in.DateOfBirth,
			validation.Date(isoDate).Error("Invalid Date of Birth"),
		),
		validation.Field(&in.DateOfDeath,
			validation.Date(isoDate).Error("Invalid Date of Death"),
		),
	)
}

// ToEntity converts validated input into an Author, neutralizing markup in
// the name fields. Must only be called after Validate has passed.
func (in FormInput) ToEntity() (*Author, error) {
	a := &Author{
		FirstName: html.EscapeString(in.FirstName),
		LastName:  html.EscapeString(in.LastName),
	}

	var err error
	if a.DateOfBirth, err = parseOptionalDate(in.DateOfBirth); err != nil {
		return nil, fmt.Errorf("invalid date of birth: %w", err)
	}
	if a.DateOfDeath, err = parseOptionalDate(in.DateOfDeath); err != nil {
		return nil, fmt.Errorf("invalid date of death: %w", err)
	}
	return a, nil
}

// FormInputFromEntity prefills an edit form from a stored author.
func FormInputFromEntity(a *Author) *FormInput {
	in := &FormInput{
		FirstName: a.FirstName,
		LastName:  a.LastName,
	}
	if a.DateOfBirth != nil {
		in.DateOfBirth = a.DateOfBirth.Format(isoDate)
	}
	if a.DateOfDeath != nil {
		in.DateOfDeath = a.DateOfDeath.Format(isoDate)
	}
	return in
}

func parseOptionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(isoDate, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Response is the author as pages see it, derived fields included.
type Response struct {
	ID          uuid.UUID  `json:"id"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	DateOfDeath *time.Time `json:"date_of_death,omitempty"`
	Name        string     `json:"name"`
	Lifespan    string     `json:"lifespan"`
	URL         string     `json:"url"`
}

func (a *Author) ToResponse() *Response {
	return &Response{
		ID:          a.ID,
		FirstName:   a.FirstName,
		LastName:    a.LastName,
		DateOfBirth: a.DateOfBirth,
		DateOfDeath: a.DateOfDeath,
		Name:        a.Name(),
		Lifespan:    a.Lifespan(),
		URL:         a.URL(),
	}
}

// BookSummary is the slice of a book shown on author pages: enough for the
// dependents list without pulling the whole book record.
type BookSummary struct {
	ID      uuid.UUID `json:"id"`
	Title   string    `json:"title"`
	Summary string    `json:"summary"`
	URL     string    `json:"url"`
}

// Page view models, one fixed field set per page type.

type ListPage struct {
	Page    string     `json:"page"`
	Title   string     `json:"title"`
	Authors []Response `json:"author_list"`
}

type DetailPage struct {
	Page   string        `json:"page"`
	Title  string        `json:"title"`
	Author *Response     `json:"author"`
	Books  []BookSummary `json:"author_books"`
}

type FormPage struct {
	Page   string            `json:"page"`
	Title  string            `json:"title"`
	Author *FormInput        `json:"author,omitempty"`
	Errors map[string]string `json:"errors,omitempty"`
}

type DeletePage struct {
	Page   string        `json:"page"`
	Title  string        `json:"title"`
	Author *Response     `json:"author"`
	Books  []BookSummary `json:"author_books"`
}

// WriteResult is the terminal state of a create/update: exactly one of
// Author (committed) or Form (rejected with the original input and field
// errors) is set.
type WriteResult struct {
	Author *Response `json:"author,omitempty"`
	Form   *FormPage `json:"form,omitempty"`
}

func (r *WriteResult) Committed() bool { return r.Author != nil }

// DeleteResult is the terminal state of a delete: either Deleted, or
// Blocked with the records that prevented it.
type DeleteResult struct {
	Deleted bool        `json:"deleted"`
	Blocked *DeletePage `json:"blocked,omitempty"`
}
