package bookinstance

import (
	"fmt"
	"html"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

const isoDate = "2006-01-02"

// FormInput carries the raw copy form fields.
type FormInput struct {
	Book    string `json:"book" form:"book"`
	Imprint string `json:"imprint" form:"imprint"`
	Status  string `json:"status" form:"status"`
	DueBack string `json:"due_back" form:"due_back"`
}

// Sanitize trims the fields and defaults an omitted status to Maintenance,
// the state a copy enters the catalog in. Escaping is deferred to ToEntity
// so validation sees the raw submitted values.
func (in *FormInput) Sanitize() {
	in.Book = strings.TrimSpace(in.Book)
	in.Imprint = strings.TrimSpace(in.Imprint)
	in.Status = strings.TrimSpace(in.Status)
	in.DueBack = strings.TrimSpace(in.DueBack)

	if in.Status == "" {
		in.Status = string(StatusMaintenance)
	}
}

func (in FormInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Book,
			validation.Required.Error("Book must be specified"),
			is.UUID.Error("Book must be a valid id"),
		),
		validation.Field(&in.Imprint,
			validation.Required.Error("Imprint must be specified"),
		),
		validation.Field(&in.Status,
			validation.In(
				string(StatusAvailable),
				string(StatusMaintenance),
				string(StatusLoaned),
				string(StatusReserved),
			).Error("Invalid status"),
		),
		validation.Field(&in.DueBack,
			validation.Date(isoDate).Error("Invalid date"),
		),
	)
}

// ToEntity converts validated input into a BookInstance, neutralizing
// markup in the imprint. An omitted due date defaults to now. Must only be
// called after Validate has passed.
func (in FormInput) ToEntity() (*BookInstance, error) {
	bookID, err := uuid.Parse(in.Book)
	if err != nil {
		return nil, fmt.Errorf("invalid book id: %w", err)
	}

	bi := &BookInstance{
		BookID:  bookID,
		Imprint: html.EscapeString(in.Imprint),
		Status:  Status(in.Status),
		DueBack: time.Now(),
	}
	if in.DueBack != "" {
		t, err := time.Parse(isoDate, in.DueBack)
		if err != nil {
			return nil, fmt.Errorf("invalid due back date: %w", err)
		}
		bi.DueBack = t
	}
	return bi, nil
}

// FormInputFromEntity prefills an edit form from a stored copy.
func FormInputFromEntity(bi *BookInstance) *FormInput {
	return &FormInput{
		Book:    bi.BookID.String(),
		Imprint: bi.Imprint,
		Status:  string(bi.Status),
		DueBack: bi.DueBackForm(),
	}
}

// Response is the copy as pages see it, book expanded and dates pre-rendered.
type Response struct {
	ID               uuid.UUID `json:"id"`
	BookID           uuid.UUID `json:"book_id"`
	BookTitle        string    `json:"book_title"`
	BookURL          string    `json:"book_url"`
	Imprint          string    `json:"imprint"`
	Status           Status    `json:"status"`
	DueBack          time.Time `json:"due_back"`
	DueBackFormatted string    `json:"due_back_formatted"`
	URL              string    `json:"url"`
}

func (bi *BookInstance) ToResponse() *Response {
	return &Response{
		ID:               bi.ID,
		BookID:           bi.BookID,
		BookTitle:        bi.BookTitle,
		BookURL:          "/catalog/book/" + bi.BookID.String(),
		Imprint:          bi.Imprint,
		Status:           bi.Status,
		DueBack:          bi.DueBack,
		DueBackFormatted: bi.DueBackFormatted(),
		URL:              bi.URL(),
	}
}

// BookOption is one entry of the book dropdown on the copy form. Selected
// marks the book the submitted or stored copy points at; matching is by id.
type BookOption struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	Selected bool      `json:"selected"`
}

// Page view models, one fixed field set per page type.

type ListPage struct {
	Page      string     `json:"page"`
	Title     string     `json:"title"`
	Instances []Response `json:"bookinstance_list"`
}

type DetailPage struct {
	Page     string    `json:"page"`
	Title    string    `json:"title"`
	Instance *Response `json:"bookinstance"`
}

type FormPage struct {
	Page     string            `json:"page"`
	Title    string            `json:"title"`
	Instance *FormInput        `json:"bookinstance,omitempty"`
	Books    []BookOption      `json:"books"`
	Statuses []Status          `json:"statuses"`
	Errors   map[string]string `json:"errors,omitempty"`
}

type DeletePage struct {
	Page     string    `json:"page"`
	Title    string    `json:"title"`
	Instance *Response `json:"bookinstance"`
}

// WriteResult is the terminal state of a create/update: exactly one of
// Instance (committed) or Form (rejected with the original input and field
// errors) is set.
type WriteResult struct {
	Instance *Response `json:"bookinstance,omitempty"`
	Form     *FormPage `json:"form,omitempty"`
}

func (r *WriteResult) Committed() bool { return r.Instance != nil }

// DeleteResult is the terminal state of a delete. Nothing depends on a copy,
// so an existing one always deletes.
type DeleteResult struct {
	Deleted bool `json:"deleted"`
}

// AllStatuses is the order the form renders the status choices in.
func AllStatuses() []Status {
	return []Status{StatusAvailable, StatusMaintenance, StatusLoaned, StatusReserved}
}
