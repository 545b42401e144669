package book

import (
	"encoding/json"
	"fmt"
	"html"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

// GenreIDList accepts either a single genre id or a list of them. Clients
// that post one checkbox send a bare string; the list shape is restored here
// so the rest of the pipeline only ever sees a slice.
type GenreIDList []string

func (l *GenreIDList) UnmarshalJSON(data []byte) error {
	var one string
	if err := json.Unmarshal(data, &one); err == nil {
		*l = GenreIDList{one}
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("genre must be a string or a list of strings: %w", err)
	}
	*l = GenreIDList(many)
	return nil
}

// FormInput carries the raw book form fields.
type FormInput struct {
	Title   string      `json:"title" form:"title"`
	Author  string      `json:"author" form:"author"`
	Summary string      `json:"summary" form:"summary"`
	ISBN    string      `json:"isbn" form:"isbn"`
	Genre   GenreIDList `json:"genre" form:"genre"`
}

// Sanitize trims surrounding whitespace. Escaping is deferred to ToEntity
// so validation sees the raw submitted values.
func (in *FormInput) Sanitize() {
	in.Title = strings.TrimSpace(in.Title)
	in.Author = strings.TrimSpace(in.Author)
	in.Summary = strings.TrimSpace(in.Summary)
	in.ISBN = strings.TrimSpace(in.ISBN)
	for i := range in.Genre {
		in.Genre[i] = strings.TrimSpace(in.Genre[i])
	}
}

func (in FormInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Title,
			validation.Required.Error("Title must not be empty"),
		),
		validation.Field(&in.Author,
			validation.Required.Error("Author must not be empty"),
			is.UUID.Error("Author must be a valid id"),
		),
		validation.Field(&in.Summary,
			validation.Required.Error("Summary must not be empty"),
		),
		validation.Field(&in.ISBN,
			validation.Required.Error("ISBN must not be empty"),
		),
		validation.Field(&in.Genre,
			validation.Each(is.UUID.Error("Genre must be a valid id")),
		),
	)
}

// ToEntity converts validated input into a Book, neutralizing markup in the
// text fields. Must only be called after Validate has passed.
func (in FormInput) ToEntity() (*Book, error) {
	authorID, err := uuid.Parse(in.Author)
	if err != nil {
		return nil, fmt.Errorf("invalid author id: %w", err)
	}

	b := &Book{
		Title:    html.EscapeString(in.Title),
		AuthorID: authorID,
		Summary:  html.EscapeString(in.Summary),
		ISBN:     html.EscapeString(in.ISBN),
		GenreIDs: make([]uuid.UUID, 0, len(in.Genre)),
	}
	for _, raw := range in.Genre {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid genre id %q: %w", raw, err)
		}
		b.GenreIDs = append(b.GenreIDs, id)
	}
	return b, nil
}

// FormInputFromEntity prefills an edit form from a stored book.
func FormInputFromEntity(b *Book) *FormInput {
	in := &FormInput{
		Title:   b.Title,
		Author:  b.AuthorID.String(),
		Summary: b.Summary,
		ISBN:    b.ISBN,
		Genre:   make(GenreIDList, 0, len(b.GenreIDs)),
	}
	for _, id := range b.GenreIDs {
		in.Genre = append(in.Genre, id.String())
	}
	return in
}

// Selected reports whether a genre id is among the submitted ones.
func (in *FormInput) Selected(id uuid.UUID) bool {
	for _, raw := range in.Genre {
		if raw == id.String() {
			return true
		}
	}
	return false
}

// Response is the book as pages see it, author expanded.
type Response struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	Summary    string    `json:"summary"`
	ISBN       string    `json:"isbn"`
	AuthorID   uuid.UUID `json:"author_id"`
	AuthorName string    `json:"author_name"`
	AuthorURL  string    `json:"author_url"`
	URL        string    `json:"url"`
}

func (b *Book) ToResponse() *Response {
	return &Response{
		ID:         b.ID,
		Title:      b.Title,
		Summary:    b.Summary,
		ISBN:       b.ISBN,
		AuthorID:   b.AuthorID,
		AuthorName: b.AuthorName,
		AuthorURL:  "/catalog/author/" + b.AuthorID.String(),
		URL:        b.URL(),
	}
}

// GenreSummary is the slice of a genre shown on book pages.
type GenreSummary struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	URL  string    `json:"url"`
}

// InstanceSummary is the slice of a copy shown on book pages; the integrity
// guard treats any result as a blocking dependent.
type InstanceSummary struct {
	ID               uuid.UUID `json:"id"`
	Imprint          string    `json:"imprint"`
	Status           string    `json:"status"`
	DueBackFormatted string    `json:"due_back_formatted"`
	URL              string    `json:"url"`
}

// AuthorOption is one entry of the author dropdown on the book form.
type AuthorOption struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// GenreOption is one entry of the genre checkbox group on the book form.
// Checked marks the genres already attached to the book being edited, or the
// ones the rejected submission had selected.
type GenreOption struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Checked bool      `json:"checked"`
}

// Page view models, one fixed field set per page type.

type ListPage struct {
	Page  string     `json:"page"`
	Title string     `json:"title"`
	Books []Response `json:"book_list"`
}

type DetailPage struct {
	Page      string            `json:"page"`
	Title     string            `json:"title"`
	Book      *Response         `json:"book"`
	Genres    []GenreSummary    `json:"book_genres"`
	Instances []InstanceSummary `json:"book_instances"`
}

type FormPage struct {
	Page    string            `json:"page"`
	Title   string            `json:"title"`
	Book    *FormInput        `json:"book,omitempty"`
	Authors []AuthorOption    `json:"authors"`
	Genres  []GenreOption     `json:"genres"`
	Errors  map[string]string `json:"errors,omitempty"`
}

type DeletePage struct {
	Page      string            `json:"page"`
	Title     string            `json:"title"`
	Book      *Response         `json:"book"`
	Instances []InstanceSummary `json:"book_instances"`
}

// WriteResult is the terminal state of a create/update: exactly one of Book
// (committed) or Form (rejected with the original input and field errors) is
// set.
type WriteResult struct {
	Book *Response `json:"book,omitempty"`
	Form *FormPage `json:"form,omitempty"`
}

func (r *WriteResult) Committed() bool { return r.Book != nil }

// DeleteResult is the terminal state of a delete: either Deleted, or Blocked
// with the copies that prevented it.
type DeleteResult struct {
	Deleted bool        `json:"deleted"`
	Blocked *DeletePage `json:"blocked,omitempty"`
}
