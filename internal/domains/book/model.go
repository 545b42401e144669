package book

import (
	"time"

	"github.com/google/uuid"
)

// Book is a catalog work. AuthorName is expanded from the authors table on
// reads and is never written back.
type Book struct {
	ID         uuid.UUID   `json:"id"`
	Title      string      `json:"title"`
	AuthorID   uuid.UUID   `json:"author_id"`
	Summary    string      `json:"summary"`
	ISBN       string      `json:"isbn"`
	GenreIDs   []uuid.UUID `json:"genre_ids"`
	AuthorName string      `json:"author_name"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

func (b *Book) URL() string {
	return "/catalog/book/" + b.ID.String()
}
