package author

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the record-store access the author workflows need. The
// dependent-book reads live here too: the integrity guard and detail pages
// query books by author without owning the book domain.
type Repository interface {
	List(ctx context.Context) ([]Author, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Author, error)
	Insert(ctx context.Context, a *Author) (*Author, error)
	Update(ctx context.Context, a *Author) (*Author, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
	BooksByAuthor(ctx context.Context, authorID uuid.UUID) ([]BookSummary, error)
}
