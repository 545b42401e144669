package genre

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	List(ctx context.Context) ([]Genre, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Genre, error)
	Insert(ctx context.Context, g *Genre) (*Genre, error)
	Update(ctx context.Context, g *Genre) (*Genre, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
	BooksInGenre(ctx context.Context, genreID uuid.UUID) ([]BookSummary, error)
}
