package book

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	List(ctx context.Context) ([]Book, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Book, error)
	Insert(ctx context.Context, b *Book) (*Book, error)
	Update(ctx context.Context, b *Book) (*Book, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)

	GenresOfBook(ctx context.Context, bookID uuid.UUID) ([]GenreSummary, error)
	InstancesByBook(ctx context.Context, bookID uuid.UUID) ([]InstanceSummary, error)
	AuthorOptions(ctx context.Context) ([]AuthorOption, error)
	GenreOptions(ctx context.Context) ([]GenreOption, error)
}
