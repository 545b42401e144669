package bookinstance

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	List(ctx context.Context) ([]BookInstance, error)
	GetByID(ctx context.Context, id uuid.UUID) (*BookInstance, error)
	Insert(ctx context.Context, bi *BookInstance) (*BookInstance, error)
	Update(ctx context.Context, bi *BookInstance) (*BookInstance, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status Status) (int64, error)

	BookOptions(ctx context.Context) ([]BookOption, error)
}
