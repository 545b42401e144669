package genre

import (
	"context"

	"github.com/google/uuid"
)

type Service interface {
	List(ctx context.Context) (*ListPage, error)
	Detail(ctx context.Context, id uuid.UUID) (*DetailPage, error)
	CreateForm(ctx context.Context) (*FormPage, error)
	Create(ctx context.Context, in FormInput) (*WriteResult, error)
	UpdateForm(ctx context.Context, id uuid.UUID) (*FormPage, error)
	Update(ctx context.Context, id uuid.UUID, in FormInput) (*WriteResult, error)
	DeleteForm(ctx context.Context, id uuid.UUID) (*DeletePage, error)
	Delete(ctx context.Context, id uuid.UUID) (*DeleteResult, error)
}
