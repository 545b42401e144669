package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"library-catalog/internal/domains/bookinstance"
	"library-catalog/internal/shared"
	"library-catalog/pkg/fanout"
)

type bookInstanceService struct {
	repo bookinstance.Repository
}

func NewBookInstanceService(repo bookinstance.Repository) bookinstance.Service {
	return &bookInstanceService{repo: repo}
}

func (s *bookInstanceService) List(ctx context.Context) (*bookinstance.ListPage, error) {
	instances, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	page := &bookinstance.ListPage{
		Page:      "Book Instances",
		Title:     "Local Library",
		Instances: make([]bookinstance.Response, 0, len(instances)),
	}
	for i := range instances {
		page.Instances = append(page.Instances, *instances[i].ToResponse())
	}
	return page, nil
}

func (s *bookInstanceService) Detail(ctx context.Context, id uuid.UUID) (*bookinstance.DetailPage, error) {
	bi, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &bookinstance.DetailPage{
		Page:     "Book Instance " + bi.Imprint,
		Title:    "Local Library",
		Instance: bi.ToResponse(),
	}, nil
}

func (s *bookInstanceService) CreateForm(ctx context.Context) (*bookinstance.FormPage, error) {
	books, err := s.repo.BookOptions(ctx)
	if err != nil {
		return nil, err
	}

	return &bookinstance.FormPage{
		Page:     "Add New Book Instance",
		Title:    "Local Library",
		Books:    books,
		Statuses: bookinstance.AllStatuses(),
	}, nil
}

func (s *bookInstanceService) Create(ctx context.Context, in bookinstance.FormInput) (*bookinstance.WriteResult, error) {
	in.Sanitize()

	if err := in.Validate(); err != nil {
		fields, ok := shared.FieldErrors(err)
		if !ok {
			return nil, err
		}
		form, err := s.rejectedForm(ctx, "Add New Book Instance", &in, fields)
		if err != nil {
			return nil, err
		}
		return &bookinstance.WriteResult{Form: form}, nil
	}

	entity, err := in.ToEntity()
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Insert(ctx, entity)
	if err != nil {
		return nil, fmt.Errorf("failed to create book instance: %w", err)
	}
	return &bookinstance.WriteResult{Instance: created.ToResponse()}, nil
}

func (s *bookInstanceService) rejectedForm(ctx context.Context, pageTitle string, in *bookinstance.FormInput, fields map[string]string) (*bookinstance.FormPage, error) {
	books, err := s.repo.BookOptions(ctx)
	if err != nil {
		return nil, err
	}
	markSelected(books, in.Book)

	return &bookinstance.FormPage{
		Page:     pageTitle,
		Title:    "Local Library",
		Instance: in,
		Books:    books,
		Statuses: bookinstance.AllStatuses(),
		Errors:   fields,
	}, nil
}

// UpdateForm fans out the copy read and the book dropdown.
func (s *bookInstanceService) UpdateForm(ctx context.Context, id uuid.UUID) (*bookinstance.FormPage, error) {
	var (
		bi    *bookinstance.BookInstance
		books []bookinstance.BookOption
	)

	fg := fanout.New(ctx)
	fg.Go("bookinstance", func(ctx context.Context) error {
		var err error
		bi, err = s.repo.GetByID(ctx, id)
		return err
	})
	fg.Go("books", func(ctx context.Context) error {
		var err error
		books, err = s.repo.BookOptions(ctx)
		return err
	})
	if err := fg.Wait(); err != nil {
		return nil, err
	}
	markSelected(books, bi.BookID.String())

	return &bookinstance.FormPage{
		Page:     "Update Book Instance",
		Title:    "Local Library",
		Instance: bookinstance.FormInputFromEntity(bi),
		Books:    books,
		Statuses: bookinstance.AllStatuses(),
	}, nil
}

func (s *bookInstanceService) Update(ctx context.Context, id uuid.UUID, in bookinstance.FormInput) (*bookinstance.WriteResult, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	in.Sanitize()

	if err := in.Validate(); err != nil {
		fields, ok := shared.FieldErrors(err)
		if !ok {
			return nil, err
		}
		form, err := s.rejectedForm(ctx, "Update Book Instance", &in, fields)
		if err != nil {
			return nil, err
		}
		return &bookinstance.WriteResult{Form: form}, nil
	}

	entity, err := in.ToEntity()
	if err != nil {
		return nil, err
	}
	entity.ID = id

	updated, err := s.repo.Update(ctx, entity)
	if err != nil {
		return nil, fmt.Errorf("failed to update book instance: %w", err)
	}
	return &bookinstance.WriteResult{Instance: updated.ToResponse()}, nil
}

func (s *bookInstanceService) DeleteForm(ctx context.Context, id uuid.UUID) (*bookinstance.DeletePage, error) {
	bi, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &bookinstance.DeletePage{
		Page:     "Delete Book Instance " + bi.Imprint,
		Title:    "Local Library",
		Instance: bi.ToResponse(),
	}, nil
}

func markSelected(books []bookinstance.BookOption, bookID string) {
	for i := range books {
		books[i].Selected = books[i].ID.String() == bookID
	}
}

// Delete always succeeds for an existing copy: nothing in the graph treats a
// copy as a blocking dependent.
func (s *bookInstanceService) Delete(ctx context.Context, id uuid.UUID) (*bookinstance.DeleteResult, error) {
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return &bookinstance.DeleteResult{Deleted: true}, nil
}
