package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"library-catalog/internal/domains/author"
	"library-catalog/internal/shared"
	"library-catalog/pkg/fanout"
)

// authorService implements author.Service.
type authorService struct {
	repo author.Repository
}

func NewAuthorService(repo author.Repository) author.Service {
	return &authorService{repo: repo}
}

func (s *authorService) List(ctx context.Context) (*author.ListPage, error) {
	authors, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	page := &author.ListPage{
		Page:    "Authors",
		Title:   "Local Library",
		Authors: make([]author.Response, 0, len(authors)),
	}
	for i := range authors {
		page.Authors = append(page.Authors, *authors[i].ToResponse())
	}
	return page, nil
}

// Detail assembles the author together with their books. The two reads are
// independent and run as a fan-out.
func (s *authorService) Detail(ctx context.Context, id uuid.UUID) (*author.DetailPage, error) {
	a, books, err := s.fetchWithBooks(ctx, id)
	if err != nil {
		return nil, err
	}

	return &author.DetailPage{
		Page:   a.Name(),
		Title:  "Local Library",
		Author: a.ToResponse(),
		Books:  books,
	}, nil
}

func (s *authorService) CreateForm(ctx context.Context) (*author.FormPage, error) {
	return &author.FormPage{
		Page:  "Add New Author",
		Title: "Local Library",
	}, nil
}

// Create runs the write pipeline: sanitize → validate → construct → insert.
// A validation failure is a normal outcome carrying the original input.
func (s *authorService) Create(ctx context.Context, in author.FormInput) (*author.WriteResult, error) {
	in.Sanitize()

	if err := in.Validate(); err != nil {
		fields, ok := shared.FieldErrors(err)
		if !ok {
			return nil, err
		}
		return &author.WriteResult{
			Form: &author.FormPage{
				Page:   "Add New Author",
				Title:  "Local Library",
				Author: &in,
				Errors: fields,
			},
		}, nil
	}

	entity, err := in.ToEntity()
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Insert(ctx, entity)
	if err != nil {
		return nil, fmt.Errorf("failed to create author: %w", err)
	}
	return &author.WriteResult{Author: created.ToResponse()}, nil
}

func (s *authorService) UpdateForm(ctx context.Context, id uuid.UUID) (*author.FormPage, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &author.FormPage{
		Page:   "Update " + current.Name(),
		Title:  "Local Library",
		Author: author.FormInputFromEntity(current),
	}, nil
}

// Update replaces the mutable fields of an existing author, identity
// preserved. Rejected input is redisplayed against the stored record's name.
func (s *authorService) Update(ctx context.Context, id uuid.UUID, in author.FormInput) (*author.WriteResult, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	in.Sanitize()

	if err := in.Validate(); err != nil {
		fields, ok := shared.FieldErrors(err)
		if !ok {
			return nil, err
		}
		return &author.WriteResult{
			Form: &author.FormPage{
				Page:   "Update " + current.Name(),
				Title:  "Local Library",
				Author: &in,
				Errors: fields,
			},
		}, nil
	}

	entity, err := in.ToEntity()
	if err != nil {
		return nil, err
	}
	entity.ID = id

	updated, err := s.repo.Update(ctx, entity)
	if err != nil {
		return nil, fmt.Errorf("failed to update author: %w", err)
	}
	return &author.WriteResult{Author: updated.ToResponse()}, nil
}

func (s *authorService) DeleteForm(ctx context.Context, id uuid.UUID) (*author.DeletePage, error) {
	a, books, err := s.fetchWithBooks(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.deletePage(a, books), nil
}

// Delete enforces the referential integrity rule: an author referenced by
// any book is not deletable, and the blocking books are returned for
// display. The check and the delete are not atomic against concurrent
// writers; a dependent inserted in between is an accepted race.
func (s *authorService) Delete(ctx context.Context, id uuid.UUID) (*author.DeleteResult, error) {
	a, books, err := s.fetchWithBooks(ctx, id)
	if err != nil {
		return nil, err
	}

	if len(books) > 0 {
		return &author.DeleteResult{Blocked: s.deletePage(a, books)}, nil
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to delete author: %w", err)
	}
	return &author.DeleteResult{Deleted: true}, nil
}

// fetchWithBooks fans out the author read and the dependent-books read.
func (s *authorService) fetchWithBooks(ctx context.Context, id uuid.UUID) (*author.Author, []author.BookSummary, error) {
	var (
		a     *author.Author
		books []author.BookSummary
	)

	g := fanout.New(ctx)
	g.Go("author", func(ctx context.Context) error {
		var err error
		a, err = s.repo.GetByID(ctx, id)
		return err
	})
	g.Go("author_books", func(ctx context.Context) error {
		var err error
		books, err = s.repo.BooksByAuthor(ctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return a, books, nil
}

func (s *authorService) deletePage(a *author.Author, books []author.BookSummary) *author.DeletePage {
	return &author.DeletePage{
		Page:   "Delete " + a.Name(),
		Title:  "Local Library",
		Author: a.ToResponse(),
		Books:  books,
	}
}
