package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"library-catalog/internal/domains/book"
	"library-catalog/internal/shared"
	"library-catalog/pkg/fanout"
)

type bookService struct {
	repo book.Repository
}

func NewBookService(repo book.Repository) book.Service {
	return &bookService{repo: repo}
}

func (s *bookService) List(ctx context.Context) (*book.ListPage, error) {
	books, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	page := &book.ListPage{
		Page:  "Books",
		Title: "Local Library",
		Books: make([]book.Response, 0, len(books)),
	}
	for i := range books {
		page.Books = append(page.Books, *books[i].ToResponse())
	}
	return page, nil
}

// Detail fans out the book read, its genre list and its copies.
func (s *bookService) Detail(ctx context.Context, id uuid.UUID) (*book.DetailPage, error) {
	var (
		b         *book.Book
		genres    []book.GenreSummary
		instances []book.InstanceSummary
	)

	fg := fanout.New(ctx)
	fg.Go("book", func(ctx context.Context) error {
		var err error
		b, err = s.repo.GetByID(ctx, id)
		return err
	})
	fg.Go("book_genres", func(ctx context.Context) error {
		var err error
		genres, err = s.repo.GenresOfBook(ctx, id)
		return err
	})
	fg.Go("book_instances", func(ctx context.Context) error {
		var err error
		instances, err = s.repo.InstancesByBook(ctx, id)
		return err
	})
	if err := fg.Wait(); err != nil {
		return nil, err
	}

	return &book.DetailPage{
		Page:      b.Title,
		Title:     "Local Library",
		Book:      b.ToResponse(),
		Genres:    genres,
		Instances: instances,
	}, nil
}

// lookups fetches the author dropdown and genre checkbox lists together.
func (s *bookService) lookups(ctx context.Context) ([]book.AuthorOption, []book.GenreOption, error) {
	var (
		authors []book.AuthorOption
		genres  []book.GenreOption
	)

	fg := fanout.New(ctx)
	fg.Go("authors", func(ctx context.Context) error {
		var err error
		authors, err = s.repo.AuthorOptions(ctx)
		return err
	})
	fg.Go("genres", func(ctx context.Context) error {
		var err error
		genres, err = s.repo.GenreOptions(ctx)
		return err
	})
	if err := fg.Wait(); err != nil {
		return nil, nil, err
	}
	return authors, genres, nil
}

func (s *bookService) CreateForm(ctx context.Context) (*book.FormPage, error) {
	authors, genres, err := s.lookups(ctx)
	if err != nil {
		return nil, err
	}

	return &book.FormPage{
		Page:    "Add New Book",
		Title:   "Local Library",
		Authors: authors,
		Genres:  genres,
	}, nil
}

func (s *bookService) Create(ctx context.Context, in book.FormInput) (*book.WriteResult, error) {
	in.Sanitize()

	if err := in.Validate(); err != nil {
		fields, ok := shared.FieldErrors(err)
		if !ok {
			return nil, err
		}
		form, err := s.rejectedForm(ctx, "Add New Book", &in, fields)
		if err != nil {
			return nil, err
		}
		return &book.WriteResult{Form: form}, nil
	}

	entity, err := in.ToEntity()
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Insert(ctx, entity)
	if err != nil {
		return nil, fmt.Errorf("failed to create book: %w", err)
	}
	return &book.WriteResult{Book: created.ToResponse()}, nil
}

// rejectedForm re-renders the form with the submitted input, its field
// errors, and the genre selections the client had made. Selection is by id,
// not by position in the list.
func (s *bookService) rejectedForm(ctx context.Context, pageTitle string, in *book.FormInput, fields map[string]string) (*book.FormPage, error) {
	authors, genres, err := s.lookups(ctx)
	if err != nil {
		return nil, err
	}
	for i := range genres {
		genres[i].Checked = in.Selected(genres[i].ID)
	}

	return &book.FormPage{
		Page:    pageTitle,
		Title:   "Local Library",
		Book:    in,
		Authors: authors,
		Genres:  genres,
		Errors:  fields,
	}, nil
}

// UpdateForm fans out the book read and both lookup lists, then pre-checks
// the genres already attached to the book.
func (s *bookService) UpdateForm(ctx context.Context, id uuid.UUID) (*book.FormPage, error) {
	var (
		b       *book.Book
		authors []book.AuthorOption
		genres  []book.GenreOption
	)

	fg := fanout.New(ctx)
	fg.Go("book", func(ctx context.Context) error {
		var err error
		b, err = s.repo.GetByID(ctx, id)
		return err
	})
	fg.Go("authors", func(ctx context.Context) error {
		var err error
		authors, err = s.repo.AuthorOptions(ctx)
		return err
	})
	fg.Go("genres", func(ctx context.Context) error {
		var err error
		genres, err = s.repo.GenreOptions(ctx)
		return err
	})
	if err := fg.Wait(); err != nil {
		return nil, err
	}

	in := book.FormInputFromEntity(b)
	for i := range genres {
		genres[i].Checked = in.Selected(genres[i].ID)
	}

	return &book.FormPage{
		Page:    "Update Book",
		Title:   "Local Library",
		Book:    in,
		Authors: authors,
		Genres:  genres,
	}, nil
}

func (s *bookService) Update(ctx context.Context, id uuid.UUID, in book.FormInput) (*book.WriteResult, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	in.Sanitize()

	if err := in.Validate(); err != nil {
		fields, ok := shared.FieldErrors(err)
		if !ok {
			return nil, err
		}
		form, err := s.rejectedForm(ctx, "Update Book", &in, fields)
		if err != nil {
			return nil, err
		}
		return &book.WriteResult{Form: form}, nil
	}

	entity, err := in.ToEntity()
	if err != nil {
		return nil, err
	}
	entity.ID = id

	updated, err := s.repo.Update(ctx, entity)
	if err != nil {
		return nil, fmt.Errorf("failed to update book: %w", err)
	}
	return &book.WriteResult{Book: updated.ToResponse()}, nil
}

func (s *bookService) DeleteForm(ctx context.Context, id uuid.UUID) (*book.DeletePage, error) {
	var (
		b         *book.Book
		instances []book.InstanceSummary
	)

	fg := fanout.New(ctx)
	fg.Go("book", func(ctx context.Context) error {
		var err error
		b, err = s.repo.GetByID(ctx, id)
		return err
	})
	fg.Go("book_instances", func(ctx context.Context) error {
		var err error
		instances, err = s.repo.InstancesByBook(ctx, id)
		return err
	})
	if err := fg.Wait(); err != nil {
		return nil, err
	}

	return &book.DeletePage{
		Page:      "Delete " + b.Title,
		Title:     "Local Library",
		Book:      b.ToResponse(),
		Instances: instances,
	}, nil
}

// Delete refuses while copies of the book still exist and returns them as
// the blocking records. The dependent check and the delete are separate
// statements, so a copy created in between can orphan; the catalog tolerates
// that the same way the rest of the write path tolerates lost updates.
func (s *bookService) Delete(ctx context.Context, id uuid.UUID) (*book.DeleteResult, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	instances, err := s.repo.InstancesByBook(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(instances) > 0 {
		return &book.DeleteResult{
			Blocked: &book.DeletePage{
				Page:      "Delete " + b.Title,
				Title:     "Local Library",
				Book:      b.ToResponse(),
				Instances: instances,
			},
		}, nil
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return &book.DeleteResult{Deleted: true}, nil
}
