package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"library-catalog/internal/domains/genre"
	"library-catalog/internal/shared"
	"library-catalog/pkg/fanout"
)

type genreService struct {
	repo genre.Repository
}

func NewGenreService(repo genre.Repository) genre.Service {
	return &genreService{repo: repo}
}

func (s *genreService) List(ctx context.Context) (*genre.ListPage, error) {
	genres, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	page := &genre.ListPage{
		Page:   "Genres",
		Title:  "Local Library",
		Genres: make([]genre.Response, 0, len(genres)),
	}
	for i := range genres {
		page.Genres = append(page.Genres, *genres[i].ToResponse())
	}
	return page, nil
}

// Detail fans out the genre read and the books-in-genre read.
func (s *genreService) Detail(ctx context.Context, id uuid.UUID) (*genre.DetailPage, error) {
	var (
		g     *genre.Genre
		books []genre.BookSummary
	)

	fg := fanout.New(ctx)
	fg.Go("genre", func(ctx context.Context) error {
		var err error
		g, err = s.repo.GetByID(ctx, id)
		return err
	})
	fg.Go("genre_books", func(ctx context.Context) error {
		var err error
		books, err = s.repo.BooksInGenre(ctx, id)
		return err
	})
	if err := fg.Wait(); err != nil {
		return nil, err
	}

	return &genre.DetailPage{
		Page:  g.Name,
		Title: "Local Library",
		Genre: g.ToResponse(),
		Books: books,
	}, nil
}

func (s *genreService) CreateForm(ctx context.Context) (*genre.FormPage, error) {
	return &genre.FormPage{
		Page:  "Add New Genre",
		Title: "Local Library",
	}, nil
}

func (s *genreService) Create(ctx context.Context, in genre.FormInput) (*genre.WriteResult, error) {
	in.Sanitize()

	if err := in.Validate(); err != nil {
		fields, ok := shared.FieldErrors(err)
		if !ok {
			return nil, err
		}
		return &genre.WriteResult{
			Form: &genre.FormPage{
				Page:   "Add New Genre",
				Title:  "Local Library",
				Genre:  &in,
				Errors: fields,
			},
		}, nil
	}

	created, err := s.repo.Insert(ctx, in.ToEntity())
	if err != nil {
		return nil, fmt.Errorf("failed to create genre: %w", err)
	}
	return &genre.WriteResult{Genre: created.ToResponse()}, nil
}

func (s *genreService) UpdateForm(ctx context.Context, id uuid.UUID) (*genre.FormPage, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &genre.FormPage{
		Page:  "Update " + current.Name,
		Title: "Local Library",
		Genre: &genre.FormInput{Name: current.Name},
	}, nil
}

func (s *genreService) Update(ctx context.Context, id uuid.UUID, in genre.FormInput) (*genre.WriteResult, error) {
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
		return &genre.WriteResult{
			Form: &genre.FormPage{
				Page:   "Update " + current.Name,
				Title:  "Local Library",
				Genre:  &in,
				Errors: fields,
			},
		}, nil
	}

	entity := in.ToEntity()
	entity.ID = id

	updated, err := s.repo.Update(ctx, entity)
	if err != nil {
		return nil, fmt.Errorf("failed to update genre: %w", err)
	}
	return &genre.WriteResult{Genre: updated.ToResponse()}, nil
}

func (s *genreService) DeleteForm(ctx context.Context, id uuid.UUID) (*genre.DeletePage, error) {
	g, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &genre.DeletePage{
		Page:  "Delete " + g.Name,
		Title: "Local Library",
		Genre: g.ToResponse(),
	}, nil
}

// Delete always succeeds for an existing genre: nothing in the graph
// treats a genre as a blocking dependent.
func (s *genreService) Delete(ctx context.Context, id uuid.UUID) (*genre.DeleteResult, error) {
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return &genre.DeleteResult{Deleted: true}, nil
}
