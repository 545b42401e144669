package service

import (
	"context"

	"library-catalog/internal/domains/bookinstance"
	"library-catalog/internal/domains/catalog"
	"library-catalog/pkg/fanout"
)

type catalogService struct {
	books     catalog.Counter
	instances catalog.CopyCounter
	authors   catalog.Counter
	genres    catalog.Counter
}

func NewCatalogService(books catalog.Counter, instances catalog.CopyCounter, authors, genres catalog.Counter) catalog.Service {
	return &catalogService{
		books:     books,
		instances: instances,
		authors:   authors,
		genres:    genres,
	}
}

// Dashboard runs the five counts concurrently and fails fast if any of them
// does. A freshly provisioned catalog renders all zeros.
func (s *catalogService) Dashboard(ctx context.Context) (*catalog.DashboardPage, error) {
	page := &catalog.DashboardPage{
		Page:  "Home",
		Title: "Local Library",
	}

	fg := fanout.New(ctx)
	fg.Go("book_count", func(ctx context.Context) error {
		var err error
		page.BookCount, err = s.books.Count(ctx)
		return err
	})
	fg.Go("book_instance_count", func(ctx context.Context) error {
		var err error
		page.BookInstanceCount, err = s.instances.Count(ctx)
		return err
	})
	fg.Go("book_instance_available_count", func(ctx context.Context) error {
		var err error
		page.BookInstanceAvailableCount, err = s.instances.CountByStatus(ctx, bookinstance.StatusAvailable)
		return err
	})
	fg.Go("author_count", func(ctx context.Context) error {
		var err error
		page.AuthorCount, err = s.authors.Count(ctx)
		return err
	})
	fg.Go("genre_count", func(ctx context.Context) error {
		var err error
		page.GenreCount, err = s.genres.Count(ctx)
		return err
	})
	if err := fg.Wait(); err != nil {
		return nil, err
	}
	return page, nil
}
