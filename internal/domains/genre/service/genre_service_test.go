package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-catalog/internal/domains/genre"
)

type fakeRepository struct {
	genres map[uuid.UUID]genre.Genre
	books  map[uuid.UUID][]genre.BookSummary
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		genres: make(map[uuid.UUID]genre.Genre),
		books:  make(map[uuid.UUID][]genre.BookSummary),
	}
}

func (f *fakeRepository) add(g genre.Genre) genre.Genre {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	f.genres[g.ID] = g
	return g
}

func (f *fakeRepository) List(ctx context.Context) ([]genre.Genre, error) {
	out := make([]genre.Genre, 0, len(f.genres))
	for _, g := range f.genres {
		out = append(out, g)
	}
	return out, nil
}

func (f *fakeRepository) GetByID(ctx context.Context, id uuid.UUID) (*genre.Genre, error) {
	g, ok := f.genres[id]
	if !ok {
		return nil, genre.ErrGenreNotFound
	}
	return &g, nil
}

func (f *fakeRepository) Insert(ctx context.Context, g *genre.Genre) (*genre.Genre, error) {
	created := f.add(*g)
	return &created, nil
}

func (f *fakeRepository) Update(ctx context.Context, g *genre.Genre) (*genre.Genre, error) {
	if _, ok := f.genres[g.ID]; !ok {
		return nil, genre.ErrGenreNotFound
	}
	f.genres[g.ID] = *g
	updated := *g
	return &updated, nil
}

func (f *fakeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.genres[id]; !ok {
		return genre.ErrGenreNotFound
	}
	delete(f.genres, id)
	return nil
}

func (f *fakeRepository) Count(ctx context.Context) (int64, error) {
	return int64(len(f.genres)), nil
}

func (f *fakeRepository) BooksInGenre(ctx context.Context, genreID uuid.UUID) ([]genre.BookSummary, error) {
	return f.books[genreID], nil
}

func TestGenreService_Create(t *testing.T) {
	repo := newFakeRepository()
	svc := NewGenreService(repo)

	t.Run("valid input commits", func(t *testing.T) {
		res, err := svc.Create(context.Background(), genre.FormInput{Name: "Fantasy"})
		require.NoError(t, err)
		require.True(t, res.Committed())
		assert.Equal(t, "Fantasy", res.Genre.Name)
	})

	t.Run("rejected input carries field errors", func(t *testing.T) {
		res, err := svc.Create(context.Background(), genre.FormInput{Name: " "})
		require.NoError(t, err)
		require.False(t, res.Committed())

		assert.Equal(t, "Genre name must be specified", res.Form.Errors["name"])
		assert.Len(t, repo.genres, 1)
	})
}

func TestGenreService_Detail(t *testing.T) {
	repo := newFakeRepository()
	svc := NewGenreService(repo)

	stored := repo.add(genre.Genre{Name: "Fantasy"})
	repo.books[stored.ID] = []genre.BookSummary{{ID: uuid.New(), Title: "The Hobbit"}}

	page, err := svc.Detail(context.Background(), stored.ID)
	require.NoError(t, err)

	assert.Equal(t, "Fantasy", page.Page)
	assert.Len(t, page.Books, 1)
}

func TestGenreService_Delete_AlwaysAllowed(t *testing.T) {
	repo := newFakeRepository()
	svc := NewGenreService(repo)

	// Books referencing the genre do not block its deletion.
	stored := repo.add(genre.Genre{Name: "Fantasy"})
	repo.books[stored.ID] = []genre.BookSummary{{ID: uuid.New(), Title: "The Hobbit"}}

	res, err := svc.Delete(context.Background(), stored.ID)
	require.NoError(t, err)

	assert.True(t, res.Deleted)
	assert.NotContains(t, repo.genres, stored.ID)
}

func TestGenreService_Delete_UnknownID(t *testing.T) {
	svc := NewGenreService(newFakeRepository())

	_, err := svc.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, genre.ErrGenreNotFound)
}
