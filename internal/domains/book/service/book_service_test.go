package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-catalog/internal/domains/book"
)

type fakeRepository struct {
	books     map[uuid.UUID]book.Book
	instances map[uuid.UUID][]book.InstanceSummary
	authors   []book.AuthorOption
	genres    []book.GenreOption
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		books:     make(map[uuid.UUID]book.Book),
		instances: make(map[uuid.UUID][]book.InstanceSummary),
	}
}

func (f *fakeRepository) add(b book.Book) book.Book {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	f.books[b.ID] = b
	return b
}

func (f *fakeRepository) List(ctx context.Context) ([]book.Book, error) {
	out := make([]book.Book, 0, len(f.books))
	for _, b := range f.books {
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeRepository) GetByID(ctx context.Context, id uuid.UUID) (*book.Book, error) {
	b, ok := f.books[id]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	return &b, nil
}

func (f *fakeRepository) Insert(ctx context.Context, b *book.Book) (*book.Book, error) {
	created := f.add(*b)
	return &created, nil
}

func (f *fakeRepository) Update(ctx context.Context, b *book.Book) (*book.Book, error) {
	if _, ok := f.books[b.ID]; !ok {
		return nil, book.ErrBookNotFound
	}
	f.books[b.ID] = *b
	updated := *b
	return &updated, nil
}

func (f *fakeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.books[id]; !ok {
		return book.ErrBookNotFound
	}
	delete(f.books, id)
	return nil
}

func (f *fakeRepository) Count(ctx context.Context) (int64, error) {
	return int64(len(f.books)), nil
}

func (f *fakeRepository) GenresOfBook(ctx context.Context, bookID uuid.UUID) ([]book.GenreSummary, error) {
	b, ok := f.books[bookID]
	if !ok {
		return nil, nil
	}
	var out []book.GenreSummary
	for _, opt := range f.genres {
		for _, id := range b.GenreIDs {
			if id == opt.ID {
				out = append(out, book.GenreSummary{ID: opt.ID, Name: opt.Name})
			}
		}
	}
	return out, nil
}

func (f *fakeRepository) InstancesByBook(ctx context.Context, bookID uuid.UUID) ([]book.InstanceSummary, error) {
	return f.instances[bookID], nil
}

func (f *fakeRepository) AuthorOptions(ctx context.Context) ([]book.AuthorOption, error) {
	return f.authors, nil
}

func (f *fakeRepository) GenreOptions(ctx context.Context) ([]book.GenreOption, error) {
	// Fresh copies so Checked mutations never leak between calls.
	out := make([]book.GenreOption, len(f.genres))
	copy(out, f.genres)
	return out, nil
}

func seedLookups(repo *fakeRepository) (uuid.UUID, uuid.UUID, uuid.UUID) {
	authorID := uuid.New()
	repo.authors = []book.AuthorOption{{ID: authorID, Name: "Austen, Jane"}}

	g1, g2 := uuid.New(), uuid.New()
	repo.genres = []book.GenreOption{
		{ID: g1, Name: "Fiction"},
		{ID: g2, Name: "Romance"},
	}
	return authorID, g1, g2
}

func TestBookService_Create(t *testing.T) {
	repo := newFakeRepository()
	svc := NewBookService(repo)
	authorID, g1, _ := seedLookups(repo)

	t.Run("valid input commits", func(t *testing.T) {
		res, err := svc.Create(context.Background(), book.FormInput{
			Title:   "Emma",
			Author:  authorID.String(),
			Summary: "A novel",
			ISBN:    "9780141439587",
			Genre:   book.GenreIDList{g1.String()},
		})
		require.NoError(t, err)
		require.True(t, res.Committed())

		stored := repo.books[res.Book.ID]
		assert.Equal(t, authorID, stored.AuthorID)
		assert.Equal(t, []uuid.UUID{g1}, stored.GenreIDs)
	})

	t.Run("rejected input re-renders with selections kept", func(t *testing.T) {
		res, err := svc.Create(context.Background(), book.FormInput{
			Title: "",
			Genre: book.GenreIDList{g1.String()},
		})
		require.NoError(t, err)
		require.False(t, res.Committed())

		assert.Equal(t, "Title must not be empty", res.Form.Errors["title"])
		require.Len(t, res.Form.Genres, 2)
		assert.True(t, res.Form.Genres[0].Checked)
		assert.False(t, res.Form.Genres[1].Checked)
		assert.Len(t, res.Form.Authors, 1)
	})
}

func TestBookService_UpdateForm_PreChecksAttachedGenres(t *testing.T) {
	repo := newFakeRepository()
	svc := NewBookService(repo)
	authorID, _, g2 := seedLookups(repo)

	stored := repo.add(book.Book{
		Title:    "Emma",
		AuthorID: authorID,
		Summary:  "A novel",
		ISBN:     "9780141439587",
		GenreIDs: []uuid.UUID{g2},
	})

	page, err := svc.UpdateForm(context.Background(), stored.ID)
	require.NoError(t, err)

	require.Len(t, page.Genres, 2)
	// Selection is by genre identity, not list position.
	assert.False(t, page.Genres[0].Checked)
	assert.True(t, page.Genres[1].Checked)
	assert.Equal(t, authorID.String(), page.Book.Author)
}

func TestBookService_Update_Idempotent(t *testing.T) {
	repo := newFakeRepository()
	svc := NewBookService(repo)
	authorID, g1, _ := seedLookups(repo)

	stored := repo.add(book.Book{
		Title:    "Emma",
		AuthorID: authorID,
		Summary:  "A novel",
		ISBN:     "9780141439587",
		GenreIDs: []uuid.UUID{g1},
	})

	in := book.FormInput{
		Title:   "Emma",
		Author:  authorID.String(),
		Summary: "A novel",
		ISBN:    "9780141439587",
		Genre:   book.GenreIDList{g1.String()},
	}

	first, err := svc.Update(context.Background(), stored.ID, in)
	require.NoError(t, err)
	second, err := svc.Update(context.Background(), stored.ID, in)
	require.NoError(t, err)

	assert.Equal(t, first.Book, second.Book)
	assert.Len(t, repo.books, 1)
}

func TestBookService_Delete(t *testing.T) {
	repo := newFakeRepository()
	svc := NewBookService(repo)
	authorID, _, _ := seedLookups(repo)

	blocked := repo.add(book.Book{Title: "Emma", AuthorID: authorID})
	copyID := uuid.New()
	repo.instances[blocked.ID] = []book.InstanceSummary{
		{ID: copyID, Imprint: "Penguin Classics", Status: "Available"},
	}

	free := repo.add(book.Book{Title: "Persuasion", AuthorID: authorID})

	t.Run("blocked while copies exist", func(t *testing.T) {
		res, err := svc.Delete(context.Background(), blocked.ID)
		require.NoError(t, err)

		assert.False(t, res.Deleted)
		require.NotNil(t, res.Blocked)
		require.Len(t, res.Blocked.Instances, 1)
		assert.Equal(t, copyID, res.Blocked.Instances[0].ID)
		assert.Contains(t, repo.books, blocked.ID)
	})

	t.Run("deletes when no copies remain", func(t *testing.T) {
		res, err := svc.Delete(context.Background(), free.ID)
		require.NoError(t, err)

		assert.True(t, res.Deleted)
		assert.NotContains(t, repo.books, free.ID)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.Delete(context.Background(), uuid.New())
		assert.ErrorIs(t, err, book.ErrBookNotFound)
	})
}

func TestBookService_Detail(t *testing.T) {
	repo := newFakeRepository()
	svc := NewBookService(repo)
	authorID, g1, _ := seedLookups(repo)

	stored := repo.add(book.Book{
		Title:      "Emma",
		AuthorID:   authorID,
		AuthorName: "Austen, Jane",
		GenreIDs:   []uuid.UUID{g1},
	})
	repo.instances[stored.ID] = []book.InstanceSummary{
		{ID: uuid.New(), Imprint: "Penguin Classics", Status: "Loaned"},
	}

	page, err := svc.Detail(context.Background(), stored.ID)
	require.NoError(t, err)

	assert.Equal(t, "Emma", page.Page)
	assert.Equal(t, "Austen, Jane", page.Book.AuthorName)
	require.Len(t, page.Genres, 1)
	assert.Equal(t, "Fiction", page.Genres[0].Name)
	assert.Len(t, page.Instances, 1)
}
