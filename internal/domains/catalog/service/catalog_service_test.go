package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-catalog/internal/domains/bookinstance"
)

type fakeCounter struct {
	count int64
	err   error
}

func (f fakeCounter) Count(ctx context.Context) (int64, error) {
	return f.count, f.err
}

type fakeCopyCounter struct {
	total     int64
	available int64
	err       error
}

func (f fakeCopyCounter) Count(ctx context.Context) (int64, error) {
	return f.total, f.err
}

func (f fakeCopyCounter) CountByStatus(ctx context.Context, status bookinstance.Status) (int64, error) {
	if status == bookinstance.StatusAvailable {
		return f.available, f.err
	}
	return 0, f.err
}

func TestCatalogService_Dashboard(t *testing.T) {
	svc := NewCatalogService(
		fakeCounter{count: 4},
		fakeCopyCounter{total: 9, available: 3},
		fakeCounter{count: 2},
		fakeCounter{count: 5},
	)

	page, err := svc.Dashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Home", page.Page)
	assert.Equal(t, int64(4), page.BookCount)
	assert.Equal(t, int64(9), page.BookInstanceCount)
	assert.Equal(t, int64(3), page.BookInstanceAvailableCount)
	assert.Equal(t, int64(2), page.AuthorCount)
	assert.Equal(t, int64(5), page.GenreCount)
}

func TestCatalogService_Dashboard_EmptyCatalog(t *testing.T) {
	svc := NewCatalogService(fakeCounter{}, fakeCopyCounter{}, fakeCounter{}, fakeCounter{})

	page, err := svc.Dashboard(context.Background())
	require.NoError(t, err)

	assert.Zero(t, page.BookCount)
	assert.Zero(t, page.BookInstanceCount)
	assert.Zero(t, page.BookInstanceAvailableCount)
	assert.Zero(t, page.AuthorCount)
	assert.Zero(t, page.GenreCount)
}

func TestCatalogService_Dashboard_FailsFast(t *testing.T) {
	boom := errors.New("connection refused")
	svc := NewCatalogService(
		fakeCounter{err: boom},
		fakeCopyCounter{total: 9, available: 3},
		fakeCounter{count: 2},
		fakeCounter{count: 5},
	)

	page, err := svc.Dashboard(context.Background())
	assert.Nil(t, page)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "book_count")
}
