package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"library-catalog/internal/domains/author"
	"library-catalog/pkg/cache"
)

// postgresRepository implements author.Repository with pgxpool and a Redis
// read-through cache on single-record reads.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) author.Repository {
	return &postgresRepository{pool: pool, cache: cache}
}

const (
	authorCacheKeyPrefix = "author:"
	cacheTTL             = 15 * time.Minute
)

const authorColumns = `id, first_name, last_name, date_of_birth, date_of_death, created_at, updated_at`

func scanAuthor(row pgx.Row) (*author.Author, error) {
	var a author.Author
	err := row.Scan(
		&a.ID,
		&a.FirstName,
		&a.LastName,
		&a.DateOfBirth,
		&a.DateOfDeath,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// List returns every author sorted by last name.
func (r *postgresRepository) List(ctx context.Context) ([]author.Author, error) {
	query := `SELECT ` + authorColumns + ` FROM authors ORDER BY last_name ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query authors: %w", err)
	}
	defer rows.Close()

	var authors []author.Author
	for rows.Next() {
		a, err := scanAuthor(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating authors: %w", err)
	}
	return authors, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	cacheKey := authorCacheKeyPrefix + id.String()

	var cached author.Author
	if found, err := r.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return &cached, nil
	}

	query := `SELECT ` + authorColumns + ` FROM authors WHERE id = $1`

	a, err := scanAuthor(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author by id: %w", err)
	}

	if err := r.cache.Set(ctx, cacheKey, a, cacheTTL); err != nil {
		log.Warn().Err(err).Str("key", cacheKey).Msg("cache set failed")
	}
	return a, nil
}

func (r *postgresRepository) Insert(ctx context.Context, a *author.Author) (*author.Author, error) {
	query := `
        INSERT INTO authors (first_name, last_name, date_of_birth, date_of_death)
        VALUES ($1, $2, $3, $4)
        RETURNING ` + authorColumns

	created, err := scanAuthor(r.pool.QueryRow(
		ctx, query,
		a.FirstName, a.LastName, a.DateOfBirth, a.DateOfDeath,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to insert author: %w", err)
	}
	return created, nil
}

func (r *postgresRepository) Update(ctx context.Context, a *author.Author) (*author.Author, error) {
	query := `
        UPDATE authors
        SET first_name = $1,
            last_name = $2,
            date_of_birth = $3,
            date_of_death = $4,
            updated_at = NOW()
        WHERE id = $5
        RETURNING ` + authorColumns

	updated, err := scanAuthor(r.pool.QueryRow(
		ctx, query,
		a.FirstName, a.LastName, a.DateOfBirth, a.DateOfDeath, a.ID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to update author: %w", err)
	}

	// A failed invalidation serves the stale record until the TTL expires.
	if err := r.cache.Delete(ctx, authorCacheKeyPrefix+a.ID.String()); err != nil {
		log.Warn().Err(err).Str("author_id", a.ID.String()).Msg("cache invalidation failed")
	}
	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM authors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete author: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return author.ErrAuthorNotFound
	}

	if err := r.cache.Delete(ctx, authorCacheKeyPrefix+id.String()); err != nil {
		log.Warn().Err(err).Str("author_id", id.String()).Msg("cache invalidation failed")
	}
	return nil
}

func (r *postgresRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM authors`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count authors: %w", err)
	}
	return count, nil
}

// BooksByAuthor lists the books referencing this author; the integrity
// guard treats any result as a blocking dependent.
func (r *postgresRepository) BooksByAuthor(ctx context.Context, authorID uuid.UUID) ([]author.BookSummary, error) {
	query := `
        SELECT id, title, summary
        FROM books
        WHERE author_id = $1
        ORDER BY title ASC
    `

	rows, err := r.pool.Query(ctx, query, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to query books by author: %w", err)
	}
	defer rows.Close()

	var books []author.BookSummary
	for rows.Next() {
		var b author.BookSummary
		if err := rows.Scan(&b.ID, &b.Title, &b.Summary); err != nil {
			return nil, fmt.Errorf("failed to scan book summary: %w", err)
		}
		b.URL = "/catalog/book/" + b.ID.String()
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating books by author: %w", err)
	}
	return books, nil
}
