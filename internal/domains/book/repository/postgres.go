package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"library-catalog/internal/domains/book"
	"library-catalog/pkg/cache"
)

// postgresRepository implements book.Repository with pgxpool. The list read
// is cached in Redis; every write clears the whole book keyspace because a
// title or author change invalidates the list as well as the record.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) book.Repository {
	return &postgresRepository{pool: pool, cache: cache}
}

const (
	bookListCacheKey   = "books:list"
	bookCacheKeyPrefix = "books:id:"
	cacheTTL           = 15 * time.Minute
)

const dateMed = "Jan 2, 2006"

// bookSelect expands the author name and aggregates the attached genre ids
// in one round trip. The text cast keeps the array scannable as text[].
const bookSelect = `
    SELECT b.id, b.title, b.author_id, b.summary, b.isbn, b.created_at, b.updated_at,
           a.last_name || ', ' || a.first_name AS author_name,
           COALESCE(array_agg(bg.genre_id::text) FILTER (WHERE bg.genre_id IS NOT NULL), '{}') AS genre_ids
    FROM books b
    JOIN authors a ON a.id = b.author_id
    LEFT JOIN book_genres bg ON bg.book_id = b.id
`

const bookGroupBy = ` GROUP BY b.id, a.last_name, a.first_name`

func scanBook(row pgx.Row) (*book.Book, error) {
	var (
		b        book.Book
		genreIDs []string
	)
	err := row.Scan(
		&b.ID,
		&b.Title,
		&b.AuthorID,
		&b.Summary,
		&b.ISBN,
		&b.CreatedAt,
		&b.UpdatedAt,
		&b.AuthorName,
		pq.Array(&genreIDs),
	)
	if err != nil {
		return nil, err
	}

	b.GenreIDs = make([]uuid.UUID, 0, len(genreIDs))
	for _, raw := range genreIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid genre id in row: %w", err)
		}
		b.GenreIDs = append(b.GenreIDs, id)
	}
	return &b, nil
}

func (r *postgresRepository) List(ctx context.Context) ([]book.Book, error) {
	var cached []book.Book
	if found, err := r.cache.Get(ctx, bookListCacheKey, &cached); err == nil && found {
		return cached, nil
	}

	rows, err := r.pool.Query(ctx, bookSelect+bookGroupBy+` ORDER BY b.title ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query books: %w", err)
	}
	defer rows.Close()

	var books []book.Book
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating books: %w", err)
	}

	if err := r.cache.Set(ctx, bookListCacheKey, books, cacheTTL); err != nil {
		log.Warn().Err(err).Str("key", bookListCacheKey).Msg("cache set failed")
	}
	return books, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*book.Book, error) {
	cacheKey := bookCacheKeyPrefix + id.String()

	var cached book.Book
	if found, err := r.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return &cached, nil
	}

	b, err := scanBook(r.pool.QueryRow(ctx, bookSelect+` WHERE b.id = $1`+bookGroupBy, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, book.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book by id: %w", err)
	}

	if err := r.cache.Set(ctx, cacheKey, b, cacheTTL); err != nil {
		log.Warn().Err(err).Str("key", cacheKey).Msg("cache set failed")
	}
	return b, nil
}

// Insert writes the book row and its genre links in one transaction.
func (r *postgresRepository) Insert(ctx context.Context, b *book.Book) (*book.Book, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var id uuid.UUID
	err = tx.QueryRow(ctx, `
        INSERT INTO books (title, author_id, summary, isbn)
        VALUES ($1, $2, $3, $4)
        RETURNING id`,
		b.Title, b.AuthorID, b.Summary, b.ISBN,
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("failed to insert book: %w", err)
	}

	if err := replaceGenreLinks(ctx, tx, id, b.GenreIDs); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit book insert: %w", err)
	}

	r.invalidate(ctx)
	return r.GetByID(ctx, id)
}

func (r *postgresRepository) Update(ctx context.Context, b *book.Book) (*book.Book, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	cmdTag, err := tx.Exec(ctx, `
        UPDATE books
        SET title = $1, author_id = $2, summary = $3, isbn = $4, updated_at = NOW()
        WHERE id = $5`,
		b.Title, b.AuthorID, b.Summary, b.ISBN, b.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update book: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return nil, book.ErrBookNotFound
	}

	if err := replaceGenreLinks(ctx, tx, b.ID, b.GenreIDs); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit book update: %w", err)
	}

	r.invalidate(ctx)
	return r.GetByID(ctx, b.ID)
}

// invalidate clears the whole book keyspace after a write. A failure serves
// stale data until the TTL expires, so it is logged rather than returned.
func (r *postgresRepository) invalidate(ctx context.Context) {
	if err := r.cache.DeletePattern(ctx, "books:*"); err != nil {
		log.Warn().Err(err).Msg("cache invalidation failed")
	}
}

func replaceGenreLinks(ctx context.Context, tx pgx.Tx, bookID uuid.UUID, genreIDs []uuid.UUID) error {
	if _, err := tx.Exec(ctx, `DELETE FROM book_genres WHERE book_id = $1`, bookID); err != nil {
		return fmt.Errorf("failed to clear genre links: %w", err)
	}
	for _, genreID := range genreIDs {
		if _, err := tx.Exec(ctx,
			`INSERT INTO book_genres (book_id, genre_id) VALUES ($1, $2)`,
			bookID, genreID,
		); err != nil {
			return fmt.Errorf("failed to link genre %s: %w", genreID, err)
		}
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM book_genres WHERE book_id = $1`, id); err != nil {
		return fmt.Errorf("failed to clear genre links: %w", err)
	}

	cmdTag, err := tx.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return book.ErrBookNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit book delete: %w", err)
	}

	r.invalidate(ctx)
	return nil
}

func (r *postgresRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM books`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count books: %w", err)
	}
	return count, nil
}

func (r *postgresRepository) GenresOfBook(ctx context.Context, bookID uuid.UUID) ([]book.GenreSummary, error) {
	query := `
        SELECT g.id, g.name
        FROM genres g
        JOIN book_genres bg ON bg.genre_id = g.id
        WHERE bg.book_id = $1
        ORDER BY g.name ASC
    `

	rows, err := r.pool.Query(ctx, query, bookID)
	if err != nil {
		return nil, fmt.Errorf("failed to query genres of book: %w", err)
	}
	defer rows.Close()

	var genres []book.GenreSummary
	for rows.Next() {
		var g book.GenreSummary
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, fmt.Errorf("failed to scan genre summary: %w", err)
		}
		g.URL = "/catalog/genre/" + g.ID.String()
		genres = append(genres, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating genres of book: %w", err)
	}
	return genres, nil
}

func (r *postgresRepository) InstancesByBook(ctx context.Context, bookID uuid.UUID) ([]book.InstanceSummary, error) {
	query := `
        SELECT id, imprint, status, due_back
        FROM book_instances
        WHERE book_id = $1
        ORDER BY imprint ASC
    `

	rows, err := r.pool.Query(ctx, query, bookID)
	if err != nil {
		return nil, fmt.Errorf("failed to query instances by book: %w", err)
	}
	defer rows.Close()

	var instances []book.InstanceSummary
	for rows.Next() {
		var (
			inst    book.InstanceSummary
			dueBack *time.Time
		)
		if err := rows.Scan(&inst.ID, &inst.Imprint, &inst.Status, &dueBack); err != nil {
			return nil, fmt.Errorf("failed to scan instance summary: %w", err)
		}
		if dueBack != nil {
			inst.DueBackFormatted = dueBack.Format(dateMed)
		}
		inst.URL = "/catalog/bookinstance/" + inst.ID.String()
		instances = append(instances, inst)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating instances by book: %w", err)
	}
	return instances, nil
}

func (r *postgresRepository) AuthorOptions(ctx context.Context) ([]book.AuthorOption, error) {
	query := `
        SELECT id, last_name || ', ' || first_name AS name
        FROM authors
        ORDER BY last_name ASC
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query author options: %w", err)
	}
	defer rows.Close()

	var options []book.AuthorOption
	for rows.Next() {
		var opt book.AuthorOption
		if err := rows.Scan(&opt.ID, &opt.Name); err != nil {
			return nil, fmt.Errorf("failed to scan author option: %w", err)
		}
		options = append(options, opt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating author options: %w", err)
	}
	return options, nil
}

func (r *postgresRepository) GenreOptions(ctx context.Context) ([]book.GenreOption, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name FROM genres ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query genre options: %w", err)
	}
	defer rows.Close()

	var options []book.GenreOption
	for rows.Next() {
		var opt book.GenreOption
		if err := rows.Scan(&opt.ID, &opt.Name); err != nil {
			return nil, fmt.Errorf("failed to scan genre option: %w", err)
		}
		options = append(options, opt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating genre options: %w", err)
	}
	return options, nil
}
