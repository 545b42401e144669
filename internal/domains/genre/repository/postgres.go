package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-catalog/internal/domains/genre"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) genre.Repository {
	return &postgresRepository{pool: pool}
}

const genreColumns = `id, name, created_at, updated_at`

func scanGenre(row pgx.Row) (*genre.Genre, error) {
	var g genre.Genre
	if err := row.Scan(&g.ID, &g.Name, &g.CreatedAt, &g.UpdatedAt); err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *postgresRepository) List(ctx context.Context) ([]genre.Genre, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+genreColumns+` FROM genres ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query genres: %w", err)
	}
	defer rows.Close()

	var genres []genre.Genre
	for rows.Next() {
		g, err := scanGenre(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan genre: %w", err)
		}
		genres = append(genres, *g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating genres: %w", err)
	}
	return genres, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*genre.Genre, error) {
	g, err := scanGenre(r.pool.QueryRow(ctx, `SELECT `+genreColumns+` FROM genres WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, genre.ErrGenreNotFound
		}
		return nil, fmt.Errorf("failed to get genre by id: %w", err)
	}
	return g, nil
}

func (r *postgresRepository) Insert(ctx context.Context, g *genre.Genre) (*genre.Genre, error) {
	query := `INSERT INTO genres (name) VALUES ($1) RETURNING ` + genreColumns

	created, err := scanGenre(r.pool.QueryRow(ctx, query, g.Name))
	if err != nil {
		return nil, fmt.Errorf("failed to insert genre: %w", err)
	}
	return created, nil
}

func (r *postgresRepository) Update(ctx context.Context, g *genre.Genre) (*genre.Genre, error) {
	query := `
        UPDATE genres
        SET name = $1, updated_at = NOW()
        WHERE id = $2
        RETURNING ` + genreColumns

	updated, err := scanGenre(r.pool.QueryRow(ctx, query, g.Name, g.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, genre.ErrGenreNotFound
		}
		return nil, fmt.Errorf("failed to update genre: %w", err)
	}
	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM genres WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete genre: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return genre.ErrGenreNotFound
	}
	return nil
}

func (r *postgresRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM genres`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count genres: %w", err)
	}
	return count, nil
}

func (r *postgresRepository) BooksInGenre(ctx context.Context, genreID uuid.UUID) ([]genre.BookSummary, error) {
	query := `
        SELECT b.id, b.title, b.summary
        FROM books b
        JOIN book_genres bg ON bg.book_id = b.id
        WHERE bg.genre_id = $1
        ORDER BY b.title ASC
    `

	rows, err := r.pool.Query(ctx, query, genreID)
	if err != nil {
		return nil, fmt.Errorf("failed to query books in genre: %w", err)
	}
	defer rows.Close()

	var books []genre.BookSummary
	for rows.Next() {
		var b genre.BookSummary
		if err := rows.Scan(&b.ID, &b.Title, &b.Summary); err != nil {
			return nil, fmt.Errorf("failed to scan book summary: %w", err)
		}
		b.URL = "/catalog/book/" + b.ID.String()
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating books in genre: %w", err)
	}
	return books, nil
}
