package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-catalog/internal/domains/bookinstance"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) bookinstance.Repository {
	return &postgresRepository{pool: pool}
}

// instanceSelect expands the book title in one round trip.
const instanceSelect = `
    SELECT bi.id, bi.book_id, bi.imprint, bi.status, bi.due_back, bi.created_at, bi.updated_at,
           b.title AS book_title
    FROM book_instances bi
    JOIN books b ON b.id = bi.book_id
`

func scanInstance(row pgx.Row) (*bookinstance.BookInstance, error) {
	var bi bookinstance.BookInstance
	err := row.Scan(
		&bi.ID,
		&bi.BookID,
		&bi.Imprint,
		&bi.Status,
		&bi.DueBack,
		&bi.CreatedAt,
		&bi.UpdatedAt,
		&bi.BookTitle,
	)
	if err != nil {
		return nil, err
	}
	return &bi, nil
}

func (r *postgresRepository) List(ctx context.Context) ([]bookinstance.BookInstance, error) {
	rows, err := r.pool.Query(ctx, instanceSelect+` ORDER BY b.title ASC, bi.imprint ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query book instances: %w", err)
	}
	defer rows.Close()

	var instances []bookinstance.BookInstance
	for rows.Next() {
		bi, err := scanInstance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan book instance: %w", err)
		}
		instances = append(instances, *bi)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating book instances: %w", err)
	}
	return instances, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*bookinstance.BookInstance, error) {
	bi, err := scanInstance(r.pool.QueryRow(ctx, instanceSelect+` WHERE bi.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, bookinstance.ErrBookInstanceNotFound
		}
		return nil, fmt.Errorf("failed to get book instance by id: %w", err)
	}
	return bi, nil
}

func (r *postgresRepository) Insert(ctx context.Context, bi *bookinstance.BookInstance) (*bookinstance.BookInstance, error) {
	var id uuid.UUID
	err := r.pool.QueryRow(ctx, `
        INSERT INTO book_instances (book_id, imprint, status, due_back)
        VALUES ($1, $2, $3, $4)
        RETURNING id`,
		bi.BookID, bi.Imprint, bi.Status, bi.DueBack,
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("failed to insert book instance: %w", err)
	}
	return r.GetByID(ctx, id)
}

func (r *postgresRepository) Update(ctx context.Context, bi *bookinstance.BookInstance) (*bookinstance.BookInstance, error) {
	cmdTag, err := r.pool.Exec(ctx, `
        UPDATE book_instances
        SET book_id = $1, imprint = $2, status = $3, due_back = $4, updated_at = NOW()
        WHERE id = $5`,
		bi.BookID, bi.Imprint, bi.Status, bi.DueBack, bi.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update book instance: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return nil, bookinstance.ErrBookInstanceNotFound
	}
	return r.GetByID(ctx, bi.ID)
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM book_instances WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete book instance: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return bookinstance.ErrBookInstanceNotFound
	}
	return nil
}

func (r *postgresRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM book_instances`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count book instances: %w", err)
	}
	return count, nil
}

func (r *postgresRepository) CountByStatus(ctx context.Context, status bookinstance.Status) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM book_instances WHERE status = $1`, status,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count book instances by status: %w", err)
	}
	return count, nil
}

func (r *postgresRepository) BookOptions(ctx context.Context) ([]bookinstance.BookOption, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, title FROM books ORDER BY title ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query book options: %w", err)
	}
	defer rows.Close()

	var options []bookinstance.BookOption
	for rows.Next() {
		var opt bookinstance.BookOption
		if err := rows.Scan(&opt.ID, &opt.Title); err != nil {
			return nil, fmt.Errorf("failed to scan book option: %w", err)
		}
		options = append(options, opt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating book options: %w", err)
	}
	return options, nil
}
