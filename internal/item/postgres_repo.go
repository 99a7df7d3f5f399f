package item

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepo struct {
	db *pgxpool.Pool
}

func NewPostgresRepo(db *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{db: db}
}

func (r *PostgresRepo) Create(ctx context.Context, it *Item) error {
	const sql = `
		INSERT INTO items (id, title, author, description, notes, isbn,
		                   published_year, page_count, ownership_status,
		                   created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.Exec(ctx, sql,
		it.ID, it.Title, it.Author, it.Description, it.Notes, it.ISBN,
		it.PublishedYear, it.PageCount, string(it.Ownership),
		it.CreatedAt, it.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

func (r *PostgresRepo) GetByID(ctx context.Context, id string) (Item, error) {
	const query = `
		SELECT id, title, author, description, notes, isbn,
		       published_year, page_count, ownership_status, created_at, updated_at
		FROM items
		WHERE id = $1`

	var it Item
	err := r.db.QueryRow(ctx, query, id).Scan(
		&it.ID, &it.Title, &it.Author, &it.Description, &it.Notes, &it.ISBN,
		&it.PublishedYear, &it.PageCount, &it.Ownership, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Item{}, ErrNotFound
		}
		return Item{}, err
	}
	return it, nil
}

func (r *PostgresRepo) Update(ctx context.Context, it *Item) error {
	const sql = `
		UPDATE items
		SET title = $2, author = $3, description = $4, notes = $5, isbn = $6,
		    published_year = $7, page_count = $8, ownership_status = $9, updated_at = $10
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, sql,
		it.ID, it.Title, it.Author, it.Description, it.Notes, it.ISBN,
		it.PublishedYear, it.PageCount, string(it.Ownership), it.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepo) Delete(ctx context.Context, id string) error {
	// ratings, statuses and loans are removed by ON DELETE CASCADE
	tag, err := r.db.Exec(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
