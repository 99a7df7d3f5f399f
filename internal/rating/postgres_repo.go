package rating

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookshelf/internal/item"
)

type PostgresRepo struct {
	db *pgxpool.Pool
}

func NewPostgresRepo(db *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{db: db}
}

// Upsert inserts the rating when the item exists, otherwise affects no rows.
// The INSERT ... SELECT guard keeps "item must exist" and the write in one
// statement.
func (repo *PostgresRepo) Upsert(ctx context.Context, r *Rating) error {
	const upsertSQL = `
		INSERT INTO ratings (item_id, score, notes, created_at, updated_at)
		SELECT i.id, $2, $3, NOW(), NOW()
		FROM items i
		WHERE i.id = $1
		ON CONFLICT (item_id)
		DO UPDATE SET score = EXCLUDED.score, notes = EXCLUDED.notes, updated_at = NOW()`

	tag, err := repo.db.Exec(ctx, upsertSQL, r.ItemID, r.Score, r.Notes)
	if err != nil {
		return fmt.Errorf("upsert rating: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return item.ErrNotFound
	}
	return nil
}

func (repo *PostgresRepo) GetByItem(ctx context.Context, itemID string) (Rating, error) {
	const query = `
		SELECT item_id, score, notes, created_at, updated_at
		FROM ratings
		WHERE item_id = $1`

	var r Rating
	err := repo.db.QueryRow(ctx, query, itemID).Scan(
		&r.ItemID, &r.Score, &r.Notes, &r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Rating{}, ErrNotFound
		}
		return Rating{}, err
	}
	return r, nil
}

func (repo *PostgresRepo) Delete(ctx context.Context, itemID string) error {
	tag, err := repo.db.Exec(ctx, `DELETE FROM ratings WHERE item_id = $1`, itemID)
	if err != nil {
		return fmt.Errorf("delete rating: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
