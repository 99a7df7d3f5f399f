package status

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

func (repo *PostgresRepo) Upsert(ctx context.Context, s *Status) error {
	const upsertSQL = `
		INSERT INTO statuses (item_id, status, created_at, updated_at)
		SELECT i.id, $2, NOW(), NOW()
		FROM items i
		WHERE i.id = $1
		ON CONFLICT (item_id)
		DO UPDATE SET status = EXCLUDED.status, updated_at = NOW()`

	tag, err := repo.db.Exec(ctx, upsertSQL, s.ItemID, string(s.Status))
	if err != nil {
		return fmt.Errorf("upsert status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return item.ErrNotFound
	}
	return nil
}

func (repo *PostgresRepo) GetByItem(ctx context.Context, itemID string) (Status, error) {
	const query = `
		SELECT item_id, status, created_at, updated_at
		FROM statuses
		WHERE item_id = $1`

	var s Status
	err := repo.db.QueryRow(ctx, query, itemID).Scan(
		&s.ItemID, &s.Status, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Status{}, ErrNotFound
		}
		return Status{}, err
	}
	return s, nil
}

func (repo *PostgresRepo) Delete(ctx context.Context, itemID string) error {
	tag, err := repo.db.Exec(ctx, `DELETE FROM statuses WHERE item_id = $1`, itemID)
	if err != nil {
		return fmt.Errorf("delete status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
