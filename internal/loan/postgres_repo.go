package loan

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// loans_item_id_active_idx is the partial unique index over
// loans(item_id) WHERE NOT returned declared in the migrations.
const activeLoanIndex = "loans_item_id_active_idx"

const uniqueViolationCode = "23505"

type PostgresRepo struct {
	db *pgxpool.Pool
}

func NewPostgresRepo(db *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{db: db}
}

func (r *PostgresRepo) Create(ctx context.Context, l *Loan) error {
	const sql = `
		INSERT INTO loans (id, item_id, borrower, loaned_at, returned)
		VALUES ($1, $2, $3, $4, FALSE)`

	_, err := r.db.Exec(ctx, sql, l.ID, l.ItemID, l.Borrower, l.LoanedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode && pgErr.ConstraintName == activeLoanIndex {
			// Lost the race against a concurrent create; name the borrower
			// that won so the caller sees the same Conflict as the pre-check.
			if current, lookupErr := r.Active(ctx, l.ItemID); lookupErr == nil {
				return &ConflictError{Borrower: current.Borrower}
			}
			return &ConflictError{}
		}
		return fmt.Errorf("insert loan: %w", err)
	}
	return nil
}

func (r *PostgresRepo) Active(ctx context.Context, itemID string) (Loan, error) {
	const query = `
		SELECT id, item_id, borrower, loaned_at, returned, returned_at
		FROM loans
		WHERE item_id = $1 AND NOT returned`

	var l Loan
	err := r.db.QueryRow(ctx, query, itemID).Scan(
		&l.ID, &l.ItemID, &l.Borrower, &l.LoanedAt, &l.Returned, &l.ReturnedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Loan{}, ErrNoActiveLoan
		}
		return Loan{}, err
	}
	return l, nil
}

func (r *PostgresRepo) AllActive(ctx context.Context) ([]ActiveLoan, error) {
	const query = `
		SELECT l.id, l.item_id, l.borrower, l.loaned_at, l.returned, l.returned_at, i.title
		FROM loans l
		JOIN items i ON i.id = l.item_id
		WHERE NOT l.returned
		ORDER BY l.loaned_at ASC, l.id ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ActiveLoan
	for rows.Next() {
		var al ActiveLoan
		if err := rows.Scan(
			&al.ID, &al.ItemID, &al.Borrower, &al.LoanedAt, &al.Returned, &al.ReturnedAt,
			&al.ItemTitle,
		); err != nil {
			return nil, err
		}
		out = append(out, al)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) History(ctx context.Context, itemID string) ([]Loan, error) {
	const query = `
		SELECT id, item_id, borrower, loaned_at, returned, returned_at
		FROM loans
		WHERE item_id = $1
		ORDER BY loaned_at DESC, id DESC`

	rows, err := r.db.Query(ctx, query, itemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Loan
	for rows.Next() {
		var l Loan
		if err := rows.Scan(&l.ID, &l.ItemID, &l.Borrower, &l.LoanedAt, &l.Returned, &l.ReturnedAt); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) MarkReturned(ctx context.Context, itemID string, at time.Time) error {
	const sql = `
		UPDATE loans
		SET returned = TRUE, returned_at = $2
		WHERE item_id = $1 AND NOT returned`

	tag, err := r.db.Exec(ctx, sql, itemID, at)
	if err != nil {
		return fmt.Errorf("return loan: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNoActiveLoan
	}
	return nil
}
