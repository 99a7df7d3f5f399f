package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookshelf/internal/item"
	"bookshelf/internal/loan"
	"bookshelf/internal/status"
)

var dialect = goqu.Dialect("postgres")

type PostgresRepo struct {
	db *pgxpool.Pool
}

func NewPostgresRepo(db *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{db: db}
}

// viewDataset is the flattened projection: items left-joined with their
// rating, status, and active (unreturned) loan.
func viewDataset() *goqu.SelectDataset {
	return dialect.From(goqu.T("items").As("i")).
		LeftJoin(
			goqu.T("ratings").As("r"),
			goqu.On(goqu.I("r.item_id").Eq(goqu.I("i.id"))),
		).
		LeftJoin(
			goqu.T("statuses").As("s"),
			goqu.On(goqu.I("s.item_id").Eq(goqu.I("i.id"))),
		).
		LeftJoin(
			goqu.T("loans").As("l"),
			goqu.On(goqu.I("l.item_id").Eq(goqu.I("i.id")), goqu.I("l.returned").IsFalse()),
		).
		Select(
			goqu.I("i.id"), goqu.I("i.title"), goqu.I("i.author"),
			goqu.I("i.description"), goqu.I("i.notes"), goqu.I("i.isbn"),
			goqu.I("i.published_year"), goqu.I("i.page_count"), goqu.I("i.ownership_status"),
			goqu.I("r.score"), goqu.I("r.notes").As("rating_notes"),
			goqu.I("s.status"), goqu.I("l.borrower"), goqu.I("l.loaned_at"),
		)
}

func sortColumn(field string) exp.IdentifierExpression {
	switch field {
	case SortAuthor:
		return goqu.I("i.author")
	case SortScore:
		return goqu.I("r.score")
	case SortOwnership:
		return goqu.I("i.ownership_status")
	case SortStatus:
		return goqu.I("s.status")
	default:
		return goqu.I("i.title")
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanView(row rowScanner) (View, error) {
	var (
		v         View
		ownership string
		st        *string
	)
	err := row.Scan(
		&v.ID, &v.Title, &v.Author, &v.Description, &v.Notes, &v.ISBN,
		&v.PublishedYear, &v.PageCount, &ownership,
		&v.Score, &v.RatingNotes, &st, &v.Borrower, &v.LoanedAt,
	)
	if err != nil {
		return View{}, err
	}
	v.Ownership = item.OwnershipStatus(ownership)
	if st != nil {
		rs := status.ReadingStatus(*st)
		v.Status = &rs
	}
	return v, nil
}

func (r *PostgresRepo) queryViews(ctx context.Context, ds *goqu.SelectDataset) ([]View, error) {
	sql, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build view query: %w", err)
	}
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []View
	for rows.Next() {
		v, err := scanView(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) ListViews(ctx context.Context) ([]View, error) {
	return r.queryViews(ctx, viewDataset().Order(goqu.I("i.id").Asc()))
}

func (r *PostgresRepo) ListViewsPage(ctx context.Context, q Query) ([]View, int, error) {
	countSQL, countArgs, err := dialect.From("items").Select(goqu.COUNT(goqu.Star())).Prepared(true).ToSQL()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}
	var total int
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	// Nullable sort keys (score, status) place NULLs after all non-null
	// values in both directions; id breaks every tie so pagination is
	// reproducible.
	col := sortColumn(q.SortBy)
	order := col.Asc().NullsLast()
	if q.SortDir == DirDesc {
		order = col.Desc().NullsLast()
	}

	ds := viewDataset().
		Order(order, goqu.I("i.id").Asc()).
		Limit(uint(q.PageSize)).
		Offset(uint((q.Page - 1) * q.PageSize))

	views, err := r.queryViews(ctx, ds)
	if err != nil {
		return nil, 0, err
	}
	return views, total, nil
}

func (r *PostgresRepo) GetView(ctx context.Context, id string) (View, error) {
	sql, args, err := viewDataset().Where(goqu.I("i.id").Eq(id)).Prepared(true).ToSQL()
	if err != nil {
		return View{}, fmt.Errorf("build view query: %w", err)
	}
	v, err := scanView(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return View{}, item.ErrNotFound
		}
		return View{}, err
	}
	return v, nil
}

func (r *PostgresRepo) ListWithLoans(ctx context.Context) ([]ItemLoans, error) {
	views, err := r.ListViews(ctx)
	if err != nil {
		return nil, err
	}

	const loansSQL = `
		SELECT id, item_id, borrower, loaned_at, returned, returned_at
		FROM loans
		ORDER BY item_id, loaned_at ASC, id ASC`

	rows, err := r.db.Query(ctx, loansSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byItem := make(map[string][]loan.Loan)
	for rows.Next() {
		var l loan.Loan
		if err := rows.Scan(&l.ID, &l.ItemID, &l.Borrower, &l.LoanedAt, &l.Returned, &l.ReturnedAt); err != nil {
			return nil, err
		}
		byItem[l.ItemID] = append(byItem[l.ItemID], l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	out := make([]ItemLoans, 0, len(views))
	for _, v := range views {
		out = append(out, ItemLoans{View: v, Loans: byItem[v.ID]})
	}
	return out, nil
}
