package catalog

import (
	"context"
	"sort"
)

// Engine produces the flattened, paginated, sorted projections consumed by
// the presentation layer.
type Engine struct {
	repo Repository
}

func NewEngine(repo Repository) *Engine {
	return &Engine{repo: repo}
}

// ListAll returns the whole collection, id ascending.
func (e *Engine) ListAll(ctx context.Context) ([]View, error) {
	return e.repo.ListViews(ctx)
}

// Get returns a single flattened view, or item.ErrNotFound.
func (e *Engine) Get(ctx context.Context, id string) (View, error) {
	return e.repo.GetView(ctx, id)
}

// ListPaginated returns one page of the collection under the normalized
// query. Every sort field except borrower is pushed to storage; borrower is
// a computed value and takes the in-memory path.
func (e *Engine) ListPaginated(ctx context.Context, q Query) (Page, error) {
	q = q.Normalize()
	if q.SortBy == SortBorrower {
		return e.listByBorrower(ctx, q)
	}

	views, total, err := e.repo.ListViewsPage(ctx, q)
	if err != nil {
		return Page{}, err
	}
	if views == nil {
		views = []View{}
	}
	return Page{Items: views, TotalCount: total, Page: q.Page, PageSize: q.PageSize}, nil
}

// listByBorrower handles the one sort key that does not exist as a stored
// column. The current borrower is derived from the loan relation, so the
// engine materializes every item with its loan history, computes each
// borrower, sorts the whole list in memory, and only then windows it.
func (e *Engine) listByBorrower(ctx context.Context, q Query) (Page, error) {
	rows, err := e.repo.ListWithLoans(ctx)
	if err != nil {
		return Page{}, err
	}

	views := make([]View, 0, len(rows))
	for _, row := range rows {
		v := row.View
		v.Borrower = nil
		v.LoanedAt = nil
		for _, l := range row.Loans {
			if !l.Returned {
				borrower := l.Borrower
				loanedAt := l.LoanedAt
				v.Borrower = &borrower
				v.LoanedAt = &loanedAt
				break
			}
		}
		views = append(views, v)
	}

	sortByBorrower(views, q.SortDir == DirDesc)

	total := len(views)
	start := (q.Page - 1) * q.PageSize
	if start > total {
		start = total
	}
	end := start + q.PageSize
	if end > total {
		end = total
	}
	return Page{Items: views[start:end], TotalCount: total, Page: q.Page, PageSize: q.PageSize}, nil
}

// sortByBorrower orders views by borrower name with the same null placement
// as the storage-side sorts: items with no borrower go after all items with
// one, regardless of direction. Ties fall back to id ascending.
func sortByBorrower(views []View, desc bool) {
	sort.Slice(views, func(i, j int) bool {
		a, b := views[i].Borrower, views[j].Borrower
		switch {
		case a == nil && b == nil:
			return views[i].ID < views[j].ID
		case a == nil:
			return false
		case b == nil:
			return true
		}
		if *a != *b {
			if desc {
				return *a > *b
			}
			return *a < *b
		}
		return views[i].ID < views[j].ID
	})
}
