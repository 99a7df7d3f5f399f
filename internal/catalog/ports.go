package catalog

import (
	"context"

	"bookshelf/internal/loan"
)

// ItemLoans pairs one item's flattened view with its complete loan history,
// oldest loan first. The View's Borrower/LoanedAt are recomputed by the
// engine from Loans and should not be relied on here.
type ItemLoans struct {
	View  View
	Loans []loan.Loan
}

// Repository defines the contract for reading flattened catalog projections.
type Repository interface {
	// ListViews returns every view in id-ascending order.
	ListViews(ctx context.Context) ([]View, error)
	// ListViewsPage returns one storage-sorted window plus the total item
	// count. Only storable sort fields reach it; borrower never does.
	ListViewsPage(ctx context.Context, q Query) ([]View, int, error)
	// GetView returns a single view, or item.ErrNotFound.
	GetView(ctx context.Context, id string) (View, error)
	// ListWithLoans materializes every item together with its full loan
	// relation, for the in-memory borrower sort path.
	ListWithLoans(ctx context.Context) ([]ItemLoans, error)
}
