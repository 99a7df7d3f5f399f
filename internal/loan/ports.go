package loan

import (
	"context"
	"time"

	"bookshelf/internal/item"
)

// Repository defines the contract for loan storage. The store must hold a
// uniqueness constraint over (item_id) scoped to unreturned loans; that
// constraint, not the service pre-check, is the authoritative guard for the
// single-active-loan invariant.
type Repository interface {
	// Create inserts a new active loan. A constraint violation is translated
	// into *ConflictError naming the current borrower.
	Create(ctx context.Context, l *Loan) error
	// Active returns the single unreturned loan for the item, or ErrNoActiveLoan.
	Active(ctx context.Context, itemID string) (Loan, error)
	// AllActive returns every unreturned loan ordered by loaned_at ascending.
	AllActive(ctx context.Context) ([]ActiveLoan, error)
	// History returns all loans for the item, newest first by loaned_at.
	History(ctx context.Context, itemID string) ([]Loan, error)
	// MarkReturned flips the active loan to returned at the given time, or
	// returns ErrNoActiveLoan.
	MarkReturned(ctx context.Context, itemID string, at time.Time) error
}

// ItemGetter is the slice of the item repository the ledger needs to check
// that a loan target exists.
type ItemGetter interface {
	GetByID(ctx context.Context, id string) (item.Item, error)
}
