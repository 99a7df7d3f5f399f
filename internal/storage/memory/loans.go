package memory

import (
	"context"
	"sort"
	"time"

	"bookshelf/internal/loan"
)

type LoanRepo struct {
	store *Store
}

// Create enforces the single-active-loan guard under the store lock, the
// same role the partial unique index plays in Postgres.
func (r *LoanRepo) Create(_ context.Context, l *loan.Loan) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, existing := range r.store.loans {
		if existing.ItemID == l.ItemID && !existing.Returned {
			return &loan.ConflictError{Borrower: existing.Borrower}
		}
	}
	r.store.loans = append(r.store.loans, *l)
	return nil
}

func (r *LoanRepo) Active(_ context.Context, itemID string) (loan.Loan, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, l := range r.store.loans {
		if l.ItemID == itemID && !l.Returned {
			return l, nil
		}
	}
	return loan.Loan{}, loan.ErrNoActiveLoan
}

func (r *LoanRepo) AllActive(_ context.Context) ([]loan.ActiveLoan, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var out []loan.ActiveLoan
	for _, l := range r.store.loans {
		if l.Returned {
			continue
		}
		al := loan.ActiveLoan{Loan: l}
		if it, ok := r.store.items[l.ItemID]; ok {
			al.ItemTitle = it.Title
		}
		out = append(out, al)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].LoanedAt.Equal(out[j].LoanedAt) {
			return out[i].LoanedAt.Before(out[j].LoanedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *LoanRepo) History(_ context.Context, itemID string) ([]loan.Loan, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var out []loan.Loan
	for _, l := range r.store.loans {
		if l.ItemID == itemID {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].LoanedAt.Equal(out[j].LoanedAt) {
			return out[i].LoanedAt.After(out[j].LoanedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r *LoanRepo) MarkReturned(_ context.Context, itemID string, at time.Time) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i := range r.store.loans {
		if r.store.loans[i].ItemID == itemID && !r.store.loans[i].Returned {
			r.store.loans[i].Returned = true
			returnedAt := at
			r.store.loans[i].ReturnedAt = &returnedAt
			return nil
		}
	}
	return loan.ErrNoActiveLoan
}
