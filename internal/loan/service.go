package loan

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Service owns the loan ledger: loan creation, return, and history.
type Service struct {
	repo  Repository
	items ItemGetter
}

func NewService(repo Repository, items ItemGetter) *Service {
	return &Service{repo: repo, items: items}
}

// Create loans the item out. The existence check and the Active lookup are a
// fast path for friendly errors; the store constraint catches the race where
// two concurrent creates both pass the lookup.
func (s *Service) Create(ctx context.Context, itemID, borrower string) (Loan, error) {
	if borrower == "" {
		return Loan{}, ErrEmptyBorrower
	}
	if _, err := s.items.GetByID(ctx, itemID); err != nil {
		return Loan{}, err
	}

	current, err := s.repo.Active(ctx, itemID)
	if err == nil {
		return Loan{}, &ConflictError{Borrower: current.Borrower}
	}
	if !errors.Is(err, ErrNoActiveLoan) {
		return Loan{}, err
	}

	l := Loan{
		ID:       uuid.New().String(),
		ItemID:   itemID,
		Borrower: borrower,
		LoanedAt: time.Now().UTC(),
		Returned: false,
	}
	if err := s.repo.Create(ctx, &l); err != nil {
		return Loan{}, err
	}
	return l, nil
}

// Return transitions the item's active loan to returned.
func (s *Service) Return(ctx context.Context, itemID string) error {
	return s.repo.MarkReturned(ctx, itemID, time.Now().UTC())
}

// Active returns the item's outstanding loan, or ErrNoActiveLoan.
func (s *Service) Active(ctx context.Context, itemID string) (Loan, error) {
	return s.repo.Active(ctx, itemID)
}

// AllActive returns every outstanding loan, oldest first.
func (s *Service) AllActive(ctx context.Context) ([]ActiveLoan, error) {
	return s.repo.AllActive(ctx)
}

// History returns the full ledger for the item, newest first.
func (s *Service) History(ctx context.Context, itemID string) ([]Loan, error) {
	if _, err := s.items.GetByID(ctx, itemID); err != nil {
		return nil, err
	}
	return s.repo.History(ctx, itemID)
}
